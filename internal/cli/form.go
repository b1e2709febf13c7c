package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mlagunovs/watertrack/internal/models"
)

// The entry form owns validation, mirroring the web dashboard: the
// repositories themselves accept whatever they are given.
const maxAmountLiters = 1000

var (
	errInvalidDate      = errors.New("date must be in YYYY-MM-DD form")
	errInvalidAmount    = fmt.Errorf("amount must be a number in (0, %d] liters", maxAmountLiters)
	errInvalidUsageType = errors.New("unknown usage type")
	errMissingCustom    = errors.New("a custom label is required for type \"others\"")
)

func parseDate(s string) (string, error) {
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return "", errInvalidDate
	}
	return s, nil
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || v > maxAmountLiters {
		return 0, errInvalidAmount
	}
	return v, nil
}

func parseUsageType(s string) (models.UsageType, error) {
	t := models.UsageType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", errInvalidUsageType
	}
	return t, nil
}

// promptDate asks for a calendar day, defaulting to today on empty input.
func promptDate(reader *bufio.Reader, w io.Writer) (string, error) {
	today := time.Now().Format(models.DateLayout)
	s, err := GetSimpleText(reader, fmt.Sprintf("Enter date (YYYY-MM-DD, empty for %s)", today), w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return today, nil
	}
	return parseDate(s)
}

func promptAmount(reader *bufio.Reader, w io.Writer) (float64, error) {
	s, err := GetSimpleText(reader, "Enter amount (liters)", w)
	if err != nil {
		return 0, err
	}
	return parseAmount(s)
}

// promptUsageType asks for one of the known usage types and, for "others",
// the required custom label.
func promptUsageType(reader *bufio.Reader, w io.Writer) (models.UsageType, string, error) {
	var names []string
	for _, t := range models.UsageTypes {
		names = append(names, string(t))
	}
	s, err := GetSimpleText(reader, "Enter usage type ("+strings.Join(names, ", ")+")", w)
	if err != nil {
		return "", "", err
	}
	usage, err := parseUsageType(s)
	if err != nil {
		return "", "", err
	}

	var custom string
	if usage == models.UsageOthers {
		custom, err = GetSimpleText(reader, "Enter custom label", w)
		if err != nil {
			return "", "", err
		}
		if strings.TrimSpace(custom) == "" {
			return "", "", errMissingCustom
		}
	}
	return usage, custom, nil
}
