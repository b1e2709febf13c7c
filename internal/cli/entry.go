package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mlagunovs/watertrack/internal/entries"
	"github.com/mlagunovs/watertrack/internal/models"
)

func (a *App) requireLogin() bool {
	if a.user == nil {
		printlnFn("Please login first")
		return false
	}
	return true
}

func (a *App) Add(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	date, err := promptDate(a.reader, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	amount, err := promptAmount(a.reader, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	usage, custom, err := promptUsageType(a.reader, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	entry, err := a.entries.Create(ctx, entries.NewEntry{
		Date:       date,
		Amount:     amount,
		UsageType:  usage,
		CustomType: custom,
		UserID:     a.user.ID,
	})
	if err != nil {
		log.Printf("error saving entry: %s", err.Error())
		return err
	}

	log.Printf("Saved entry %s", entry.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	list, err := a.entries.List(ctx, a.user.ID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, item := range list {
		printlnFn(formatEntry(item))
	}
	if len(list) == 0 {
		printlnFn("No entries yet")
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := GetSimpleText(a.reader, "Enter entry id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	entry, err := a.entries.Get(ctx, a.user.ID, id)
	if err != nil {
		log.Printf("error retrieving entry: %s", err.Error())
		return err
	}

	printlnFn(formatEntry(*entry))
	printlnFn(fmt.Sprintf("  created %s, updated %s",
		entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		entry.UpdatedAt.Local().Format("2006-01-02 15:04:05")))
	return nil
}

// Edit re-prompts the mutable fields of one entry; empty input keeps the
// stored value.
func (a *App) Edit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := GetSimpleText(a.reader, "Enter entry id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	var patch entries.Patch

	s, err := GetSimpleText(a.reader, "New date (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if s != "" {
		date, err := parseDate(s)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		patch.Date = &date
	}

	s, err = GetSimpleText(a.reader, "New amount (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if s != "" {
		amount, err := parseAmount(s)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		patch.Amount = &amount
	}

	s, err = GetSimpleText(a.reader, "New usage type (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if s != "" {
		usage, err := parseUsageType(s)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		patch.UsageType = &usage
		if usage == models.UsageOthers {
			custom, err := GetSimpleText(a.reader, "Enter custom label", os.Stdout)
			if err != nil {
				return err
			}
			if custom == "" {
				log.Printf("error: %v", errMissingCustom)
				return errMissingCustom
			}
			patch.CustomType = &custom
		}
	}

	entry, err := a.entries.Update(ctx, a.user.ID, id, patch)
	if err != nil {
		log.Printf("error updating entry: %s", err.Error())
		return err
	}

	log.Printf("Updated entry %s", entry.ID)
	return nil
}

func (a *App) Remove(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	id, err := GetSimpleText(a.reader, "Enter entry id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.entries.Delete(ctx, a.user.ID, id); err != nil {
		log.Printf("error deleting entry: %s", err.Error())
		return err
	}

	log.Printf("Deleted")
	return nil
}

func formatEntry(e models.Entry) string {
	label := string(e.UsageType)
	if e.UsageType == models.UsageOthers && e.CustomType != "" {
		label = label + " (" + e.CustomType + ")"
	}
	return fmt.Sprintf("%s  %s  %6.1f l  %-10s", e.ID, e.Date, e.Amount, label)
}
