package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mlagunovs/watertrack/internal/models"
	"github.com/mlagunovs/watertrack/internal/settings"
)

// Today prints the day's total, the per-category breakdown, and how it
// compares to the user's daily limit.
func (a *App) Today(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	date := time.Now().Format(models.DateLayout)
	usage, err := a.entries.UsageByDate(ctx, a.user.ID, date)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	cfg, err := a.settings.Get(ctx, a.user.ID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Today (%s): %.1f of %.1f liters", usage.Date, usage.Total, cfg.DailyLimit))
	for _, t := range models.UsageTypes {
		if amount, ok := usage.ByCategory[t]; ok {
			printlnFn(fmt.Sprintf("  %-10s %6.1f l", t, amount))
		}
	}
	if usage.Total > cfg.DailyLimit {
		printlnFn("Over the daily limit!")
	}
	return nil
}

// Limit shows the current daily limit and optionally sets a new one.
func (a *App) Limit(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	cfg, err := a.settings.Get(ctx, a.user.ID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Current daily limit: %.1f liters", cfg.DailyLimit))

	s, err := GetSimpleText(a.reader, "New limit in liters (empty to keep)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if s == "" {
		return nil
	}
	limit, err := parseAmount(s)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	updated, err := a.settings.Update(ctx, a.user.ID, settings.Patch{DailyLimit: &limit})
	if err != nil {
		log.Println(err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Daily limit set to %.1f liters", updated.DailyLimit))
	return nil
}
