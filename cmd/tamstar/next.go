package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next suggested change time",
	Args:  cobra.NoArgs,
	RunE:  runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	loc := cfg.Location()
	next := store.NextSuggested(time.Now())

	fmt.Printf("Next suggested change: %s\n", next.In(loc).Format("2006-01-02 15:04"))

	if avg, ok := store.AverageInterval(); ok {
		fmt.Printf("Based on an average interval of %d min over %d records\n", avg, len(store.Records()))
	} else {
		fmt.Printf("Based on the fallback interval of %.1f hours\n", store.Settings().SuggestedIntervalHours)
	}

	return nil
}
