package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var intervalCmd = &cobra.Command{
	Use:   "interval [hours]",
	Short: "Show or set the fallback interval",
	Long: `Without an argument, shows the fallback interval and the observed average.
With one, sets the fallback interval in hours (used until two records exist).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInterval,
}

func runInterval(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		fmt.Printf("Fallback interval: %.1f hours\n", store.Settings().SuggestedIntervalHours)
		if avg, ok := store.AverageInterval(); ok {
			fmt.Printf("Observed average:  %d min\n", avg)
		}
		return nil
	}

	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid hours %q", args[0])
	}
	if !store.SetSuggestedInterval(hours) {
		return fmt.Errorf("hours must be positive")
	}

	fmt.Printf("Fallback interval set to %.1f hours\n", hours)

	return nil
}
