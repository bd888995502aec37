package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listDay string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show a day's log",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listDay, "day", "", "Day to show (YYYY-MM-DD, default today)")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	loc := cfg.Location()
	day := time.Now().In(loc)
	if listDay != "" {
		day, err = time.ParseInLocation("2006-01-02", listDay, loc)
		if err != nil {
			return fmt.Errorf("invalid day %q, want YYYY-MM-DD", listDay)
		}
	}

	report := store.DayReport(day, time.Now())

	fmt.Printf("%s\n\n", day.Format("Monday, January 2 2006"))

	if len(report.Records) == 0 {
		fmt.Println("No records.")
	}
	for i, r := range report.Records {
		line := fmt.Sprintf("  %s  %s", r.LoggedAt.In(loc).Format("15:04"), shortID(r.ID))
		if i > 0 {
			line += fmt.Sprintf("  %+d min", report.Intervals[i-1])
		}
		fmt.Println(line)
	}
	fmt.Println()

	if report.AverageMinutes != nil {
		fmt.Printf("Average interval: %d min\n", *report.AverageMinutes)
	}
	fmt.Printf("Next suggested:   %s\n", report.NextSuggested.In(loc).Format("2006-01-02 15:04"))

	return nil
}
