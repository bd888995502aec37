package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/melusiness/tamstar/internal/calendar"
)

var calOffset int

var calCmd = &cobra.Command{
	Use:   "cal [YYYY-MM]",
	Short: "Show a month calendar with record markers",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCal,
}

func init() {
	calCmd.Flags().IntVar(&calOffset, "offset", 0, "Months to shift from the shown month")
}

func runCal(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	loc := cfg.Location()
	m := calendar.MonthOf(time.Now().In(loc))
	if len(args) == 1 {
		parsed, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q, want YYYY-MM", args[0])
		}
		m = calendar.MonthOf(parsed)
	}
	m = m.Add(calOffset)

	weekStart := calendar.ParseWeekStart(cfg.WeekStart)
	weeks := calendar.BuildGrid(m, weekStart)
	marks := store.MarksForMonth(m)

	fmt.Printf("%s\n", m)

	var b strings.Builder
	for _, name := range calendar.DayNames(weekStart) {
		fmt.Fprintf(&b, "%4s", name)
	}
	fmt.Println(b.String())

	for _, week := range weeks {
		b.Reset()
		for _, cell := range week {
			switch {
			case cell.Blank():
				b.WriteString("    ")
			case marks[cell.Day()] > 0:
				fmt.Fprintf(&b, "%3d*", cell.Day())
			default:
				fmt.Fprintf(&b, "%3d ", cell.Day())
			}
		}
		fmt.Println(strings.TrimRight(b.String(), " "))
	}

	total := 0
	for _, n := range marks {
		total += n
	}
	fmt.Printf("\n%d records (* marks days with records)\n", total)

	return nil
}
