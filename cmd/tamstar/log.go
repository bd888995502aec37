package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var logAt string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a replacement",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&logAt, "at", "", "Timestamp (RFC 3339 or HH:MM, default now)")
}

func runLog(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	loc := cfg.Location()
	at := time.Now()
	if logAt != "" {
		at, err = parseWhen(logAt, loc)
		if err != nil {
			return err
		}
	}

	r := store.Add(at)
	fmt.Printf("Logged %s at %s\n", shortID(r.ID), r.LoggedAt.In(loc).Format("2006-01-02 15:04"))
	fmt.Printf("Next suggested: %s\n", store.NextSuggested(time.Now()).In(loc).Format("2006-01-02 15:04"))

	return nil
}
