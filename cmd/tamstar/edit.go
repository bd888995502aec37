package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var editAt string

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Move a record to a new time",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editAt, "at", "", "New timestamp (RFC 3339 or HH:MM)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editAt == "" {
		return fmt.Errorf("--at is required")
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	loc := cfg.Location()
	at, err := parseWhen(editAt, loc)
	if err != nil {
		return err
	}

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	r, _ := store.Update(id, at)
	fmt.Printf("Moved %s to %s\n", shortID(r.ID), r.LoggedAt.In(loc).Format("2006-01-02 15:04"))

	return nil
}
