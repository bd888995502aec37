package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/melusiness/tamstar/internal/ics"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the log as an iCalendar feed",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records := store.Records()
	data := ics.Export(records, time.Now())

	if exportOut == "" {
		fmt.Print(data)
		return nil
	}

	if err := os.WriteFile(exportOut, []byte(data), 0644); err != nil {
		return err
	}
	fmt.Printf("Wrote %d records to %s\n", len(records), exportOut)

	return nil
}
