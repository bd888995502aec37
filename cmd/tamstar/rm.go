package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	store.Delete(id)
	fmt.Printf("Deleted %s\n", shortID(id))

	return nil
}
