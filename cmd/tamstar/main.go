// Command tamstar is a personal replacement tracker: log timestamped
// change events, see the intervals between them, get a suggestion for the
// next change, and browse the history as a monthly calendar.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/melusiness/tamstar/internal/config"
	"github.com/melusiness/tamstar/internal/log"
	"github.com/melusiness/tamstar/internal/storage"
	"github.com/melusiness/tamstar/internal/track"
)

var Version = "dev"

var (
	cfgPath string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "tamstar",
		Short: "tamstar - personal replacement tracker",
		Long: `tamstar tracks timestamped replacement events: log a change, see the
intervals between changes, get a suggested time for the next one, and
browse the history as a monthly calendar.

Running tamstar without a subcommand shows today's log.`,
		RunE:          runList,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default ~/.tamstar/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func main() {
	godotenv.Load()

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(calCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration and applies the verbosity flag.
func loadConfig() *config.Config {
	cfg := config.Load(cfgPath)
	if verbose {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.ParseLevel(cfg.LogLevel))
	}
	return cfg
}

// openStore builds the record store on the configured backend.
func openStore(cfg *config.Config) (*track.Store, error) {
	var backend track.Backend
	var err error

	switch cfg.Backend {
	case "sqlite":
		backend, err = storage.NewSQLiteStore(cfg.DBPath())
	default:
		backend, err = storage.NewFileStore(cfg.FilePath())
	}
	if err != nil {
		return nil, err
	}

	return track.NewStore(backend, cfg.Location()), nil
}

// parseWhen reads a timestamp argument: RFC 3339, or HH:MM meaning that
// time today in loc.
func parseWhen(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", s, loc); err == nil {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want RFC 3339 or HH:MM", s)
}

// resolveID expands an ID prefix to the full record ID.
func resolveID(store *track.Store, prefix string) (string, error) {
	var matches []string
	for _, r := range store.Records() {
		if strings.HasPrefix(r.ID, prefix) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no record matching %s", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous id %s matches %d records", prefix, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
