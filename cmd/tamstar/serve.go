package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/melusiness/tamstar/internal/log"
	"github.com/melusiness/tamstar/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	addr := cfg.Listen
	if serveAddr != "" {
		addr = serveAddr
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("starting API server", "addr", addr, "backend", cfg.Backend)

	return web.NewServer(store, cfg).Run(addr)
}
