package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/config"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the coaching REST API server",
	Long:  `Start an HTTP server that exposes endpoints for scoring transcripts and driving guided coaching sessions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: config value, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, engine, err := setup(func(c *config.Config) {
		if servePort > 0 {
			c.Port = servePort
		}
	})
	if err != nil {
		return err
	}
	defer log.Sync()

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Engine: engine,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
