package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/server"
)

var (
	servePort     int
	serveCriteria string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for resume analysis,
stored results, rankings and statistics. Requires JWT_SECRET and ADMIN_KEY_HASH;
DATABASE_URL is optional but stored-result endpoints need it.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveCriteria, "criteria", "", "Path to a departments JSON file (defaults to built-in criteria)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "Warning: DATABASE_URL not set; analyses will not be persisted")
	}

	cfg := server.Config{
		Port:            servePort,
		DatabaseURL:     databaseURL,
		DepartmentsPath: serveCriteria,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
