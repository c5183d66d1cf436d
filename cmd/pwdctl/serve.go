package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forest6511/pwdctl/internal/httpapi"
)

// Serve command flags
var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080, or PWDCTL_ADDR)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	Long: `Serve the password analyzer and generator over a JSON HTTP API.

Endpoints:
  GET  /          Web UI
  POST /analyze   Analyze a password, returns the full report
  GET  /generate  Generate a password (length and charset query parameters)
  GET  /metrics   Request counters in Prometheus text format

The listen address is taken from --addr, the PWDCTL_ADDR environment
variable (a .env file is honored), or defaults to :8080.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		addr := serveAddr
		if addr == "" {
			addr = os.Getenv("PWDCTL_ADDR")
		}
		if addr == "" {
			addr = ":8080"
		}

		cal, err := loadCalibration()
		if err != nil {
			return fmt.Errorf("failed to load calibration: %w", err)
		}

		server := &http.Server{
			Addr:         addr,
			Handler:      httpapi.NewServer(cal),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		log.Printf("pwdctl listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}
