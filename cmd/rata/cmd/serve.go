package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	ratalog "github.com/rata-lang/rata/core/log"
	"github.com/rata-lang/rata/internal/playground"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket playground server",
	Long: `Starts the playground server: a websocket endpoint that parses and
tokenizes Rata source over a JSON envelope protocol, plus a health
endpoint.

Endpoints:
  GET /health  - Health and uptime
  WS  /ws      - Playground protocol

Examples:
  rata serve
  rata serve --port 9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind address (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := playground.DefaultConfig()
	cfg.Version = Version
	cfg.Host = appConfig.GetString("playground.host", cfg.Host)
	cfg.Port = appConfig.GetInt("playground.port", cfg.Port)
	cfg.ReadTimeout = appConfig.GetDuration("playground.read_timeout", cfg.ReadTimeout)
	cfg.WriteTimeout = appConfig.GetDuration("playground.write_timeout", cfg.WriteTimeout)
	cfg.MaxInputLength = appConfig.GetInt("parser.max_input_length", 0)
	cfg.MaxDepth = appConfig.GetInt("parser.max_depth", 0)
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := playground.New(cfg, logger)
	if err != nil {
		return err
	}

	if err := srv.StartAsync(); err != nil {
		return err
	}

	logger.Info("Playground started", ratalog.Fields{"address": srv.Address()})
	fmt.Printf("Playground listening on %s\n", srv.Address())
	fmt.Println("Press Ctrl+C to stop")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Stop(ctx)
}
