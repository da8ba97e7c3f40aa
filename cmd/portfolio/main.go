package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/logging"
)

var (
	configFile string
	verbose    bool
	output     string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site - project catalog and contact form",
	Long: `Portfolio serves a personal portfolio site: a static project catalog
and a contact form that forwards messages to a third-party form endpoint.

Examples:
  # Run the site with defaults on :8080
  portfolio

  # Run with a config file and reload it on change
  portfolio serve -c portfolio.yaml

  # List the project catalog as JSON
  portfolio projects -o json

  # Send a contact message from the terminal
  portfolio contact send --name Ana --email ana@example.com --message "Hola"`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table, json)")
	addServeFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext(logger *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// newLogger builds the process logger; verbose forces debug level.
func newLogger(cfg *Config) (*zap.Logger, zap.AtomicLevel, error) {
	logCfg := cfg.Log
	if cfg.Verbose {
		logCfg.Level = "debug"
	}
	logger, level, err := logging.New(logCfg)
	if err != nil {
		return nil, level, fmt.Errorf("create logger: %w", err)
	}
	return logger, level, nil
}
