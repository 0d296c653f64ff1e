package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/server"
)

const (
	defaultPort       = 8080
	defaultUploadsDir = "uploads"
)

var (
	servePort       int
	serveUploadsDir string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  `Start an HTTP server that serves the upload form, runs matching over uploaded resumes, renders the results page and serves stored resume downloads.`,
	RunE:  runServe,
}

func init() {
	// Flags default to zero values; hard defaults are applied after the
	// config file merge so file values are not shadowed.
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveUploadsDir, "uploads-dir", "", `Directory for stored matching resumes (default "uploads")`)
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

// resolveServeConfig merges the config file, explicitly set flags and hard
// defaults. Flags take priority over file values, file values over defaults.
func resolveServeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("uploads-dir") {
		cfg.UploadsDir = serveUploadsDir
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg.MergeWithDefaults(config.Config{
		Port:       defaultPort,
		UploadsDir: defaultUploadsDir,
	}), nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set via environment or config file")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		UploadsDir:  cfg.UploadsDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
