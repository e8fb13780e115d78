package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniel/portfolio-site/internal/config"
	"github.com/daniel/portfolio-site/internal/server"
)

var (
	servePort       int
	serveContentDir string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP server that exposes the site content, contact form, and resume parsing endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveContentDir, "content", "content", "Directory containing site content JSON files")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = serveContentDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		ContentDir:  cfg.ContentDir,
		JWTSecret:   cfg.JWTSecret,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
