package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniel/portfolio-site/internal/server"
)

var adminTokenHours int

var adminTokenCmd = &cobra.Command{
	Use:   "admin-token",
	Short: "Mint an admin bearer token",
	Long:  `Generate a signed JWT for the admin endpoints using the JWT_SECRET environment variable.`,
	RunE:  runAdminToken,
}

func init() {
	adminTokenCmd.Flags().IntVar(&adminTokenHours, "hours", 24, "Token validity in hours")
	rootCmd.AddCommand(adminTokenCmd)
}

func runAdminToken(cmd *cobra.Command, _ []string) error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	jwtService, err := server.NewJWTService(secret, time.Duration(adminTokenHours)*time.Hour)
	if err != nil {
		return err
	}
	token, err := jwtService.GenerateToken()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
