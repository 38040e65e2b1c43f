package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yigit/clubhub/internal/bootstrap"
	"github.com/yigit/clubhub/internal/pkg/logger"
	"github.com/yigit/clubhub/internal/server"
)

// @title ClubHub API
// @version 1.0
// @description API for managing clubs, events and admin approvals

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "clubhub",
		Short:         "ClubHub club and event management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", filepath.Join("configs", "config.yaml"), "path to the YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run migrations, seed the main admin and start the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrate(cmd.Context(), configPath)
			},
		},
	)
	return root
}

func serve(ctx context.Context, configPath string) error {
	srv, err := server.NewServer(ctx, configPath)
	if err != nil {
		return err
	}
	if err := srv.Run(); err != nil {
		return err
	}
	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrate(ctx context.Context, configPath string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	pool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	return bootstrap.RunMigrations(ctx, cfg, pool, lgr)
}
