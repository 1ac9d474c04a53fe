package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Govind-619/TurboLeague/app"
	"github.com/Govind-619/TurboLeague/config"
	"github.com/Govind-619/TurboLeague/utils"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "turboleague",
	Short: "Turbo Cricket League registration and payment backend",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createStaffCmd, sendRemindersCmd)
}

// Execute runs the command line. Without a sub-command the HTTP server starts.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and opens the database shared by every command
func bootstrap(mirrorLogs bool) (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := utils.InitLogger(cfg.LogDir, mirrorLogs); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	utils.ExposeErrorDetails(!cfg.IsProduction())

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func buildContainer(ctx context.Context, cfg *config.Config, db *gorm.DB) (*app.Container, error) {
	ext, err := app.NewExternals(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, db, ext), nil
}
