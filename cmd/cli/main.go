package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhaglund/storeshift/cmd/cli/commands"
	"github.com/mhaglund/storeshift/internal/config"
	"github.com/mhaglund/storeshift/pkg/postgres"
	"github.com/mhaglund/storeshift/pkg/utils/logging"
)

var (
	configPath string
	app        *commands.AppContext
	database   *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "storeshift",
		Short: "Storeshift - weekly shift scheduling for a retail store",
		Long:  `A CLI tool for generating weekly worker schedules, checking staffing feasibility, and analysing coverage.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if database != nil {
				database.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: storeshift.yaml in cwd or home)")

	// Add all commands
	rootCmd.AddCommand(commands.GenerateScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.CheckScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.WeeklyHoursCmd(appRef()))
	rootCmd.AddCommand(commands.ScheduleStatsCmd(appRef()))
	rootCmd.AddCommand(commands.ViewScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.ListWorkersCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, creating the empty shell commands
// capture before initApp fills it in
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, and database
func initApp() error {
	logger, err := logging.InitLogger("storeshift")
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	database, err = postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ref := appRef()
	ref.Cfg = cfg
	ref.Database = database
	ref.Logger = logger
	ref.Ctx = ctx

	return nil
}
