package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"menu-cms-svc/internal/config"
	"menu-cms-svc/internal/database"
	"menu-cms-svc/pkg/logger"
)

var (
	// Global flags
	dbDriver string
	dbURL    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "menuctl",
	Short: "Maintenance commands for the menu CMS",
	Long: `menuctl runs maintenance tasks against the menu CMS database.

Configuration is read from the environment (and .env) the same way the
server reads it; --driver and --database-url override the database settings.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "Database driver, sqlite or postgres (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dbURL, "database-url", "", "Database URL or sqlite path (overrides DATABASE_URL)")
}

// environment is what every command works with
type environment struct {
	cfg    *config.Config
	db     *database.Database
	logger *logger.Logger
}

func (e *environment) Close() {
	if err := e.db.Close(); err != nil {
		e.logger.WithError(err).Error("Failed to close database connection")
	}
}

// openEnvironment loads configuration and connects to the database
func openEnvironment() (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbDriver != "" {
		cfg.Database.Driver = dbDriver
	}
	if dbURL != "" {
		cfg.Database.URL = dbURL
	}

	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.File)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, db: db, logger: appLogger}, nil
}
