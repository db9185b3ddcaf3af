package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"menu-cms-svc/internal/seed"
)

var (
	// Seed flags
	seedFile string
)

// initDBCmd represents the init-db command
var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Migrate and load the starter catalog",
	Long: `Create the tables, make sure the settings row exists and, when the
database has no menus yet, insert the bundled starter catalog.

Running it again on a populated database changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := seed.Default()
		if err != nil {
			return err
		}
		return runSeed(cmd, data)
	},
}

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and load a catalog from a YAML file",
	Long: `Same as init-db, but the catalog is read from --file.

Examples:
  menuctl seed --file catalog.yaml
  menuctl seed --file catalog.yaml --database-url /tmp/menu.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}
		return runSeed(cmd, data)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed YAML file")
	_ = seedCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(initDBCmd)
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, data *seed.Data) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.db.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	result, err := seed.Apply(env.db.DB, data, env.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Menus == 0 {
		fmt.Fprintln(out, "Menus already present, catalog left unchanged")
		return nil
	}
	fmt.Fprintf(out, "Seeded %d menus, %d categories, %d dishes\n", result.Menus, result.Categories, result.Dishes)
	return nil
}
