package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"menu-cms-svc/internal/export"
	"menu-cms-svc/internal/i18n"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/internal/service"
)

var (
	// Export flags
	exportOut string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog to an Excel workbook",
	Long: `Write menus, categories and dishes to an .xlsx workbook.

Examples:
  menuctl export                       # menu_export_<timestamp>.xlsx in the current directory
  menuctl export --out catalog.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		db := env.db.DB
		settingsService := service.NewSettingsService(repository.NewSettingsRepository(db), env.logger)
		catalogService := service.NewCatalogService(
			repository.NewMenuRepository(db),
			repository.NewCategoryRepository(db),
			repository.NewDishRepository(db),
			settingsService,
			env.logger,
		)

		view, err := catalogService.PublicMenu(i18n.Default())
		if err != nil {
			return err
		}

		content, filename, err := export.Workbook(view, time.Now())
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = filename
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(out, content, 0o644); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d menus, %d categories, %d dishes to %s\n",
			len(view.Menus), len(view.Categories), len(view.Items), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default menu_export_<timestamp>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
