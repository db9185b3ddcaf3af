package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"menu-cms-svc/internal/repository"
	"menu-cms-svc/internal/scheduler"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/internal/upload"
)

// sweepCmd represents the sweep-uploads command
var sweepCmd = &cobra.Command{
	Use:   "sweep-uploads",
	Short: "Delete uploaded images no menu or dish references",
	Long: `Run the orphan upload sweep once, outside the server's schedule.

Files younger than UPLOAD_SWEEP_GRACE are kept. The run is recorded in the
sweep log like a scheduled one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.db.AutoMigrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		db := env.db.DB
		settingsService := service.NewSettingsService(repository.NewSettingsRepository(db), env.logger)
		dashboardService := service.NewDashboardService(repository.NewDashboardRepository(db), settingsService, env.logger)
		sweepLogRepo := repository.NewSweepLogRepository(db)
		sweeper := scheduler.NewUploadSweeper(
			dashboardService,
			upload.NewStore(env.cfg.Upload.Dir, env.logger),
			sweepLogRepo,
			env.logger,
			env.cfg.Upload.SweepCron,
			env.cfg.Upload.SweepGrace,
		)

		runID := sweeper.Sweep()
		entries, err := sweepLogRepo.ListByRun(runID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("sweep %s left no log entries", runID)
		}

		last := entries[len(entries)-1]
		fmt.Fprintf(cmd.OutOrStdout(), "Sweep %s: %s, %d files removed\n", runID, last.Status, last.Removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
