package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/repository"
	"menu-cms-svc/internal/service"
	"menu-cms-svc/pkg/logger"
)

// Sweeper removes unreferenced files; satisfied by *upload.Store
type Sweeper interface {
	Sweep(referenced []string, olderThan time.Time) ([]string, error)
}

// UploadSweeper periodically deletes uploaded images no menu or dish points at
type UploadSweeper struct {
	dashboardService service.DashboardService
	store            Sweeper
	sweepLogRepo     repository.SweepLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
	grace            time.Duration
	now              func() time.Time
}

// NewUploadSweeper creates a new upload sweeper. Files younger than grace are
// never removed, so an upload whose row is still being written survives.
func NewUploadSweeper(
	dashboardService service.DashboardService,
	store Sweeper,
	sweepLogRepo repository.SweepLogRepository,
	logger *logger.Logger,
	cronExpression string,
	grace time.Duration,
) *UploadSweeper {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &UploadSweeper{
		dashboardService: dashboardService,
		store:            store,
		sweepLogRepo:     sweepLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
		grace:            grace,
		now:              time.Now,
	}
}

// Start schedules the sweep job and starts the cron runner
func (s *UploadSweeper) Start() error {
	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	if _, err := s.cron.AddFunc(s.cronExpression, func() { s.Sweep() }); err != nil {
		return fmt.Errorf("failed to schedule upload sweep job: %w", err)
	}

	s.cron.Start()
	s.logger.WithFields(map[string]interface{}{
		"cron_expression": s.cronExpression,
		"grace":           s.grace.String(),
	}).Info("Upload sweeper started")

	return nil
}

// Stop waits for a running sweep to finish
func (s *UploadSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Upload sweeper stopped")
}

// RunOnce performs a single sweep and returns the removed file names
func (s *UploadSweeper) RunOnce() ([]string, error) {
	referenced, err := s.dashboardService.ReferencedImages()
	if err != nil {
		return nil, err
	}
	return s.store.Sweep(referenced, s.now().Add(-s.grace))
}

// Sweep is the scheduled job: one RunOnce bracketed by START and
// SUCCESS/FAILED entries in the sweep log. Returns the run id.
func (s *UploadSweeper) Sweep() string {
	runID := uuid.NewString()
	log := s.logger.WithField("run_id", runID)

	s.record(runID, models.SweepStatusStart, 0, fmt.Sprintf("Sweeping uploads older than %s", s.grace))

	removed, err := s.RunOnce()
	if err != nil {
		s.record(runID, models.SweepStatusFailed, len(removed), fmt.Sprintf("Upload sweep failed: %v", err))
		log.WithError(err).Error("Upload sweep failed")
		return runID
	}

	s.record(runID, models.SweepStatusSuccess, len(removed), strings.Join(removed, ", "))
	log.WithFields(map[string]interface{}{
		"removed": len(removed),
		"files":   removed,
	}).Info("Upload sweep completed")
	return runID
}

// record writes a sweep log entry; a failure is logged and otherwise ignored
func (s *UploadSweeper) record(runID, status string, removed int, message string) {
	entry := &models.SweepLog{
		RunID:   runID,
		Status:  status,
		Removed: removed,
		Message: models.StringPtr(message),
	}
	if err := s.sweepLogRepo.Create(entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create sweep log entry")
	}
}
