package scheduler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/models/response"
	"menu-cms-svc/internal/upload"
	"menu-cms-svc/pkg/logger"
)

type fakeDashboard struct {
	images []string
	err    error
}

func (f *fakeDashboard) GetDashboard() (*response.DashboardResponse, error) {
	return &response.DashboardResponse{}, nil
}

func (f *fakeDashboard) ReferencedImages() ([]string, error) {
	return f.images, f.err
}

type memorySweepLog struct {
	entries []*models.SweepLog
	err     error
}

func (m *memorySweepLog) Create(entry *models.SweepLog) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memorySweepLog) ListByRun(runID string) ([]*models.SweepLog, error) {
	var out []*models.SweepLog
	for _, e := range m.entries {
		if e.RunID == runID {
			out = append(out, e)
		}
	}
	return out, nil
}

func statuses(entries []*models.SweepLog) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Status)
	}
	return out
}

func TestUploadSweeper_RunOnce(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"kept.png", "orphan.png", "fresh.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "kept.png"), old, old))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "orphan.png"), old, old))

	dash := &fakeDashboard{images: []string{upload.PublicPrefix + "kept.png"}}
	s := NewUploadSweeper(dash, upload.NewStore(dir, logger.Discard()), &memorySweepLog{}, logger.Discard(), "0 0 3 * * *", time.Hour)

	removed, err := s.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, []string{"orphan.png"}, removed)

	_, err = os.Stat(filepath.Join(dir, "kept.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "fresh.png"))
	assert.NoError(t, err)
}

func TestUploadSweeper_ReferenceFailureRemovesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	dash := &fakeDashboard{err: errors.New("db down")}
	s := NewUploadSweeper(dash, upload.NewStore(dir, logger.Discard()), &memorySweepLog{}, logger.Discard(), "0 0 3 * * *", time.Hour)

	_, err := s.RunOnce()
	assert.Error(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestUploadSweeper_StartRejectsBadExpression(t *testing.T) {
	s := NewUploadSweeper(&fakeDashboard{}, upload.NewStore(t.TempDir(), logger.Discard()), &memorySweepLog{}, logger.Discard(), "not a cron", time.Hour)
	assert.Error(t, s.Start())
}

func TestUploadSweeper_StartStop(t *testing.T) {
	s := NewUploadSweeper(&fakeDashboard{}, upload.NewStore(t.TempDir(), logger.Discard()), &memorySweepLog{}, logger.Discard(), "0 0 3 * * *", time.Hour)
	require.NoError(t, s.Start())
	s.Stop()
}

func TestUploadSweeper_SweepRecordsRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orphan.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	logs := &memorySweepLog{}
	s := NewUploadSweeper(&fakeDashboard{}, upload.NewStore(dir, logger.Discard()), logs, logger.Discard(), "0 0 3 * * *", time.Hour)

	runID := s.Sweep()
	entries, err := logs.ListByRun(runID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.SweepStatusStart, models.SweepStatusSuccess}, statuses(entries))
	assert.Equal(t, 1, entries[1].Removed)
	assert.Equal(t, "orphan.png", models.StringValue(entries[1].Message))
}

func TestUploadSweeper_SweepRecordsFailure(t *testing.T) {
	logs := &memorySweepLog{}
	dash := &fakeDashboard{err: errors.New("db down")}
	s := NewUploadSweeper(dash, upload.NewStore(t.TempDir(), logger.Discard()), logs, logger.Discard(), "0 0 3 * * *", time.Hour)

	runID := s.Sweep()
	entries, err := logs.ListByRun(runID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.SweepStatusStart, models.SweepStatusFailed}, statuses(entries))
	assert.Contains(t, models.StringValue(entries[1].Message), "db down")
}

func TestUploadSweeper_LogWriteFailureDoesNotStopSweep(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orphan.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	logs := &memorySweepLog{err: errors.New("read only")}
	s := NewUploadSweeper(&fakeDashboard{}, upload.NewStore(dir, logger.Discard()), logs, logger.Discard(), "0 0 3 * * *", time.Hour)

	s.Sweep()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
