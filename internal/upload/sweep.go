package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Sweep removes files that no entity references and that were last modified
// before olderThan. It returns the removed file names.
func (s *Store) Sweep(referenced []string, olderThan time.Time) ([]string, error) {
	keep := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		if name := FileName(p); name != "" {
			keep[name] = struct{}{}
		}
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := keep[e.Name()]; ok {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(olderThan) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.logger.WithError(err).WithField("file", e.Name()).Error("Failed to remove orphaned upload")
			continue
		}
		removed = append(removed, e.Name())
	}

	return removed, nil
}
