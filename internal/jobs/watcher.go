// Package jobs holds background loops that run for the lifetime of the
// server.
package jobs

import (
	"context"
	"log"
	"os"
	"time"

	"claydash/internal/loader"
	"claydash/internal/metrics"
)

// DatasetWatcher invalidates the dataset cache when any of the CSV exports
// change on disk, so the next request picks up the new data without a manual
// refresh.
type DatasetWatcher struct {
	loader   *loader.Loader
	paths    []string
	interval time.Duration
	mtimes   map[string]time.Time
}

// NewDatasetWatcher creates a watcher over the given files.
func NewDatasetWatcher(l *loader.Loader, interval time.Duration, paths ...string) *DatasetWatcher {
	return &DatasetWatcher{
		loader:   l,
		paths:    paths,
		interval: interval,
		mtimes:   make(map[string]time.Time),
	}
}

// Start begins the watch loop. It blocks until the context is cancelled.
func (w *DatasetWatcher) Start(ctx context.Context) {
	log.Printf("Dataset watcher started (interval: %v, files: %d)", w.interval, len(w.paths))

	// Record the baseline immediately so a file written before startup does
	// not count as a change.
	w.check(false)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Dataset watcher stopped")
			return
		case <-ticker.C:
			w.check(true)
		}
	}
}

// check stats every watched file and invalidates the cache once if any
// modification time moved. A missing file is skipped; the loader reports it
// properly on the next load.
func (w *DatasetWatcher) check(invalidate bool) {
	changed := false
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		mtime := info.ModTime()
		if prev, ok := w.mtimes[path]; ok && !mtime.Equal(prev) {
			log.Printf("Dataset watcher: %s changed", path)
			changed = true
		}
		w.mtimes[path] = mtime
	}

	if changed && invalidate {
		w.loader.Invalidate()
		metrics.InvalidationsTotal.Inc()
	}
}
