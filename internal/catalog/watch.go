package catalog

import (
	"context"
	"os"
	"time"
)

// Watcher polls file modification times and calls onChange when any of them
// differs from the previous poll. A file that disappears or appears counts as
// a change.
type Watcher struct {
	paths     []string
	interval  time.Duration
	onChange  func(path string)
	lastMTime map[string]time.Time
}

// NewWatcher creates a watcher for paths. It does nothing until Run.
func NewWatcher(paths []string, interval time.Duration, onChange func(path string)) *Watcher {
	return &Watcher{
		paths:     append([]string(nil), paths...),
		interval:  interval,
		onChange:  onChange,
		lastMTime: make(map[string]time.Time, len(paths)),
	}
}

// Run polls until ctx is done. The first poll only records the current
// state.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(true)
	for {
		select {
		case <-ticker.C:
			w.poll(false)
		case <-ctx.Done():
			return
		}
	}
}

// poll compares mtimes with the last poll and reports changed paths. Each
// change fires the callback once, even if several files changed.
func (w *Watcher) poll(prime bool) bool {
	var changed string
	for _, p := range w.paths {
		var mt time.Time
		if fi, err := os.Stat(p); err == nil {
			mt = fi.ModTime()
		}
		last, seen := w.lastMTime[p]
		w.lastMTime[p] = mt
		if seen && !mt.Equal(last) && changed == "" {
			changed = p
		}
	}
	if prime || changed == "" {
		return false
	}
	if w.onChange != nil {
		w.onChange(changed)
	}
	return true
}
