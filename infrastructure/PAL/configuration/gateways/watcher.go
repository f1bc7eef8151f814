package gateways

import (
	"context"
	"gwswitch/application/logging"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader is asked to re-read the candidate list.
type Reloader interface {
	Reload()
}

// Watcher requests a reload whenever the candidate file changes.
//
// Uses fsnotify for instant updates, with polling as fallback.
type Watcher struct {
	reloader Reloader
	resolver Resolver
	interval time.Duration
	logger   logging.Logger

	lastSeen fileStamp
}

type fileStamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

// NewWatcher creates a watcher for the file named by resolver.
// interval is the fallback polling interval; zero disables polling.
func NewWatcher(reloader Reloader, resolver Resolver, interval time.Duration, logger logging.Logger) *Watcher {
	return &Watcher{
		reloader: reloader,
		resolver: resolver,
		interval: interval,
		logger:   logger,
	}
}

// Watch blocks until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) {
	path, err := w.resolver.Resolve()
	if err != nil {
		w.logger.Printf("gateway watcher: %v", err)
		return
	}
	w.lastSeen = stat(path)

	// Watch the directory because editors that save via rename drop the
	// watch on the original inode.
	var fsEvents <-chan fsnotify.Event
	var fsErrors <-chan error
	dir, fileName := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		defer func() {
			_ = watcher.Close()
		}()
		if addErr := watcher.Add(dir); addErr == nil {
			fsEvents = watcher.Events
			fsErrors = watcher.Errors
			w.logger.Printf("gateway watcher: watching %s for changes to %s", dir, fileName)
		} else {
			w.logger.Printf("gateway watcher: fsnotify watch failed: %v (using polling)", addErr)
		}
	} else {
		w.logger.Printf("gateway watcher: fsnotify unavailable: %v (using polling)", err)
	}

	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			if filepath.Base(event.Name) != fileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.lastSeen = stat(path)
				w.logger.Printf("gateway watcher: %s changed (op=%s)", fileName, event.Op)
				w.reloader.Reload()
			}
		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			w.logger.Printf("gateway watcher: fsnotify error: %v", err)
		case <-tick:
			w.poll(path)
		}
	}
}

func (w *Watcher) poll(path string) {
	current := stat(path)
	if current.equal(w.lastSeen) {
		return
	}
	w.lastSeen = current
	w.reloader.Reload()
}

func (s fileStamp) equal(other fileStamp) bool {
	return s.exists == other.exists && s.size == other.size && s.modTime.Equal(other.modTime)
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{exists: true, size: info.Size(), modTime: info.ModTime()}
}
