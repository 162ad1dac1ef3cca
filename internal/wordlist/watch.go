package wordlist

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/wordnum/internal/debug"
	"github.com/standardbeagle/wordnum/internal/errors"
)

// Watch monitors a local wordlist file and invokes onChange after its
// contents change, debounced so editor write bursts trigger a single run.
// The parent directory is watched rather than the file itself because many
// editors replace files by rename, which drops a direct file watch.
//
// Watch blocks until ctx is cancelled. onChange failures are logged and
// watching continues; a watcher failure ends the loop with an error.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewInputSourceError("watch", path, err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return errors.NewInputSourceError("watch", path, err)
	}
	target := filepath.Clean(path)
	debug.LogWatch("watching %s (debounce %v)\n", target, debounce)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debug.LogWatch("event %s for %s\n", event.Op, event.Name)
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounce)
			pending = true

		case <-timer.C:
			pending = false
			if err := onChange(ctx); err != nil {
				debug.LogWatch("regenerate failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.NewInputSourceError("watch", path, err)
		}
	}
}
