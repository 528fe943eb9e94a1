package holiday

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the registry whenever its backing file changes and reports
// each successful reload on the returned channel. It only works for
// registries created with Load. The channel closes when ctx is done or the
// watcher fails.
func (r *Registry) Watch(ctx context.Context) (<-chan struct{}, error) {
	if r.path == "" {
		return nil, errors.New("holiday: registry has no backing file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory so editor rename-and-replace saves are seen.
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		watcher.Close()
		return nil, err
	}

	reloads := make(chan struct{}, 1)
	go func() {
		defer close(reloads)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.EqualFold(filepath.Clean(ev.Name), filepath.Clean(r.path)) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := r.reload(); err != nil {
					continue
				}
				select {
				case reloads <- struct{}{}:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return reloads, nil
}
