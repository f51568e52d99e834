package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the configuration whenever the config file is written or
// replaced. It returns a stop function that releases the watcher. The
// watcher binds to the containing directory so a config file created after
// startup is still picked up.
func Watch() (func(), error) {
	cfg := Get()
	path := cfg.FilePath()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := Reload(); err != nil {
					zap.S().Warnf("config reload failed: %v", err)
					continue
				}
				zap.S().Infof("configuration reloaded from %s", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				zap.S().Warnf("config watcher error: %v", err)
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}
