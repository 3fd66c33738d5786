package preview

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// watchSet watches directory trees recursively and single files through their
// parent directory.
type watchSet struct {
	watcher *fsnotify.Watcher
	trees   []string
	files   map[string]bool
}

func newWatchSet(cfg *config.Config) (*watchSet, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	ws := &watchSet{watcher: w, files: make(map[string]bool)}

	for _, dir := range []string{cfg.ContentDir(), cfg.Resolve(cfg.Static)} {
		if dir == "" {
			continue
		}
		if err := ws.addTree(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}
	for _, f := range []string{cfg.Resolve(cfg.Sidebars), cfg.Resolve(cfg.Features)} {
		if f == "" {
			continue
		}
		if err := ws.addFile(f); err != nil {
			_ = w.Close()
			return nil, err
		}
	}
	return ws, nil
}

func (ws *watchSet) addTree(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	ws.trees = append(ws.trees, abs)
	return addDirsRecursive(ws.watcher, abs)
}

func (ws *watchSet) addFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	ws.files[abs] = true
	return ws.watcher.Add(filepath.Dir(abs))
}

// relevant reports whether a change to path affects the build.
func (ws *watchSet) relevant(path string) bool {
	if shouldIgnoreEvent(path) {
		return false
	}
	if ws.files[path] {
		return true
	}
	for _, root := range ws.trees {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (ws *watchSet) run(ctx context.Context, trigger func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ws.watcher.Events:
			if !ok {
				return
			}
			ws.handle(ev, trigger)
		case err, ok := <-ws.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (ws *watchSet) handle(ev fsnotify.Event, trigger func()) {
	if !ws.relevant(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(ws.watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func (ws *watchSet) Close() error { return ws.watcher.Close() }

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	st, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("watch %s: not a directory", root)
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rebuilds.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return base == "Thumbs.db"
}
