package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// writeFile atomically replaces outDir/rel with data.
func writeFile(outDir, rel string, data []byte) error {
	path := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", rel, err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", rel, err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			slog.Debug("Cleanup pending file", logfields.Path(path), logfields.Error(err))
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", rel, err)
	}
	return nil
}

// cleanDir removes everything inside dir, keeping dir itself so a preview
// server rooted there keeps working.
func cleanDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
