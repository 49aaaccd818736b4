// Package clean removes development artifacts: cached bytecode directories
// and rotated log files.
package clean

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// cacheDirName is the directory name swept by RemoveCacheDirs.
const cacheDirName = "__pycache__"

// RemoveCacheDirs recursively removes every __pycache__ directory under root
// and returns the number removed. A failure on one directory is logged and
// does not stop the sweep.
func RemoveCacheDirs(root string) (int, error) {
	removed := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || d.Name() != cacheDirName {
			return nil
		}

		log.Info("Removing cache directory", "path", path)
		if err := os.RemoveAll(path); err != nil {
			log.Error("Failed to remove cache directory", "path", path, "error", err)
			return nil
		}
		removed++
		return filepath.SkipDir
	})
	if err != nil {
		return removed, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return removed, nil
}

// RemoveLogFiles removes all .log files and their rotated versions
// (name.log.1, name.log.2.gz, ...) from dir and returns the number removed.
// A missing logs directory is not an error; the sweep is just skipped.
func RemoveLogFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Logs directory does not exist", "path", dir)
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !isLogFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		log.Info("Removing log file", "path", path)
		if err := os.Remove(path); err != nil {
			log.Error("Failed to remove log file", "path", path, "error", err)
			continue
		}
		removed++
	}

	return removed, nil
}

// isLogFile reports whether name is a log file or a rotated variant of one.
func isLogFile(name string) bool {
	return strings.HasSuffix(name, ".log") || strings.Contains(name, ".log.")
}
