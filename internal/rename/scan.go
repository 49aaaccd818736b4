// Package rename implements the batch rename pipeline: scanning a tree for
// files whose names would change under timestamp relocation, then executing
// the renames with per-file failure isolation.
package rename

import (
	"io/fs"
	"path/filepath"

	"github.com/filetidy/cli/internal/timestamp"
)

// Candidate is a pending rename: the file at Path would become NewName inside
// its parent directory.
type Candidate struct {
	Path    string
	NewName string
}

// Scan walks the tree under root and collects every regular file whose base
// name changes under timestamp relocation. Candidates keep traversal order.
// The slice is fully materialized so callers can preview and count before any
// mutation happens.
func Scan(root string) ([]Candidate, error) {
	var candidates []Candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if newName := timestamp.Relocate(name); newName != name {
			candidates = append(candidates, Candidate{Path: path, NewName: newName})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}
