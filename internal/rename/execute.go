package rename

import (
	"os"
	"path/filepath"
)

// Result is the outcome of one rename attempt. Err is nil on success.
type Result struct {
	Candidate Candidate
	Err       error
}

// Summary counts the outcomes of one batch run.
type Summary struct {
	Renamed int
	Failed  int
}

// Execute renames each candidate in order, within its parent directory.
// A failure on one candidate is reported through report and counted, and
// processing continues with the next candidate; one bad file never blocks
// the batch. report may be nil.
func Execute(candidates []Candidate, report func(Result)) Summary {
	var summary Summary

	for _, c := range candidates {
		newPath := filepath.Join(filepath.Dir(c.Path), c.NewName)
		err := os.Rename(c.Path, newPath)
		if err != nil {
			summary.Failed++
		} else {
			summary.Renamed++
		}
		if report != nil {
			report(Result{Candidate: c, Err: err})
		}
	}

	return summary
}
