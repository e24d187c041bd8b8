package runner

import "github.com/yaklabco/triviakit/pkg/fix"

// FileOutcome pairs a path with its result or error.
type FileOutcome struct {
	Path   string
	Result *FileResult
	Error  error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesSkipped    int
	FilesErrored    int

	// FilesChanged counts files the transform changed, written or not.
	FilesChanged int

	// FilesModified counts files written to disk.
	FilesModified int

	Edits     int
	Additions int
	Deletions int

	BlocksRewritten int
	BlocksSkipped   int
}

// Result is the outcome of a run, files in path order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasChanges reports whether any file was changed by the transform.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// Diffs returns the diffs of changed files in path order.
func (r *Result) Diffs() []*fix.Diff {
	if r == nil {
		return nil
	}
	var diffs []*fix.Diff
	for _, outcome := range r.Files {
		if outcome.Result != nil && outcome.Result.Diff.HasChanges() {
			diffs = append(diffs, outcome.Result.Diff)
		}
	}
	return diffs
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	res := outcome.Result
	if res == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.BlocksRewritten += res.Blocks - res.BlocksSkipped
	r.Stats.BlocksSkipped += res.BlocksSkipped

	if res.Skipped {
		r.Stats.FilesSkipped++
	}
	if res.Written {
		r.Stats.FilesModified++
	}
	if res.Changed() {
		r.Stats.FilesChanged++
		r.Stats.Edits += len(res.Edits)
	}
	if res.Diff != nil {
		r.Stats.Additions += res.Diff.Additions
		r.Stats.Deletions += res.Diff.Deletions
	}
}
