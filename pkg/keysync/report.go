package keysync

import "fmt"

// Report describes the changes one Merge applied to a target document.
type Report struct {
	Language   string
	Copied     []string
	Translated []string
	Fallbacks  []Failure
	Mismatches []string
}

// Failure is a translation that failed and fell back to the baseline value.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

// Changed reports whether the merge added any key.
func (r *Report) Changed() bool {
	return len(r.Copied)+len(r.Translated)+len(r.Fallbacks) > 0
}

// Summary is the outcome of a Syncer run.
type Summary struct {
	Files   []FileResult
	Skipped []SkippedFile
}

// FileResult is a merged locale file.
type FileResult struct {
	Path    string
	Report  *Report
	Written bool
}

// SkippedFile is a file that could not be processed.
type SkippedFile struct {
	Path string
	Err  error
}
