// File: pkg/merge/types.go
package merge

import "fmt"

// Warning records a non-fatal condition attributed to a single input file,
// currently only a header line that differs from the group's fixed header.
type Warning struct {
	File    string // Path of the input file that triggered the warning.
	Message string // Human-readable description, including both header strings.
}

// FileError records a failure attributed to a single path: an input file that
// could not be read, or an output file that could not be written. Path is
// empty when the whole folder scan failed.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// Group is the sorted set of input files sharing one prefix class. A group
// with no files is valid and simply produces no output.
type Group struct {
	Class ClassSpec
	Files []string // Absolute paths, sorted lexicographically by filename.
}

// GroupResult is the outcome of merging one group. It is fully populated by
// the time Run returns and never mutated afterwards.
type GroupResult struct {
	Class      ClassSpec
	InputFiles int         // Number of files discovered for this class.
	Header     []byte      // Chosen header line, nil when no file contributed one.
	DataLines  int         // Number of merged data lines.
	OutputPath string      // Path actually written, empty when no output was created.
	Warnings   []Warning   // Header mismatches.
	Errors     []FileError // Unreadable inputs and failed output writes.
}

// Summary aggregates the results of one merge run over a folder.
type Summary struct {
	Folder  string
	Groups  []GroupResult // One entry per profile class, in profile order.
	Written []string      // Output paths actually written.
	Errors  []FileError   // Folder-level failures (the scan itself failed).
}

// TotalFiles returns the number of input files discovered across all classes.
func (s Summary) TotalFiles() int {
	total := 0
	for _, g := range s.Groups {
		total += g.InputFiles
	}
	return total
}

// AllWarnings returns the warnings of every group in class order.
func (s Summary) AllWarnings() []Warning {
	var warnings []Warning
	for _, g := range s.Groups {
		warnings = append(warnings, g.Warnings...)
	}
	return warnings
}

// AllErrors returns folder-level errors followed by every group's errors.
func (s Summary) AllErrors() []FileError {
	errs := append([]FileError(nil), s.Errors...)
	for _, g := range s.Groups {
		errs = append(errs, g.Errors...)
	}
	return errs
}

// Fatal reports whether the run failed before any group could be processed.
func (s Summary) Fatal() bool { return len(s.Errors) > 0 }

// ProgressUpdate is delivered to a ProgressFunc after each input file has been
// read (successfully or not). Progress is advisory; consumers must not rely on
// it for correctness.
type ProgressUpdate struct {
	Processed int // Files finished so far, including this one.
	Total     int // Total files discovered across all classes.
	Class     ClassSpec
	File      string // Path of the file that just finished.
}

// ProgressFunc receives coarse per-file progress while a run executes. A nil
// ProgressFunc is allowed and disables reporting.
type ProgressFunc func(ProgressUpdate)
