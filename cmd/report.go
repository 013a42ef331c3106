package cmd

import (
	"fmt"
	"io"

	"github.com/7jameslondon/MagMerge/pkg/merge"
)

// printReport renders a run summary as plain text: per-class file counts,
// per-class output lines, then any warnings and errors. The same text is what
// the GUI shell shows in its log pane.
func printReport(out io.Writer, summary merge.Summary) {
	fmt.Fprintf(out, "Folder: %s\n", summary.Folder)
	for _, g := range summary.Groups {
		fmt.Fprintf(out, "%s files: %d\n", g.Class.Name, g.InputFiles)
	}

	if summary.TotalFiles() == 0 {
		fmt.Fprintln(out, "No matching files found.")
		return
	}

	for _, g := range summary.Groups {
		if g.OutputPath != "" {
			fmt.Fprintf(out, "%s output: %s (lines: %d)\n", g.Class.Name, g.OutputPath, g.DataLines)
		} else {
			fmt.Fprintf(out, "%s output: (not created)\n", g.Class.Name)
		}
	}

	if warnings := summary.AllWarnings(); len(warnings) > 0 {
		fmt.Fprintln(out, "Warnings:")
		for _, w := range warnings {
			fmt.Fprintf(out, "- %s: %s\n", w.File, w.Message)
		}
	}

	if errs := summary.AllErrors(); len(errs) > 0 {
		fmt.Fprintln(out, "Errors:")
		for _, e := range errs {
			if e.Path != "" {
				fmt.Fprintf(out, "- %s: %v\n", e.Path, e.Err)
			} else {
				fmt.Fprintf(out, "- %v\n", e.Err)
			}
		}
	}
}
