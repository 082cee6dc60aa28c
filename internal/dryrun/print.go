package dryrun

import (
	"fmt"
	"io"

	"github.com/newkub/templates/internal/ui"
)

// maxListedOperations caps the per-file listing in Print.
const maxListedOperations = 20

// Print writes a human-readable dry-run report to w.
func Print(w io.Writer, r *Result) {
	fmt.Fprintln(w, ui.Title.Render("Dry Run Results"))
	fmt.Fprintln(w, ui.Rule())

	fmt.Fprintf(w, "\n  Template:       %s\n", r.TemplateName)
	fmt.Fprintf(w, "  Project:        %s\n", r.ProjectName)
	fmt.Fprintf(w, "  Estimated size: %s\n", r.EstimatedSize)

	create, overwrite, skip := r.Counts()
	fmt.Fprintf(w, "\n%s\n", ui.Heading.Render("File operations:"))
	fmt.Fprintf(w, "  Create:    %d files\n", create)
	fmt.Fprintf(w, "  Overwrite: %d files\n", overwrite)
	fmt.Fprintf(w, "  Skip:      %d files\n", skip)

	if len(r.Conflicts) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Heading.Render("Conflicts:"))
		for _, c := range r.Conflicts {
			fmt.Fprintf(w, "  %s\n", ui.Warn(fmt.Sprintf("%s - %s", c.Path, c.Reason)))
			if c.Diff != "" {
				fmt.Fprintln(w, c.Diff)
			}
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Heading.Render("Warnings:"))
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	if len(r.FilesToCreate) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Heading.Render("Files:"))
		for i, op := range r.FilesToCreate {
			if i == maxListedOperations {
				fmt.Fprintf(w, "  ... and %d more files\n", len(r.FilesToCreate)-maxListedOperations)
				break
			}
			mark := "+"
			switch op.Type {
			case OpOverwrite:
				mark = "~"
			case OpSkip:
				mark = "-"
			}
			fmt.Fprintf(w, "  %s %s\n", mark, op.Path)
		}
	}

	fmt.Fprintf(w, "\n%s\n", ui.Rule())
}
