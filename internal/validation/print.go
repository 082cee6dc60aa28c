package validation

import (
	"fmt"
	"io"

	"github.com/newkub/templates/internal/ui"
)

// PrintResult writes a validation report to w.
func PrintResult(w io.Writer, name string, r *Result) {
	fmt.Fprintln(w, ui.Title.Render("Validating "+name))

	for _, f := range r.Errors {
		fmt.Fprintf(w, "  %s\n", ui.Fail(fmt.Sprintf("%s (%s)", f.Message, f.Code)))
	}
	for _, f := range r.Warnings {
		fmt.Fprintf(w, "  %s\n", ui.Warn(fmt.Sprintf("%s (%s)", f.Message, f.Code)))
	}

	fmt.Fprintln(w)
	if r.IsValid {
		fmt.Fprintf(w, "  %s\n", ui.OK(fmt.Sprintf("Template is valid (%d warnings)", len(r.Warnings))))
		return
	}
	fmt.Fprintf(w, "  %s\n", ui.Fail(fmt.Sprintf("Template is invalid: %d errors, %d warnings", len(r.Errors), len(r.Warnings))))
}

// PrintHealth writes a health report to w.
func PrintHealth(w io.Writer, s *HealthStatus) {
	fmt.Fprintln(w, ui.Title.Render("Health check: "+s.TemplateName))
	fmt.Fprintln(w, ui.Faint.Render("Checked at "+s.LastChecked))
	fmt.Fprintln(w)

	if len(s.Issues) == 0 {
		fmt.Fprintf(w, "  %s\n", ui.OK("No issues found"))
	}
	for _, issue := range s.Issues {
		var line string
		switch issue.Severity {
		case SeverityError:
			line = ui.Fail(issue.Message)
		case SeverityWarning:
			line = ui.Warn(issue.Message)
		default:
			line = ui.Info(issue.Message)
		}
		if issue.Fixable {
			line += ui.Faint.Render(" (fixable)")
		}
		fmt.Fprintf(w, "  %s\n", line)
		if issue.Diff != "" {
			fmt.Fprintln(w, issue.Diff)
		}
	}

	if len(s.Suggestions) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Heading.Render("Suggestions:"))
		for _, suggestion := range s.Suggestions {
			fmt.Fprintf(w, "  - %s\n", suggestion)
		}
	}

	fmt.Fprintln(w)
	if s.IsHealthy {
		fmt.Fprintf(w, "  %s\n", ui.OK("Project is healthy"))
	} else {
		fmt.Fprintf(w, "  %s\n", ui.Fail("Project is unhealthy"))
	}
}
