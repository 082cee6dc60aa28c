package preview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/newkub/templates/internal/ui"
)

// Print writes a human-readable preview to w.
func Print(w io.Writer, p *Preview) {
	title := "Template: " + p.Name
	if p.Version != "" {
		title += " (v" + p.Version + ")"
	}
	fmt.Fprintln(w, ui.Title.Render(title))

	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}

	var meta []string
	if p.Category != "" {
		meta = append(meta, "Category: "+p.Category)
	}
	if len(p.Tags) > 0 {
		meta = append(meta, "Tags: "+strings.Join(p.Tags, ", "))
	}
	if len(meta) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Faint.Render(strings.Join(meta, " | ")))
	}

	fmt.Fprintf(w, "\n%s\n", ui.Heading.Render("Structure:"))
	ui.PrintTree(w, p.Structure, "  ")

	if d := p.Dependencies; d != nil {
		fmt.Fprintf(w, "\n%s\n", ui.Heading.Render("Dependencies:"))
		fmt.Fprintf(w, "  Total: %d packages\n", d.Total)
		printDeps(w, "Production", d.Dependencies, 10)
		printDeps(w, "Development", d.DevDependencies, 5)
	}

	if len(p.Features) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Heading.Render("Features:"))
		for _, f := range p.Features {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
}

func printDeps(w io.Writer, label string, deps map[string]string, limit int) {
	if len(deps) == 0 {
		return
	}
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "  %s:\n", label)
	for i, name := range names {
		if i == limit {
			fmt.Fprintf(w, "    ... and %d more\n", len(names)-limit)
			break
		}
		fmt.Fprintf(w, "    - %s@%s\n", name, deps[name])
	}
}
