package dryrun

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/newkub/templates/internal/fileset"
)

// Reasons attached to operations and conflicts.
const (
	ReasonFileExists    = "File already exists"
	ReasonProjectExists = "Project directory already exists"
	ReasonContentDiffer = "File content differs"
)

// BulkOverwriteThreshold is the overwrite count above which a bulk warning
// is raised.
const BulkOverwriteThreshold = 5

// NodeModulesWarning is raised when any planned path contains node_modules.
const NodeModulesWarning = "node_modules directory will be copied (consider running install instead)"

// nominalFileSize is what every created or overwritten file counts for in
// EstimateSize. Real sizes are not measured.
const nominalFileSize = 1024

// PlanOperations returns one operation per template file: overwrite when
// the target path exists, create otherwise. Content is not compared.
func PlanOperations(files *fileset.Inspector, templateRoot, targetRoot string) []Operation {
	ops := []Operation{}
	for _, rel := range files.Files(templateRoot, fileset.PlanExcludes()) {
		if files.Exists(filepath.Join(targetRoot, filepath.FromSlash(rel))) {
			ops = append(ops, Operation{Type: OpOverwrite, Path: rel, Reason: ReasonFileExists})
			continue
		}
		ops = append(ops, Operation{Type: OpCreate, Path: rel})
	}
	return ops
}

// DetectConflicts reports the target root when it exists, then every
// template file whose target counterpart exists with different content.
// With withDiff set each file conflict carries a unified diff.
func DetectConflicts(files *fileset.Inspector, templateRoot, targetRoot string, withDiff bool) []Conflict {
	conflicts := []Conflict{}
	if files.Exists(targetRoot) {
		conflicts = append(conflicts, Conflict{
			Path:   targetRoot,
			Action: ActionOverwrite,
			Reason: ReasonProjectExists,
		})
	}

	for _, rel := range files.Files(templateRoot, fileset.PlanExcludes()) {
		src := filepath.Join(templateRoot, filepath.FromSlash(rel))
		dst := filepath.Join(targetRoot, filepath.FromSlash(rel))
		if !files.Exists(dst) || files.ContentEquals(src, dst) {
			continue
		}
		c := Conflict{Path: rel, Action: ActionOverwrite, Reason: ReasonContentDiffer}
		if withDiff {
			c.Diff = Diff(files, rel, src, dst)
		}
		conflicts = append(conflicts, c)
	}
	return conflicts
}

// Diff renders a unified diff from the template file to the target file.
// Unreadable sides diff as empty.
func Diff(files *fileset.Inspector, label, templatePath, targetPath string) string {
	before, _ := files.ReadFile(templatePath)
	after, _ := files.ReadFile(targetPath)
	return udiff.Unified("template/"+label, "project/"+label, string(before), string(after))
}

// Warnings derives the risk warnings for a plan.
func Warnings(conflicts []Conflict, ops []Operation) []string {
	warnings := []string{}
	if len(conflicts) > 0 {
		warnings = append(warnings, fmt.Sprintf("%d file(s) will be overwritten", len(conflicts)))
	}

	overwrites := 0
	for _, op := range ops {
		if op.Type == OpOverwrite {
			overwrites++
		}
	}
	if overwrites > BulkOverwriteThreshold {
		warnings = append(warnings, fmt.Sprintf("Multiple files (%d) will be overwritten", overwrites))
	}

	// The walker already skips node_modules by exact name; this catches
	// differently cased directories that slip past it.
	for _, op := range ops {
		if strings.Contains(strings.ToLower(op.Path), "node_modules") {
			warnings = append(warnings, NodeModulesWarning)
			break
		}
	}
	return warnings
}

// EstimateSize returns an approximate size for the plan, counting a fixed
// nominal size per created or overwritten file.
func EstimateSize(ops []Operation) string {
	total := 0
	for _, op := range ops {
		if op.Type == OpCreate || op.Type == OpOverwrite {
			total += nominalFileSize
		}
	}
	return formatSize(total)
}

func formatSize(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	}
}
