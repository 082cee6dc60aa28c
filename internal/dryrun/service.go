package dryrun

import (
	"path/filepath"
	"strings"

	"github.com/newkub/templates/internal/preview"
	"github.com/newkub/templates/internal/registry"
)

// Options tune a dry run.
type Options struct {
	// Diffs adds unified diffs to file conflicts.
	Diffs bool
}

// Service runs dry runs of templates from a registry against projects
// under a working directory.
type Service struct {
	reg     *registry.Registry
	preview *preview.Service
	workDir string
}

// NewService returns a Service. Relative project names resolve against
// workDir.
func NewService(reg *registry.Registry, workDir string) *Service {
	return &Service{reg: reg, preview: preview.NewService(reg), workDir: workDir}
}

// TargetPath returns where projectName would be created.
func (s *Service) TargetPath(projectName string) string {
	if filepath.IsAbs(projectName) {
		return filepath.Clean(projectName)
	}
	return filepath.Join(s.workDir, projectName)
}

// DryRun reports what applying template name to projectName would do.
// It fails only when the template does not exist.
func (s *Service) DryRun(name, projectName string, opts Options) (*Result, error) {
	if strings.TrimSpace(projectName) == "" {
		return nil, registry.NewInvalidProjectName(projectName, "name must not be empty")
	}

	p, err := s.preview.Preview(name)
	if err != nil {
		return nil, err
	}

	files := s.reg.Files()
	templateRoot := s.reg.Path(name)
	targetRoot := s.TargetPath(projectName)

	ops := PlanOperations(files, templateRoot, targetRoot)
	conflicts := DetectConflicts(files, templateRoot, targetRoot, opts.Diffs)

	return &Result{
		TemplateName:  name,
		ProjectName:   projectName,
		Preview:       p,
		FilesToCreate: ops,
		EstimatedSize: EstimateSize(ops),
		Warnings:      Warnings(conflicts, ops),
		Conflicts:     conflicts,
	}, nil
}
