package validation

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"github.com/newkub/templates/internal/preview"
)

// SyncedConfigFiles are compared between template and project.
var SyncedConfigFiles = []string{".gitignore", "tsconfig.json", "package.json"}

// HealthOptions tune CheckProjectHealth.
type HealthOptions struct {
	// Diffs attaches a unified diff to each out-of-sync config issue.
	Diffs bool
}

// CheckProjectHealth compares the project at projectPath (the working
// directory when empty) with template name.
func (v *Validator) CheckProjectHealth(name, projectPath string, opts HealthOptions) *HealthStatus {
	if projectPath == "" {
		projectPath = v.workDir
	}
	templateDir := v.reg.Path(name)

	status := &HealthStatus{
		TemplateName: name,
		Issues:       []HealthIssue{},
		Suggestions:  []string{},
	}

	for _, f := range v.ValidateTemplate(name, nil).Errors {
		status.Issues = append(status.Issues, HealthIssue{
			Severity: SeverityError,
			Message:  f.Message,
			Path:     f.Path,
			Fixable:  false,
		})
	}

	v.checkConfigSync(templateDir, projectPath, opts, status)
	v.checkOutdatedFiles(templateDir, projectPath, status)
	v.checkDependencies(templateDir, projectPath, status)

	status.IsHealthy = Healthy(status.Issues)
	status.LastChecked = v.now().UTC().Format(time.RFC3339)
	return status
}

func (v *Validator) checkConfigSync(templateDir, projectPath string, opts HealthOptions, status *HealthStatus) {
	for _, name := range SyncedConfigFiles {
		src := filepath.Join(templateDir, name)
		dst := filepath.Join(projectPath, name)
		if !v.files.Exists(src) || !v.files.Exists(dst) || v.files.ContentEquals(src, dst) {
			continue
		}

		issue := HealthIssue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Config file %q is out of sync with template", name),
			Path:     dst,
			Fixable:  true,
		}
		if opts.Diffs {
			before, _ := v.files.ReadFile(src)
			after, _ := v.files.ReadFile(dst)
			issue.Diff = udiff.Unified("template/"+name, "project/"+name, string(before), string(after))
		}
		status.Issues = append(status.Issues, issue)
		status.Suggestions = append(status.Suggestions, fmt.Sprintf("Run sync command to update %q from template", name))
	}
}

func (v *Validator) checkOutdatedFiles(templateDir, projectPath string, status *HealthStatus) {
	present := make(map[string]bool)
	for _, name := range v.files.ReadDirNames(projectPath) {
		present[name] = true
	}
	for _, name := range v.files.ReadDirNames(templateDir) {
		if present[name] || name == "node_modules" || strings.HasPrefix(name, ".") {
			continue
		}
		status.Suggestions = append(status.Suggestions, fmt.Sprintf("Consider adding %q from template to your project", name))
	}
}

// checkDependencies compares dependencies plus devDependencies. Unparsable
// package.json files end the check without an issue.
func (v *Validator) checkDependencies(templateDir, projectPath string, status *HealthStatus) {
	tpl, err := preview.ReadPackageJSON(v.files, filepath.Join(templateDir, "package.json"))
	if err != nil {
		return
	}
	proj, err := preview.ReadPackageJSON(v.files, filepath.Join(projectPath, "package.json"))
	if err != nil {
		return
	}

	templateDeps := mergeDeps(tpl.Dependencies, tpl.DevDependencies)
	projectDeps := mergeDeps(proj.Dependencies, proj.DevDependencies)

	names := make([]string, 0, len(templateDeps))
	for name := range templateDeps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		projectVersion := projectDeps[name]
		switch {
		case projectVersion == "":
			status.Suggestions = append(status.Suggestions, fmt.Sprintf("Consider adding dependency %q to your project", name))
		case projectVersion != templateDeps[name]:
			status.Issues = append(status.Issues, HealthIssue{
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("Dependency %q version differs from template", name),
				Fixable:  false,
			})
		}
	}
}

// mergeDeps overlays devDependencies on dependencies.
func mergeDeps(deps, devDeps map[string]string) map[string]string {
	merged := make(map[string]string, len(deps)+len(devDeps))
	for k, v := range deps {
		merged[k] = v
	}
	for k, v := range devDeps {
		merged[k] = v
	}
	return merged
}
