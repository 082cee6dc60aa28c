package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/newkub/templates/internal/fileset"
	"github.com/newkub/templates/internal/registry"
)

// Validator validates templates from a registry and checks projects
// created from them.
type Validator struct {
	reg     *registry.Registry
	files   *fileset.Inspector
	workDir string
	now     func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used for HealthStatus.LastChecked.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New returns a Validator. workDir is the project checked when
// CheckProjectHealth gets no project path.
func New(reg *registry.Registry, workDir string, opts ...Option) *Validator {
	v := &Validator{reg: reg, files: reg.Files(), workDir: workDir, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateTemplate checks template name against rules, or DefaultRules when
// rules is nil. A missing template yields a single TEMPLATE_NOT_FOUND error.
func (v *Validator) ValidateTemplate(name string, rules *Rules) *Result {
	dir := v.reg.Path(name)
	res := &Result{Errors: []Finding{}, Warnings: []Finding{}}

	if !v.files.Exists(dir) {
		res.Errors = append(res.Errors, Finding{
			Path:    dir,
			Message: fmt.Sprintf("Template directory %q does not exist", name),
			Code:    CodeTemplateNotFound,
		})
		return res
	}

	if rules == nil {
		rules = DefaultRules()
	}

	v.checkRequired(dir, rules.RequiredFiles, "Required file %q is missing", CodeRequiredFileMissing, res)
	v.checkRequired(dir, rules.RequiredFolders, "Required folder %q is missing", CodeRequiredFolderMissing, res)
	v.checkConfigFiles(dir, rules.RequiredConfigFiles, res)
	v.checkForbidden(dir, rules.ForbiddenPatterns, res)

	res.IsValid = len(res.Errors) == 0
	return res
}

func (v *Validator) checkRequired(dir string, names []string, format, code string, res *Result) {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if !v.files.Exists(p) {
			res.Warnings = append(res.Warnings, Finding{Path: p, Message: fmt.Sprintf(format, name), Code: code})
		}
	}
}

func (v *Validator) checkConfigFiles(dir string, names []string, res *Result) {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if !v.files.Exists(p) {
			res.Warnings = append(res.Warnings, Finding{
				Path:    p,
				Message: fmt.Sprintf("Config file %q is missing", name),
				Code:    CodeConfigFileMissing,
			})
			continue
		}

		data, err := v.files.ReadFile(p)
		switch {
		case err != nil:
			res.Errors = append(res.Errors, Finding{Path: p, Message: "Failed to read config file", Code: CodeConfigReadError})
		case strings.TrimSpace(string(data)) == "":
			res.Errors = append(res.Errors, Finding{Path: p, Message: "Config file is empty", Code: CodeEmptyConfigFile})
		}
	}
}

// checkForbidden matches every pattern against the entries directly under
// dir. A malformed glob only matches its literal text.
func (v *Validator) checkForbidden(dir string, patterns []string, res *Result) {
	entries := v.files.ReadDirNames(dir)
	for _, pattern := range patterns {
		for _, entry := range entries {
			matched, err := doublestar.Match(pattern, entry)
			if err != nil {
				matched = pattern == entry
			}
			if !matched {
				continue
			}
			res.Errors = append(res.Errors, Finding{
				Path:    filepath.Join(dir, entry),
				Message: fmt.Sprintf("Forbidden pattern %q found in template", pattern),
				Code:    CodeForbiddenPattern,
			})
		}
	}
}
