package validation

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Finding codes.
const (
	CodeTemplateNotFound      = "TEMPLATE_NOT_FOUND"
	CodeRequiredFileMissing   = "REQUIRED_FILE_MISSING"
	CodeRequiredFolderMissing = "REQUIRED_FOLDER_MISSING"
	CodeConfigFileMissing     = "CONFIG_FILE_MISSING"
	CodeEmptyConfigFile       = "EMPTY_CONFIG_FILE"
	CodeConfigReadError       = "CONFIG_READ_ERROR"
	CodeForbiddenPattern      = "FORBIDDEN_PATTERN_FOUND"
)

// Rules configure ValidateTemplate. Lists left empty are not checked.
type Rules struct {
	RequiredFiles       []string `json:"requiredFiles" yaml:"requiredFiles"`
	RequiredFolders     []string `json:"requiredFolders" yaml:"requiredFolders"`
	RequiredConfigFiles []string `json:"requiredConfigFiles" yaml:"requiredConfigFiles"`
	// ForbiddenPatterns are doublestar globs matched against the names
	// directly under the template root.
	ForbiddenPatterns []string `json:"forbiddenPatterns" yaml:"forbiddenPatterns"`
}

// DefaultRules are used when no rules are given.
func DefaultRules() *Rules {
	return &Rules{
		RequiredFiles:       []string{"package.json", "README.md"},
		RequiredFolders:     []string{"src", "app"},
		RequiredConfigFiles: []string{".gitignore", "tsconfig.json"},
		ForbiddenPatterns:   []string{"node_modules", ".git", "dist", "build"},
	}
}

// LoadRules reads rules from a YAML (or JSON) file. The file replaces the
// defaults entirely.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return &r, nil
}

// Finding is a validation error or warning.
type Finding struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
	Code    string `json:"code" yaml:"code"`
}

// Result is the outcome of ValidateTemplate.
type Result struct {
	IsValid  bool      `json:"isValid" yaml:"isValid"`
	Errors   []Finding `json:"errors" yaml:"errors"`
	Warnings []Finding `json:"warnings" yaml:"warnings"`
}

// Severity ranks health issues. Only SeverityError makes a project unhealthy.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// HealthIssue is one problem found by CheckProjectHealth.
type HealthIssue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Fixable  bool     `json:"fixable" yaml:"fixable"`
	Diff     string   `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// HealthStatus is the outcome of CheckProjectHealth.
type HealthStatus struct {
	TemplateName string        `json:"templateName" yaml:"templateName"`
	IsHealthy    bool          `json:"isHealthy" yaml:"isHealthy"`
	Issues       []HealthIssue `json:"issues" yaml:"issues"`
	Suggestions  []string      `json:"suggestions" yaml:"suggestions"`
	LastChecked  string        `json:"lastChecked" yaml:"lastChecked"`
}

// Healthy reports whether issues contain no error-severity entry.
func Healthy(issues []HealthIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return false
		}
	}
	return true
}
