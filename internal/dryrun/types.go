package dryrun

import "github.com/newkub/templates/internal/preview"

// OperationType is the action planned for one template file.
type OperationType string

const (
	OpCreate    OperationType = "create"
	OpOverwrite OperationType = "overwrite"
	// OpSkip is never planned today; it is reserved for a no-overwrite mode.
	OpSkip OperationType = "skip"
)

// Action is how a conflict would be resolved.
type Action string

const (
	ActionOverwrite Action = "overwrite"
	ActionSkip      Action = "skip"
	ActionRename    Action = "rename"
)

// Operation is the planned action for one template file.
type Operation struct {
	Type   OperationType `json:"type" yaml:"type"`
	Path   string        `json:"path" yaml:"path"`
	Size   string        `json:"size,omitempty" yaml:"size,omitempty"`
	Reason string        `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Conflict is a file, or the project root, that already exists.
type Conflict struct {
	Path   string `json:"path" yaml:"path"`
	Action Action `json:"action" yaml:"action"`
	Reason string `json:"reason" yaml:"reason"`
	// Diff is a unified diff from the template file to the target file,
	// filled only when requested.
	Diff string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Result is the full dry-run report for one template and project.
type Result struct {
	TemplateName  string           `json:"templateName" yaml:"templateName"`
	ProjectName   string           `json:"projectName" yaml:"projectName"`
	Preview       *preview.Preview `json:"preview" yaml:"preview"`
	FilesToCreate []Operation      `json:"filesToCreate" yaml:"filesToCreate"`
	EstimatedSize string           `json:"estimatedSize" yaml:"estimatedSize"`
	Warnings      []string         `json:"warnings" yaml:"warnings"`
	Conflicts     []Conflict       `json:"conflicts" yaml:"conflicts"`
}

// Counts returns the number of operations of each type.
func (r *Result) Counts() (create, overwrite, skip int) {
	for _, op := range r.FilesToCreate {
		switch op.Type {
		case OpCreate:
			create++
		case OpOverwrite:
			overwrite++
		case OpSkip:
			skip++
		}
	}
	return create, overwrite, skip
}
