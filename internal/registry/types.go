package registry

// TemplatesDir is the directory under a templates root holding one
// sub-directory per template.
const TemplatesDir = "templates"

// Template is a template available under the templates root, enriched with
// manifest metadata when a manifest is present and readable.
type Template struct {
	Name        string   `json:"name" yaml:"name"`
	Dir         string   `json:"dir" yaml:"dir"`
	Path        string   `json:"path" yaml:"path"`
	Exists      bool     `json:"exists" yaml:"exists"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// SyncResult captures the outcome of a config sync.
type SyncResult struct {
	SyncedFiles []string `json:"syncedFiles" yaml:"syncedFiles"`
	Message     string   `json:"message" yaml:"message"`
}
