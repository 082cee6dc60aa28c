package manifest

// FileName is the manifest file name inside a template directory.
const FileName = ".template-manifest.json"

// TemplateManifest describes a template and its release history.
type TemplateManifest struct {
	Name           string            `json:"name" yaml:"name"`
	CurrentVersion string            `json:"currentVersion" yaml:"currentVersion"`
	Versions       []TemplateVersion `json:"versions" yaml:"versions"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	Category       string            `json:"category,omitempty" yaml:"category,omitempty"`
	Tags           []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Framework      string            `json:"framework,omitempty" yaml:"framework,omitempty"`
	Language       string            `json:"language,omitempty" yaml:"language,omitempty"`
}

// TemplateVersion is one release of a template.
type TemplateVersion struct {
	Version         string   `json:"version" yaml:"version"`
	ReleaseDate     string   `json:"releaseDate" yaml:"releaseDate"`
	Changelog       []string `json:"changelog" yaml:"changelog"`
	BreakingChanges []string `json:"breakingChanges,omitempty" yaml:"breakingChanges,omitempty"`
	Features        []string `json:"features,omitempty" yaml:"features,omitempty"`
	Bugfixes        []string `json:"bugfixes,omitempty" yaml:"bugfixes,omitempty"`
}

// SortOrder selects how versions are ordered for display.
type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
	SortSemver SortOrder = "semver"
)

// ValidSortOrders lists the accepted SortOrder values.
var ValidSortOrders = []SortOrder{SortLatest, SortOldest, SortSemver}
