// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit that one file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GitHubRepo       string `yaml:"github_repo"`
	TemplatesRepoURL string `yaml:"templates_repo_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:          "templates",
			DisplayName:      "Templates CLI",
			Description:      "Preview, dry-run, validate and health-check project templates",
			HomeDir:          ".templates-cli",
			EnvPrefix:        "TEMPLATES",
			GitHubRepo:       "newkub/templates",
			TemplatesRepoURL: "https://github.com/newkub/templates.git",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "templates").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".templates-cli").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TEMPLATES").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string of the upstream templates repo.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// TemplatesRepoURL returns the default git URL used by `fetch`.
func TemplatesRepoURL() string { load(); return defaults.TemplatesRepoURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "TEMPLATES_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
