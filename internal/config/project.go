package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/newkub/templates/internal/branding"
	"github.com/spf13/viper"
)

// ProjectFileNames are the per-project config files, in lookup order.
func ProjectFileNames() []string {
	base := branding.HomeDir()
	return []string{base + ".json", base + ".yaml", base + ".yml", base + ".toml"}
}

// GitHubConfig locates the upstream templates repository.
type GitHubConfig struct {
	Owner         string `mapstructure:"owner" json:"owner" yaml:"owner"`
	Repository    string `mapstructure:"repository" json:"repository" yaml:"repository"`
	Branch        string `mapstructure:"branch" json:"branch" yaml:"branch"`
	TemplatesPath string `mapstructure:"templatesPath" json:"templatesPath" yaml:"templatesPath"`
}

// Placeholders are the default values offered for free-text inputs.
type Placeholders struct {
	ProjectName   string `mapstructure:"projectName" json:"projectName" yaml:"projectName"`
	SubmoduleURL  string `mapstructure:"submoduleUrl" json:"submoduleUrl" yaml:"submoduleUrl"`
	SubmodulePath string `mapstructure:"submodulePath" json:"submodulePath" yaml:"submodulePath"`
}

// UserConfig is the content of a project config file. Every field is
// optional; unset fields fall back to defaults in Resolve.
type UserConfig struct {
	GitHub             *GitHubConfig     `mapstructure:"github"`
	CustomTemplates    map[string]string `mapstructure:"customTemplates"`
	DefaultProjectName string            `mapstructure:"defaultProjectName"`
	AutoConfirm        *bool             `mapstructure:"autoConfirm"`
	OpenBrowser        *bool             `mapstructure:"openBrowser"`
	Placeholders       *Placeholders     `mapstructure:"placeholders"`
}

// Resolved is the effective configuration after defaults are applied.
type Resolved struct {
	GitHub             GitHubConfig      `json:"github" yaml:"github"`
	TemplateMap        map[string]string `json:"templateMap" yaml:"templateMap"`
	DefaultProjectName string            `json:"defaultProjectName" yaml:"defaultProjectName"`
	AutoConfirm        bool              `json:"autoConfirm" yaml:"autoConfirm"`
	OpenBrowser        bool              `json:"openBrowser" yaml:"openBrowser"`
	Placeholders       Placeholders      `json:"placeholders" yaml:"placeholders"`
	// Source is the project config file that was loaded, if any.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// BuiltinTemplates maps the bundled template names to their directories.
func BuiltinTemplates() map[string]string {
	names := []string{
		"my-config", "monorepo", "next", "nuxt", "slidev",
		"tutorial", "turborepo", "vite-react", "vitepress", "vscode-vue",
	}
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[n] = n
	}
	return m
}

// LoadProject reads the first project config file found in cwd. It returns
// (nil, "", nil) when there is none. A file that exists but cannot be parsed
// returns an error naming the file; callers warn and continue with defaults.
func LoadProject(cwd string) (*UserConfig, string, error) {
	for _, name := range ProjectFileNames() {
		path := filepath.Join(cwd, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, path, fmt.Errorf("loading config from %s: %w", name, err)
		}
		var cfg UserConfig
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, path, fmt.Errorf("decoding config from %s: %w", name, err)
		}
		return &cfg, path, nil
	}
	return nil, "", nil
}

// Resolve merges user over the built-in defaults. user may be nil.
func Resolve(user *UserConfig) *Resolved {
	r := &Resolved{
		GitHub: GitHubConfig{
			Owner:         "newkub",
			Repository:    "templates",
			Branch:        "main",
			TemplatesPath: "templates",
		},
		TemplateMap:        BuiltinTemplates(),
		DefaultProjectName: "my-project",
		AutoConfirm:        false,
		OpenBrowser:        true,
		Placeholders: Placeholders{
			ProjectName:   "my-awesome-project",
			SubmoduleURL:  "https://github.com/user/repo",
			SubmodulePath: "templates/my-submodule",
		},
	}
	if owner, repo, ok := strings.Cut(branding.GitHubRepo(), "/"); ok {
		r.GitHub.Owner, r.GitHub.Repository = owner, repo
	}
	if user == nil {
		return r
	}

	if g := user.GitHub; g != nil {
		r.GitHub.Owner = orDefault(g.Owner, r.GitHub.Owner)
		r.GitHub.Repository = orDefault(g.Repository, r.GitHub.Repository)
		r.GitHub.Branch = orDefault(g.Branch, r.GitHub.Branch)
		r.GitHub.TemplatesPath = orDefault(g.TemplatesPath, r.GitHub.TemplatesPath)
	}
	for name, dir := range user.CustomTemplates {
		// A null directory maps the name onto itself.
		r.TemplateMap[name] = orDefault(dir, name)
	}
	r.DefaultProjectName = orDefault(user.DefaultProjectName, r.DefaultProjectName)
	if user.AutoConfirm != nil {
		r.AutoConfirm = *user.AutoConfirm
	}
	if user.OpenBrowser != nil {
		r.OpenBrowser = *user.OpenBrowser
	}
	if p := user.Placeholders; p != nil {
		r.Placeholders.ProjectName = orDefault(p.ProjectName, r.Placeholders.ProjectName)
		r.Placeholders.SubmoduleURL = orDefault(p.SubmoduleURL, r.Placeholders.SubmoduleURL)
		r.Placeholders.SubmodulePath = orDefault(p.SubmodulePath, r.Placeholders.SubmodulePath)
	}
	return r
}

// TemplateURL returns the GitHub page of a template.
func (r *Resolved) TemplateURL(name string) string {
	g := r.GitHub
	return fmt.Sprintf("https://github.com/%s/%s/tree/%s/%s/%s", g.Owner, g.Repository, g.Branch, g.TemplatesPath, name)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
