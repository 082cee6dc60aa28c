package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TEMPLATES_ROOT", "")
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDirAndFilePath(t *testing.T) {
	home := setupHome(t)
	if got, want := Dir(), filepath.Join(home, ".templates-cli"); got != want {
		t.Errorf("Dir() = %s, want %s", got, want)
	}
	if got, want := FilePath(), filepath.Join(home, ".templates-cli", "config.yaml"); got != want {
		t.Errorf("FilePath() = %s, want %s", got, want)
	}
}

func TestSetPersistsAndLoadReads(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set(KeyTemplatesRoot, "/srv/templates"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyTemplatesRoot); got != "/srv/templates" {
		t.Errorf("Get after reload = %q", got)
	}
	if got := Get(KeyTemplatesRepo); got == "" {
		t.Error("templates_repo should default to the branding URL")
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	setupHome(t)
	if err := Set("mirror_url", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestTemplatesRootPrecedence(t *testing.T) {
	setupHome(t)
	Load()
	cwd := t.TempDir()

	if got := TemplatesRoot("", cwd); got != filepath.Join(cwd, "..", "..") {
		t.Errorf("fallback = %s", got)
	}

	writeFile(t, filepath.Join(RepoCacheDir(), "templates", "next", "package.json"), "{}")
	if got := TemplatesRoot("", cwd); got != RepoCacheDir() {
		t.Errorf("cached clone = %s, want %s", got, RepoCacheDir())
	}

	viper.Set(KeyTemplatesRoot, "/from/setting")
	if got := TemplatesRoot("", cwd); got != "/from/setting" {
		t.Errorf("setting = %s", got)
	}

	t.Setenv("TEMPLATES_ROOT", "rel/root")
	if got := TemplatesRoot("", cwd); got != filepath.Join(cwd, "rel", "root") {
		t.Errorf("env = %s", got)
	}

	if got := TemplatesRoot("/explicit", cwd); got != "/explicit" {
		t.Errorf("explicit = %s", got)
	}
}

func TestLoadProjectNone(t *testing.T) {
	cfg, path, err := LoadProject(t.TempDir())
	if err != nil || cfg != nil || path != "" {
		t.Errorf("LoadProject(empty) = %v, %q, %v", cfg, path, err)
	}
}

func TestLoadProjectJSON(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, ".templates-cli.json"), `{
  "github": {"owner": "acme", "branch": "dev"},
  "customTemplates": {"astro": "astro-starter"},
  "autoConfirm": true,
  "openBrowser": false
}`)
	cfg, path, err := LoadProject(cwd)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if filepath.Base(path) != ".templates-cli.json" {
		t.Errorf("path = %s", path)
	}
	if cfg.GitHub == nil || cfg.GitHub.Owner != "acme" || cfg.GitHub.Branch != "dev" {
		t.Errorf("GitHub = %+v", cfg.GitHub)
	}
	if cfg.AutoConfirm == nil || !*cfg.AutoConfirm {
		t.Error("AutoConfirm should be true")
	}
	if cfg.OpenBrowser == nil || *cfg.OpenBrowser {
		t.Error("OpenBrowser should be false")
	}
	if cfg.CustomTemplates["astro"] != "astro-starter" {
		t.Errorf("CustomTemplates = %v", cfg.CustomTemplates)
	}
}

func TestLoadProjectPrefersJSONOverYAML(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, ".templates-cli.yaml"), "defaultProjectName: from-yaml\n")
	writeFile(t, filepath.Join(cwd, ".templates-cli.json"), `{"defaultProjectName": "from-json"}`)
	cfg, _, err := LoadProject(cwd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultProjectName != "from-json" {
		t.Errorf("DefaultProjectName = %q", cfg.DefaultProjectName)
	}
}

func TestLoadProjectYAML(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, ".templates-cli.yml"), "placeholders:\n  projectName: demo\n")
	cfg, _, err := LoadProject(cwd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Placeholders == nil || cfg.Placeholders.ProjectName != "demo" {
		t.Errorf("Placeholders = %+v", cfg.Placeholders)
	}
}

func TestLoadProjectBroken(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, ".templates-cli.json"), "{broken")
	cfg, path, err := LoadProject(cwd)
	if err == nil {
		t.Fatal("expected error for broken config")
	}
	if cfg != nil || path == "" {
		t.Errorf("cfg = %v, path = %q", cfg, path)
	}
}

func TestResolveDefaults(t *testing.T) {
	r := Resolve(nil)
	if r.GitHub != (GitHubConfig{Owner: "newkub", Repository: "templates", Branch: "main", TemplatesPath: "templates"}) {
		t.Errorf("GitHub = %+v", r.GitHub)
	}
	if len(r.TemplateMap) != 10 || r.TemplateMap["vite-react"] != "vite-react" {
		t.Errorf("TemplateMap = %v", r.TemplateMap)
	}
	if r.DefaultProjectName != "my-project" || r.AutoConfirm || !r.OpenBrowser {
		t.Errorf("unexpected defaults %+v", r)
	}
	if r.Placeholders.ProjectName != "my-awesome-project" || r.Placeholders.SubmodulePath != "templates/my-submodule" {
		t.Errorf("Placeholders = %+v", r.Placeholders)
	}
}

func TestResolveMergesUser(t *testing.T) {
	no := false
	r := Resolve(&UserConfig{
		GitHub:          &GitHubConfig{Owner: "acme"},
		CustomTemplates: map[string]string{"astro": "astro-starter", "next": "", "bare": ""},
		OpenBrowser:     &no,
	})
	if r.GitHub.Owner != "acme" || r.GitHub.Repository != "templates" {
		t.Errorf("GitHub = %+v", r.GitHub)
	}
	if r.TemplateMap["astro"] != "astro-starter" || r.TemplateMap["next"] != "next" || r.TemplateMap["bare"] != "bare" {
		t.Errorf("TemplateMap = %v", r.TemplateMap)
	}
	if r.OpenBrowser {
		t.Error("OpenBrowser should be overridden to false")
	}
	if r.DefaultProjectName != "my-project" {
		t.Errorf("DefaultProjectName = %q", r.DefaultProjectName)
	}
}

func TestTemplateURL(t *testing.T) {
	r := Resolve(nil)
	want := "https://github.com/newkub/templates/tree/main/templates/next"
	if got := r.TemplateURL("next"); got != want {
		t.Errorf("TemplateURL = %s, want %s", got, want)
	}
}
