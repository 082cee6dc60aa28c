//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/newkub/templates/internal/registry"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	Root    string // templates root, holds templates/<name>/
	WorkDir string // where projects are created
}

// setupTestEnv creates isolated temp directories and points HOME at a fresh
// directory so no user config leaks into the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		Root:    t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TEMPLATES_ROOT", "")

	setupTemplates(t, env.Root)
	return env
}

// registryFor returns a registry over the test templates on the real
// filesystem.
func registryFor(env *testEnv) *registry.Registry {
	return registry.New(env.Root, nil, nil)
}

// setupTemplates writes two templates: "next", a well-formed template with a
// manifest, and "legacy", which breaks several validation rules.
func setupTemplates(t *testing.T, root string) {
	t.Helper()

	next := filepath.Join(root, "templates", "next")
	writeFile(t, filepath.Join(next, "package.json"), `{
  "name": "next-template",
  "version": "2.1.0",
  "dependencies": {
    "next": "15.0.0",
    "react": "19.0.0"
  },
  "devDependencies": {
    "typescript": "5.6.0"
  }
}
`)
	writeFile(t, filepath.Join(next, "README.md"), "# Next template\n")
	writeFile(t, filepath.Join(next, "tsconfig.json"), "{\n  \"compilerOptions\": {}\n}\n")
	writeFile(t, filepath.Join(next, ".gitignore"), "node_modules\n.next\n")
	writeFile(t, filepath.Join(next, "src", "app", "page.tsx"), "export default function Page() { return null }\n")
	writeFile(t, filepath.Join(next, ".template-manifest.json"), `{
  "name": "next",
  "currentVersion": "2.1.0",
  "description": "Next.js starter",
  "category": "framework",
  "tags": ["react", "ssr"],
  "versions": [
    {
      "version": "2.1.0",
      "releaseDate": "2024-06-01",
      "changelog": ["Move to app router"],
      "features": ["Server actions"]
    },
    {
      "version": "2.0.0",
      "releaseDate": "2024-02-01",
      "changelog": ["React 19"],
      "breakingChanges": ["Drop pages router"]
    },
    {
      "version": "1.10.0",
      "releaseDate": "2023-11-01",
      "changelog": ["Tailwind 3.4"]
    }
  ]
}
`)

	legacy := filepath.Join(root, "templates", "legacy")
	writeFile(t, filepath.Join(legacy, "README.md"), "# Legacy\n")
	writeFile(t, filepath.Join(legacy, "tsconfig.json"), "  \n")
	writeFile(t, filepath.Join(legacy, "dist", "bundle.js"), "console.log(1)\n")
	writeFile(t, filepath.Join(legacy, "node_modules", "left-pad", "index.js"), "module.exports = 1\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// hasCode reports whether any finding carries code.
func hasCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
