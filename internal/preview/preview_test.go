package preview

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/newkub/templates/internal/registry"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func setupTemplate(t *testing.T) *Service {
	t.Helper()
	root := t.TempDir()
	tpl := filepath.Join(root, "templates", "next")
	writeFile(t, filepath.Join(tpl, "package.json"), `{
  "name": "next",
  "dependencies": {"next": "15.0.0", "react": "19.0.0"},
  "devDependencies": {"typescript": "5.6.0"},
  "peerDependencies": {"react-dom": "19.0.0"}
}`)
	writeFile(t, filepath.Join(tpl, "README.md"), "# next")
	writeFile(t, filepath.Join(tpl, "src", "app", "page.tsx"), "")
	writeFile(t, filepath.Join(tpl, "src", "app", "deep", "nested", "x.ts"), "")
	writeFile(t, filepath.Join(tpl, "dist", "out.js"), "")
	writeFile(t, filepath.Join(tpl, "node_modules", "react", "index.js"), "")
	writeFile(t, filepath.Join(tpl, ".template-manifest.json"), `{
  "name": "next",
  "currentVersion": "2.1.0",
  "description": "Next.js starter",
  "category": "framework",
  "tags": ["react"],
  "versions": [
    {"version": "2.1.0", "releaseDate": "2026-03-01", "changelog": [], "features": ["App router"]},
    {"version": "2.0.0", "releaseDate": "2026-01-10", "changelog": [], "features": ["Old"]}
  ]
}`)
	return NewService(registry.New(root, nil, nil))
}

func TestPreview(t *testing.T) {
	svc := setupTemplate(t)
	p, err := svc.Preview("next")
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if p.Version != "2.1.0" || p.Description != "Next.js starter" || p.Category != "framework" {
		t.Errorf("manifest fields not applied: %+v", p)
	}
	if len(p.Features) != 1 || p.Features[0] != "App router" {
		t.Errorf("Features = %v, want features of the first listed version", p.Features)
	}

	if p.Dependencies == nil || p.Dependencies.Total != 4 {
		t.Fatalf("Dependencies = %+v", p.Dependencies)
	}

	var names []string
	for _, n := range p.Structure {
		names = append(names, n.Name)
	}
	// Directories first; dist and node_modules excluded.
	if got := strings.Join(names, ","); got != "src,.template-manifest.json,package.json,README.md" {
		t.Errorf("top level = %s", got)
	}

	app := p.Structure[0].Children[0]
	if app.Name != "app" {
		t.Fatalf("expected src/app, got %s", app.Name)
	}
	deep := app.Children[0]
	if deep.Name != "deep" || len(deep.Children) != 0 {
		t.Errorf("depth bound not applied: %+v", deep)
	}
}

func TestPreviewNotFound(t *testing.T) {
	svc := NewService(registry.New(t.TempDir(), nil, nil))
	_, err := svc.Preview("missing")
	if !errors.Is(err, registry.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestPreviewSwallowsBrokenMetadata(t *testing.T) {
	root := t.TempDir()
	tpl := filepath.Join(root, "templates", "broken")
	writeFile(t, filepath.Join(tpl, "package.json"), "{not json")
	writeFile(t, filepath.Join(tpl, ".template-manifest.json"), "{also not json")

	p, err := NewService(registry.New(root, nil, nil)).Preview("broken")
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.Dependencies != nil || p.Version != "" || p.Features != nil {
		t.Errorf("broken metadata should be absent: %+v", p)
	}
	if len(p.Structure) != 2 {
		t.Errorf("Structure = %d nodes, want 2", len(p.Structure))
	}
}

func TestPrint(t *testing.T) {
	p, err := setupTemplate(t).Preview("next")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	Print(&buf, p)
	out := buf.String()

	for _, want := range []string{
		"Template: next (v2.1.0)",
		"Category: framework | Tags: react",
		"Total: 4 packages",
		"- next@15.0.0",
		"- typescript@5.6.0",
		"- App router",
		"package.json",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
