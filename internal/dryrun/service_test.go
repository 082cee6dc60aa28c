package dryrun

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
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

// setup creates <root>/templates/next with files and returns a service
// whose working directory is a separate temp dir.
func setup(t *testing.T, files map[string]string) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "templates", "next"), 0755); err != nil {
		t.Fatal(err)
	}
	for rel, content := range files {
		writeFile(t, filepath.Join(root, "templates", "next", rel), content)
	}
	work := t.TempDir()
	return NewService(registry.New(root, nil, nil), work), work
}

func TestDryRunFreshProject(t *testing.T) {
	svc, _ := setup(t, map[string]string{"package.json": "{}", "README.md": "# next"})

	res, err := svc.DryRun("next", "my-app", Options{})
	if err != nil {
		t.Fatalf("DryRun: %v", err)
	}
	create, overwrite, _ := res.Counts()
	if create != 2 || overwrite != 0 {
		t.Errorf("create=%d overwrite=%d, want 2/0", create, overwrite)
	}
	if len(res.Conflicts) != 0 {
		t.Errorf("conflicts = %+v", res.Conflicts)
	}
	if res.EstimatedSize != "2.00 KB" {
		t.Errorf("EstimatedSize = %q", res.EstimatedSize)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v", res.Warnings)
	}
	if res.Preview == nil || res.Preview.Name != "next" {
		t.Errorf("Preview = %+v", res.Preview)
	}
}

func TestDryRunDifferingContent(t *testing.T) {
	svc, work := setup(t, map[string]string{"package.json": "A"})
	writeFile(t, filepath.Join(work, "my-app", "package.json"), "B")

	res, err := svc.DryRun("next", "my-app", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.FilesToCreate) != 1 || res.FilesToCreate[0].Type != OpOverwrite {
		t.Fatalf("ops = %+v", res.FilesToCreate)
	}

	var fileConflicts []Conflict
	for _, c := range res.Conflicts {
		if c.Reason == ReasonContentDiffer {
			fileConflicts = append(fileConflicts, c)
		}
	}
	if len(fileConflicts) != 1 || fileConflicts[0].Path != "package.json" {
		t.Errorf("file conflicts = %+v", fileConflicts)
	}

	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "will be overwritten") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected overwrite-count warning, got %v", res.Warnings)
	}
}

func TestDryRunIdenticalContentIsNotAConflict(t *testing.T) {
	svc, work := setup(t, map[string]string{"package.json": "same"})
	writeFile(t, filepath.Join(work, "my-app", "package.json"), "same")

	res, err := svc.DryRun("next", "my-app", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.FilesToCreate[0].Type != OpOverwrite {
		t.Errorf("op = %+v, want overwrite", res.FilesToCreate[0])
	}
	for _, c := range res.Conflicts {
		if c.Reason == ReasonContentDiffer {
			t.Errorf("identical content must not conflict: %+v", c)
		}
	}
	if len(res.Conflicts) != 1 || res.Conflicts[0].Reason != ReasonProjectExists {
		t.Errorf("conflicts = %+v, want only the root conflict", res.Conflicts)
	}
}

func TestDryRunEmptyTemplate(t *testing.T) {
	svc, _ := setup(t, nil)

	res, err := svc.DryRun("next", "my-app", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.FilesToCreate) != 0 || len(res.Conflicts) != 0 {
		t.Errorf("empty template: ops=%+v conflicts=%+v", res.FilesToCreate, res.Conflicts)
	}
	if res.EstimatedSize != "0 B" {
		t.Errorf("EstimatedSize = %q", res.EstimatedSize)
	}
}

func TestDryRunIdempotent(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < 8; i++ {
		files[fmt.Sprintf("src/f%d.ts", i)] = fmt.Sprintf("v%d", i)
	}
	svc, work := setup(t, files)
	for i := 0; i < 8; i++ {
		writeFile(t, filepath.Join(work, "my-app", "src", fmt.Sprintf("f%d.ts", i)), "changed")
	}

	first, err := svc.DryRun("next", "my-app", Options{Diffs: true})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.DryRun("next", "my-app", Options{Diffs: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.FilesToCreate, second.FilesToCreate) ||
		!reflect.DeepEqual(first.Conflicts, second.Conflicts) ||
		!reflect.DeepEqual(first.Warnings, second.Warnings) {
		t.Error("two dry runs over an unchanged tree differ")
	}
	if len(first.Warnings) != 2 {
		t.Errorf("warnings = %v, want conflict count and bulk warnings", first.Warnings)
	}
}

func TestDryRunTemplateNotFound(t *testing.T) {
	svc := NewService(registry.New(t.TempDir(), nil, nil), t.TempDir())
	if _, err := svc.DryRun("missing", "my-app", Options{}); !errors.Is(err, registry.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestDryRunEmptyProjectName(t *testing.T) {
	svc, _ := setup(t, map[string]string{"a": "a"})

	tests := []struct {
		name        string
		projectName string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tab and newline", "\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.DryRun("next", tt.projectName, Options{})
			if !errors.Is(err, registry.ErrInvalidProjectName) {
				t.Errorf("expected ErrInvalidProjectName, got %v", err)
			}
			if res != nil {
				t.Errorf("expected no result, got %+v", res)
			}
		})
	}
}

func TestDryRunPlansOnlyWhatApplyCopies(t *testing.T) {
	svc, work := setup(t, map[string]string{"README.md": "# next", "src/index.ts": "export {}"})
	tpl := svc.reg.Path("next")
	if err := os.Symlink("README.md", filepath.Join(tpl, "README-link.md")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink("src", filepath.Join(tpl, "lib")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink("missing.txt", filepath.Join(tpl, "dangling.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	res, err := svc.DryRun("next", "my-app", Options{})
	if err != nil {
		t.Fatalf("DryRun: %v", err)
	}
	var planned []string
	for _, op := range res.FilesToCreate {
		planned = append(planned, op.Path)
	}

	target := filepath.Join(work, "my-app")
	if err := svc.reg.Apply(tpl, target); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	applied := svc.reg.Files().Files(target, nil)

	if !reflect.DeepEqual(planned, applied) {
		t.Errorf("planned %v, applied %v", planned, applied)
	}
	want := []string{"README-link.md", "README.md", "lib/index.ts", "src/index.ts"}
	if !reflect.DeepEqual(applied, want) {
		t.Errorf("applied %v, want %v", applied, want)
	}
}

func TestTargetPath(t *testing.T) {
	svc := NewService(registry.New("/root", nil, nil), "/work")
	if got := svc.TargetPath("my-app"); got != filepath.Join("/work", "my-app") {
		t.Errorf("relative = %s", got)
	}
	if got := svc.TargetPath("/abs/app"); got != "/abs/app" {
		t.Errorf("absolute = %s", got)
	}
}

func TestPrint(t *testing.T) {
	svc, work := setup(t, map[string]string{"package.json": "A", "README.md": "r"})
	writeFile(t, filepath.Join(work, "my-app", "package.json"), "B")

	res, err := svc.DryRun("next", "my-app", Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	Print(&buf, res)
	out := buf.String()
	for _, want := range []string{
		"Dry Run Results",
		"Estimated size: 2.00 KB",
		"Create:    1 files",
		"Overwrite: 1 files",
		"package.json - File content differs",
		"+ README.md",
		"~ package.json",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
