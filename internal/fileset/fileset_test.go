package fileset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/afero"
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

func TestExistsAndIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, "a")

	in := New(nil)

	tests := []struct {
		path   string
		exists bool
		isFile bool
		isDir  bool
	}{
		{file, true, true, false},
		{dir, true, false, true},
		{filepath.Join(dir, "missing"), false, false, false},
	}
	for _, tt := range tests {
		if got := in.Exists(tt.path); got != tt.exists {
			t.Errorf("Exists(%s) = %v, want %v", tt.path, got, tt.exists)
		}
		if got := in.IsFile(tt.path); got != tt.isFile {
			t.Errorf("IsFile(%s) = %v, want %v", tt.path, got, tt.isFile)
		}
		if got := in.IsDir(tt.path); got != tt.isDir {
			t.Errorf("IsDir(%s) = %v, want %v", tt.path, got, tt.isDir)
		}
	}
}

func TestContentEquals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	writeFile(t, a, "same")
	writeFile(t, b, "same")
	writeFile(t, c, "other")

	in := New(nil)
	if !in.ContentEquals(a, b) {
		t.Error("identical files should compare equal")
	}
	if in.ContentEquals(a, c) {
		t.Error("different files should not compare equal")
	}
	if in.ContentEquals(a, filepath.Join(dir, "missing")) {
		t.Error("missing file should never compare equal")
	}
	if in.ContentEquals(a, dir) {
		t.Error("directory should never compare equal to a file")
	}
}

func TestReadDirNamesMissing(t *testing.T) {
	in := New(nil)
	if names := in.ReadDirNames(filepath.Join(t.TempDir(), "nope")); len(names) != 0 {
		t.Errorf("expected no names, got %v", names)
	}
}

func TestWalkDepthFirstWithExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "b")
	writeFile(t, filepath.Join(root, "a", "x.txt"), "x")
	writeFile(t, filepath.Join(root, "a", "sub", "y.txt"), "y")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(root, "c", "node_modules", "z.js"), "")

	in := New(nil)
	got := in.Walk(root, PlanExcludes())
	want := []Entry{
		{"a", KindDirectory},
		{"a/sub", KindDirectory},
		{"a/sub/y.txt", KindFile},
		{"a/x.txt", KindFile},
		{"b.txt", KindFile},
		{"c", KindDirectory},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}

	files := in.Files(root, PlanExcludes())
	wantFiles := []string{"a/sub/y.txt", "a/x.txt", "b.txt"}
	if !reflect.DeepEqual(files, wantFiles) {
		t.Errorf("Files() = %v, want %v", files, wantFiles)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	in := New(nil)
	if got := in.Walk(filepath.Join(t.TempDir(), "missing"), PlanExcludes()); len(got) != 0 {
		t.Errorf("expected empty walk, got %v", got)
	}
}

func TestWalkMemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/tpl/src", 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/tpl/src/main.ts", []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/tpl/package.json", []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	in := New(fs)
	files := in.Files("/tpl", PlanExcludes())
	want := []string{"package.json", "src/main.ts"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Files() = %v, want %v", files, want)
	}
}

func TestTreeOrderingAndDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), "")
	writeFile(t, filepath.Join(root, "app.ts"), "")
	writeFile(t, filepath.Join(root, "src", "index.ts"), "")
	writeFile(t, filepath.Join(root, "Assets", "one", "two", "deep.txt"), "")
	writeFile(t, filepath.Join(root, "dist", "out.js"), "")
	writeFile(t, filepath.Join(root, "build", "out.js"), "")

	in := New(nil)
	nodes := in.Tree(root, PreviewExcludes(), DefaultTreeDepth)

	var names []string
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	want := []string{"Assets", "src", "app.ts", "README.md"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("top-level order = %v, want %v", names, want)
	}

	assets := nodes[0]
	if len(assets.Children) != 1 || assets.Children[0].Name != "one" {
		t.Fatalf("Assets children = %+v", assets.Children)
	}
	one := assets.Children[0]
	if len(one.Children) != 1 || one.Children[0].Name != "two" {
		t.Fatalf("one children = %+v", one.Children)
	}
	if two := one.Children[0]; len(two.Children) != 0 {
		t.Errorf("directory at depth bound should have no children, got %+v", two.Children)
	}
	if one.Children[0].Path != "Assets/one/two" {
		t.Errorf("Path = %q, want %q", one.Children[0].Path, "Assets/one/two")
	}
}
