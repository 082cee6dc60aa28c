package manifest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoad(t *testing.T) {
	m, err := Load(afero.NewOsFs(), testPath("next"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Name != "next" {
		t.Errorf("Name = %q, want %q", m.Name, "next")
	}
	if m.CurrentVersion != "2.1.0" {
		t.Errorf("CurrentVersion = %q, want %q", m.CurrentVersion, "2.1.0")
	}
	if len(m.Versions) != 4 {
		t.Fatalf("Versions len = %d, want 4", len(m.Versions))
	}
	if len(m.Versions[0].Features) != 2 {
		t.Errorf("Versions[0].Features len = %d, want 2", len(m.Versions[0].Features))
	}
	if len(m.Tags) != 2 || m.Tags[0] != "react" {
		t.Errorf("Tags = %v", m.Tags)
	}
}

func TestLoadMissingAndCorrupt(t *testing.T) {
	fs := afero.NewOsFs()

	if _, err := Load(fs, testPath("empty")); !errors.Is(err, ErrNoManifest) {
		t.Errorf("missing manifest: got %v, want ErrNoManifest", err)
	}

	_, err := Load(fs, testPath("corrupt"))
	if err == nil {
		t.Fatal("expected error for corrupt manifest")
	}
	if errors.Is(err, ErrNoManifest) {
		t.Error("corrupt manifest must be distinguishable from a missing one")
	}
}

func TestReadConflatesFailures(t *testing.T) {
	fs := afero.NewOsFs()
	if m := Read(fs, testPath("empty")); m != nil {
		t.Errorf("Read(missing) = %+v, want nil", m)
	}
	if m := Read(fs, testPath("corrupt")); m != nil {
		t.Errorf("Read(corrupt) = %+v, want nil", m)
	}
	if m := Read(fs, testPath("next")); m == nil {
		t.Error("Read(valid) = nil")
	}
}
