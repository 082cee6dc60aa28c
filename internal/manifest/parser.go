package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNoManifest is returned by Load when the template has no manifest file.
var ErrNoManifest = errors.New("template has no manifest")

// PathIn returns the manifest path inside templateDir.
func PathIn(templateDir string) string {
	return filepath.Join(templateDir, FileName)
}

// Load reads the manifest in templateDir. A missing file yields
// ErrNoManifest; unreadable or malformed files yield a wrapped error, so
// callers can tell "no manifest" from "corrupt manifest".
func Load(fs afero.Fs, templateDir string) (*TemplateManifest, error) {
	path := PathIn(templateDir)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoManifest
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m TemplateManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Read is Load for callers that treat missing and corrupt manifests alike:
// any failure returns nil.
func Read(fs afero.Fs, templateDir string) *TemplateManifest {
	m, err := Load(fs, templateDir)
	if err != nil {
		return nil
	}
	return m
}
