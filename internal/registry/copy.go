package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// excludedNames are skipped when a template is copied into a project.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// Apply copies the template directory src into dst, creating dst as needed
// and overwriting files that already exist. node_modules/, .git/ and
// .DS_Store are never copied.
func (r *Registry) Apply(src, dst string) error {
	if !r.files.IsDir(src) {
		return NewFileNotFound(src)
	}
	if err := copyDir(r.files.Fs(), src, dst); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return nil
}

// RenameProject sets the "name" field of dst/package.json to projectName and
// resets a non-empty "version" to 0.0.0. Templates without a usable
// package.json are normal, so problems come back as a warning, not an error.
func (r *Registry) RenameProject(dst, projectName string) string {
	const warning = "Could not update package.json - this may be normal for some templates"

	pkgPath := filepath.Join(dst, "package.json")
	data, err := afero.ReadFile(r.files.Fs(), pkgPath)
	if err != nil {
		return warning
	}

	updated, err := rewritePackageJSON(data, projectName)
	if err != nil {
		return warning
	}

	if err := afero.WriteFile(r.files.Fs(), pkgPath, updated, 0644); err != nil {
		return warning
	}
	return ""
}

// SyncConfig copies the top-level files of the template src into dst.
// Sub-directories are left alone.
func (r *Registry) SyncConfig(name, src, dst string) (*SyncResult, error) {
	if !r.files.IsDir(src) {
		return nil, NewSyncError(fmt.Sprintf("Template source directory not found: %s", src))
	}

	var files []string
	for _, entry := range r.files.ReadDirNames(src) {
		if r.files.IsFile(filepath.Join(src, entry)) {
			files = append(files, entry)
		}
	}

	if len(files) == 0 {
		return &SyncResult{Message: "No files found in template directory"}, nil
	}

	if err := r.files.Fs().MkdirAll(dst, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dst, err)
	}
	for _, f := range files {
		if err := copyFile(r.files.Fs(), filepath.Join(src, f), filepath.Join(dst, f)); err != nil {
			return nil, fmt.Errorf("syncing %s: %w", f, err)
		}
	}

	return &SyncResult{
		SyncedFiles: files,
		Message:     fmt.Sprintf("Successfully synced %d files from template %q", len(files), name),
	}, nil
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
func copyDir(fs afero.Fs, src, dst string) error {
	srcInfo, err := fs.Stat(src)
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(dst, srcInfo.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := afero.ReadDir(fs, src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if shouldExclude(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		// ReadDir reports symlinks unresolved; Stat follows them so links
		// are copied as the files or directories they point at.
		info, err := fs.Stat(srcPath)
		if err != nil {
			continue
		}

		if info.IsDir() {
			if err := copyDir(fs, srcPath, dstPath); err != nil {
				return err
			}
		} else if info.Mode().IsRegular() {
			if err := copyFile(fs, srcPath, dstPath); err != nil {
				return err
			}
		}
		// Dangling links and special files are skipped.
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(fs afero.Fs, src, dst string) error {
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, err := fs.Stat(src); err == nil {
		mode = info.Mode().Perm()
	}

	return afero.WriteFile(fs, dst, data, mode)
}

// shouldExclude returns true if the name should be excluded during copy.
func shouldExclude(name string) bool {
	return excludedNames[name]
}

// rewritePackageJSON replaces the name and resets the version of a
// package.json document while keeping its key order.
func rewritePackageJSON(data []byte, projectName string) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("package.json is not an object")
	}

	type field struct {
		key   string
		value json.RawMessage
	}

	nameValue, err := json.Marshal(projectName)
	if err != nil {
		return nil, err
	}

	var fields []field
	hasName := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		switch key {
		case "name":
			raw = nameValue
			hasName = true
		case "version":
			if isTruthy(raw) {
				raw = json.RawMessage(`"0.0.0"`)
			}
		}
		fields = append(fields, field{key: key, value: raw})
	}
	if !hasName {
		fields = append(fields, field{key: "name", value: nameValue})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(f.key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// isTruthy mirrors how package managers treat an unset version: null, false,
// 0 and "" count as unset.
func isTruthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}
