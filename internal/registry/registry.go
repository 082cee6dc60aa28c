package registry

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/newkub/templates/internal/fileset"
	"github.com/newkub/templates/internal/manifest"
)

// Registry maps template names onto directories under a templates root.
type Registry struct {
	root        string
	templateMap map[string]string
	files       *fileset.Inspector
}

// New returns a Registry for root. templateMap may be nil.
func New(root string, templateMap map[string]string, files *fileset.Inspector) *Registry {
	if files == nil {
		files = fileset.New(nil)
	}
	m := make(map[string]string, len(templateMap))
	for k, v := range templateMap {
		m[k] = v
	}
	return &Registry{root: root, templateMap: m, files: files}
}

// Root returns the templates root.
func (r *Registry) Root() string { return r.root }

// Files returns the inspector used for filesystem access.
func (r *Registry) Files() *fileset.Inspector { return r.files }

// Dir returns the directory name for a template, honoring the template map.
func (r *Registry) Dir(name string) string {
	if dir, ok := r.templateMap[name]; ok && dir != "" {
		return dir
	}
	return name
}

// Path returns the absolute template directory for name without checking
// that it exists.
func (r *Registry) Path(name string) string {
	return filepath.Join(r.root, TemplatesDir, r.Dir(name))
}

// Resolve returns the template directory for name, or a TemplateNotFound
// error when it does not exist.
func (r *Registry) Resolve(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", NewTemplateNotFound(name)
	}
	p := r.Path(name)
	if !r.files.IsDir(p) {
		return "", NewTemplateNotFound(name)
	}
	return p, nil
}

// List returns every mapped template plus every directory under the
// templates root, sorted by name. Mapped templates whose directory is
// missing are included with Exists=false.
func (r *Registry) List() []Template {
	byName := make(map[string]Template)

	for name, dir := range r.templateMap {
		byName[name] = Template{Name: name, Dir: dir}
	}

	mappedDirs := make(map[string]bool, len(r.templateMap))
	for _, dir := range r.templateMap {
		mappedDirs[dir] = true
	}

	templatesDir := filepath.Join(r.root, TemplatesDir)
	for _, name := range r.files.ReadDirNames(templatesDir) {
		if strings.HasPrefix(name, ".") || mappedDirs[name] {
			continue
		}
		if !r.files.IsDir(filepath.Join(templatesDir, name)) {
			continue
		}
		byName[name] = Template{Name: name, Dir: name}
	}

	result := make([]Template, 0, len(byName))
	for _, t := range byName {
		t.Path = filepath.Join(templatesDir, t.Dir)
		t.Exists = r.files.IsDir(t.Path)
		if m := manifest.Read(r.files.Fs(), t.Path); m != nil {
			t.Version = m.CurrentVersion
			t.Description = m.Description
			t.Category = m.Category
			t.Tags = m.Tags
		}
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
