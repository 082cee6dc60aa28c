// Package preview builds a read-only summary of a template: its file tree,
// the packages its package.json declares and its manifest metadata.
package preview

import (
	"encoding/json"
	"path/filepath"

	"github.com/newkub/templates/internal/fileset"
	"github.com/newkub/templates/internal/manifest"
	"github.com/newkub/templates/internal/registry"
)

// Preview describes a template without touching any target directory.
type Preview struct {
	Name         string          `json:"name" yaml:"name"`
	Version      string          `json:"version,omitempty" yaml:"version,omitempty"`
	Description  string          `json:"description,omitempty" yaml:"description,omitempty"`
	Structure    []*fileset.Node `json:"structure" yaml:"structure"`
	Dependencies *DependencyInfo `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Features     []string        `json:"features,omitempty" yaml:"features,omitempty"`
	Category     string          `json:"category,omitempty" yaml:"category,omitempty"`
	Tags         []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// DependencyInfo summarizes the dependency maps of a package.json.
type DependencyInfo struct {
	Dependencies     map[string]string `json:"dependencies" yaml:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies" yaml:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies" yaml:"peerDependencies"`
	Total            int               `json:"total" yaml:"total"`
}

// Service previews templates resolved through a registry.
type Service struct {
	reg *registry.Registry
}

// NewService returns a Service reading templates from reg.
func NewService(reg *registry.Registry) *Service {
	return &Service{reg: reg}
}

// Preview returns the preview of template name. The only error is
// TEMPLATE_NOT_FOUND; unreadable package.json or manifest files are left out
// of the result.
func (s *Service) Preview(name string) (*Preview, error) {
	dir, err := s.reg.Resolve(name)
	if err != nil {
		return nil, err
	}

	files := s.reg.Files()
	p := &Preview{
		Name:         name,
		Structure:    files.Tree(dir, fileset.PreviewExcludes(), fileset.DefaultTreeDepth),
		Dependencies: ReadDependencies(files, filepath.Join(dir, "package.json")),
	}
	if p.Structure == nil {
		p.Structure = []*fileset.Node{}
	}

	if m := manifest.Read(files.Fs(), dir); m != nil {
		p.Version = m.CurrentVersion
		p.Description = m.Description
		p.Category = m.Category
		p.Tags = m.Tags
		if len(m.Versions) > 0 {
			p.Features = m.Versions[0].Features
		}
	}
	return p, nil
}

// PackageJSON is the subset of package.json the tool reads.
type PackageJSON struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// ReadPackageJSON parses the package.json at path.
func ReadPackageJSON(files *fileset.Inspector, path string) (*PackageJSON, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ReadDependencies returns the dependency summary of the package.json at
// path, or nil when it is missing or malformed.
func ReadDependencies(files *fileset.Inspector, path string) *DependencyInfo {
	pkg, err := ReadPackageJSON(files, path)
	if err != nil {
		return nil
	}
	info := &DependencyInfo{
		Dependencies:     nonNil(pkg.Dependencies),
		DevDependencies:  nonNil(pkg.DevDependencies),
		PeerDependencies: nonNil(pkg.PeerDependencies),
	}
	info.Total = len(info.Dependencies) + len(info.DevDependencies) + len(info.PeerDependencies)
	return info
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
