package fileset

import (
	"path"
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind classifies a walked entry.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// DefaultTreeDepth bounds preview trees.
const DefaultTreeDepth = 3

// Entry is one file or directory found under a walked root.
type Entry struct {
	RelativePath string `json:"relativePath" yaml:"relativePath"` // slash-separated, relative to the root
	Kind         Kind   `json:"kind" yaml:"kind"`
}

// Node is a display tree node produced by Tree.
type Node struct {
	Name     string  `json:"name" yaml:"name"`
	Type     Kind    `json:"type" yaml:"type"`
	Path     string  `json:"path" yaml:"path"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// NameSet is a set of entry names to exclude.
type NameSet map[string]bool

// Names builds a NameSet.
func Names(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// PlanExcludes are skipped when planning operations or detecting conflicts.
func PlanExcludes() NameSet { return Names("node_modules", ".git") }

// PreviewExcludes are skipped when building a preview tree.
func PreviewExcludes() NameSet { return Names("node_modules", ".git", "dist", "build") }

// Walk enumerates every entry under root in depth-first pre-order, siblings
// in name order. Excluded names are skipped along with everything beneath
// them. A missing or unreadable root yields an empty slice.
func (in *Inspector) Walk(root string, exclude NameSet) []Entry {
	type frame struct {
		abs string
		rel string
	}

	push := func(stack []frame, dir, rel string) []frame {
		names := in.ReadDirNames(dir)
		// Reverse order so the first name is popped first.
		for i := len(names) - 1; i >= 0; i-- {
			if exclude[names[i]] {
				continue
			}
			stack = append(stack, frame{
				abs: filepath.Join(dir, names[i]),
				rel: path.Join(rel, names[i]),
			})
		}
		return stack
	}

	var entries []Entry
	stack := push(nil, root, "")
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := in.fs.Stat(top.abs)
		if err != nil {
			continue
		}
		switch {
		case info.Mode().IsRegular():
			entries = append(entries, Entry{RelativePath: top.rel, Kind: KindFile})
		case info.IsDir():
			entries = append(entries, Entry{RelativePath: top.rel, Kind: KindDirectory})
			stack = push(stack, top.abs, top.rel)
		}
	}

	return entries
}

// Files returns the relative paths of all files under root.
func (in *Inspector) Files(root string, exclude NameSet) []string {
	var files []string
	for _, e := range in.Walk(root, exclude) {
		if e.Kind == KindFile {
			files = append(files, e.RelativePath)
		}
	}
	return files
}

// Tree builds a display tree of root down to maxDepth levels. Directories at
// the depth bound are listed without children. Directories sort before files,
// then names compare with an English collator.
func (in *Inspector) Tree(root string, exclude NameSet, maxDepth int) []*Node {
	col := collate.New(language.English)
	return in.tree(root, "", exclude, maxDepth, 0, col)
}

func (in *Inspector) tree(dir, rel string, exclude NameSet, maxDepth, depth int, col *collate.Collator) []*Node {
	if depth >= maxDepth {
		return nil
	}

	var nodes []*Node
	for _, name := range in.ReadDirNames(dir) {
		if exclude[name] {
			continue
		}
		abs := filepath.Join(dir, name)
		p := path.Join(rel, name)

		if in.IsFile(abs) {
			nodes = append(nodes, &Node{Name: name, Type: KindFile, Path: p})
			continue
		}
		if !in.IsDir(abs) {
			continue
		}
		nodes = append(nodes, &Node{
			Name:     name,
			Type:     KindDirectory,
			Path:     p,
			Children: in.tree(abs, p, exclude, maxDepth, depth+1, col),
		})
	}

	SortNodes(nodes, col)
	return nodes
}

// SortNodes orders nodes directories first, then by collated name.
func SortNodes(nodes []*Node, col *collate.Collator) {
	if col == nil {
		col = collate.New(language.English)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Type != b.Type {
			return a.Type == KindDirectory
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
}
