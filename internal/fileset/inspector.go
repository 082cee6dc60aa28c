package fileset

import (
	"bytes"
	"sort"

	"github.com/spf13/afero"
)

// Inspector performs read-only existence, kind and content checks.
type Inspector struct {
	fs afero.Fs
}

// New returns an Inspector backed by fsys. A nil fsys means the OS filesystem.
func New(fsys afero.Fs) *Inspector {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Inspector{fs: fsys}
}

// Fs returns the underlying filesystem.
func (in *Inspector) Fs() afero.Fs {
	return in.fs
}

// Exists reports whether path exists as a file or directory.
func (in *Inspector) Exists(path string) bool {
	ok, err := afero.Exists(in.fs, path)
	return err == nil && ok
}

// IsFile reports whether path is a regular file.
func (in *Inspector) IsFile(path string) bool {
	info, err := in.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir reports whether path is a directory.
func (in *Inspector) IsDir(path string) bool {
	info, err := in.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile returns the full contents of path.
func (in *Inspector) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(in.fs, path)
}

// ContentEquals reads both files completely and compares their bytes.
// Templates are source-sized, so no hashing or streaming is done.
func (in *Inspector) ContentEquals(a, b string) bool {
	left, err := afero.ReadFile(in.fs, a)
	if err != nil {
		return false
	}
	right, err := afero.ReadFile(in.fs, b)
	if err != nil {
		return false
	}
	return bytes.Equal(left, right)
}

// ReadDirNames returns the sorted entry names of dir, or nil when dir cannot
// be listed.
func (in *Inspector) ReadDirNames(dir string) []string {
	infos, err := afero.ReadDir(in.fs, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names
}
