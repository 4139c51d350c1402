package catz

import (
	"io"
	"os"
	"path/filepath"
)

// Flat is a directory of flat files, like an export directory.
type Flat struct {
	path string
}

func NewFlatWithRoot(root string) *Flat {
	root = filepath.Clean(root)
	// If root is not absolute, make it absolute.
	if !filepath.IsAbs(root) {
		root, _ = filepath.Abs(root)
	}
	return &Flat{path: root}
}

// Joins returns a new Flat for a subdirectory.
func (f *Flat) Joins(paths ...string) *Flat {
	return &Flat{path: filepath.Join(append([]string{f.path}, paths...)...)}
}

func (f *Flat) MkdirAll() error {
	return os.MkdirAll(f.path, 0770)
}

func (f *Flat) Path() string {
	return f.path
}

// Create truncates or creates a named plain file in the directory.
func (f *Flat) Create(name string) (io.WriteCloser, error) {
	if err := f.MkdirAll(); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(f.path, name), os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0660)
}

// CreateGZ truncates or creates a named gzipped file in the directory.
func (f *Flat) CreateGZ(name string) (*GZFileWriter, error) {
	return NewGZFileWriter(filepath.Join(f.path, name), nil)
}
