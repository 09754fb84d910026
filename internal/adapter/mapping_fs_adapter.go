// Package adapter contains the mapping dialect readers/writers and the
// filesystem access they rely on.
package adapter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "nocturne.dev/pkg/nocturne/internal/model"
)

// MappingFSAdapter abstracts filesystem operations used when importing and
// exporting mapping files, so the dialect logic can be tested without
// touching the disk.
type MappingFSAdapter interface {
	// Walk traverses root in lexical order, calling fn for every entry.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// Open opens a file for reading. Callers close the returned reader.
	Open(path m.Path) (io.ReadCloser, error)

	// Create creates or truncates a file for writing, creating parent directories.
	Create(path m.Path) (io.WriteCloser, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalMappingFSAdapter implements MappingFSAdapter on the local filesystem.
type LocalMappingFSAdapter struct{}

// NewLocalMappingFSAdapter constructs a LocalMappingFSAdapter.
func NewLocalMappingFSAdapter() *LocalMappingFSAdapter {
	return &LocalMappingFSAdapter{}
}

// Walk iterates over every file and directory under root.
func (a *LocalMappingFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// Open opens a file for reading.
func (a *LocalMappingFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path is the mapping source chosen by the user
	return os.Open(string(path))
}

// Create creates or truncates a file for writing.
func (a *LocalMappingFSAdapter) Create(path m.Path) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 - path is the export target chosen by the user
	return os.Create(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalMappingFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates a directory tree.
func (a *LocalMappingFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), fs.FileMode(0o750))
}

// JoinPath joins path elements into a single path.
func (a *LocalMappingFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
