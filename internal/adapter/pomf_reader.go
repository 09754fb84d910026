package adapter

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	m "nocturne.dev/pkg/nocturne/internal/model"
)

// POMFReader imports a POMF tree: every regular file under a directory is an
// Enigma fragment, and the fragments read in traversal order form one document.
type POMFReader struct {
	fsAdapter MappingFSAdapter
}

// NewPOMFReader returns a reader backed by fsAdapter.
func NewPOMFReader(fsAdapter MappingFSAdapter) *POMFReader {
	return &POMFReader{fsAdapter: fsAdapter}
}

// Read concatenates the files under root and parses the result as Enigma.
// Line numbers in diagnostics refer to the concatenated stream.
func (p *POMFReader) Read(root m.Path) (*m.ReadResult, error) {
	var buf bytes.Buffer

	files := 0

	err := p.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		files++

		return p.appendFile(&buf, m.Path(path))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walk %s: %w", m.ErrStreamFailure, root, err)
	}

	slog.Debug("aggregated pomf mappings", "root", string(root), "files", files, "bytes", buf.Len())

	return NewEnigmaReader(root).Read(&buf)
}

func (p *POMFReader) appendFile(buf *bytes.Buffer, path m.Path) error {
	f, err := p.fsAdapter.Open(path)
	if err != nil {
		return err
	}

	defer func() {
		_ = f.Close()
	}()

	if _, err := io.Copy(buf, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	// Fragments are line-oriented; keep the last line of one file from merging with the next.
	if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}

	return nil
}
