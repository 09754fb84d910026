package adapter

import (
	"fmt"
	"io"
	"log/slog"

	m "nocturne.dev/pkg/nocturne/internal/model"
)

const pomfFileExtension = ".mapping"

// MappingIOAdapter loads and stores mapping sets in any supported dialect.
type MappingIOAdapter interface {
	// Read imports path. DialectAuto is resolved with DetectDialect; the
	// dialect actually used is returned alongside the result.
	Read(dialect Dialect, path m.Path) (*m.ReadResult, Dialect, error)

	// Write exports ctx to path. POMF writes one file per top-level class under path.
	Write(dialect Dialect, path m.Path, ctx *m.Context) error

	// WriteTo exports ctx to w. POMF is written as a single Enigma document.
	WriteTo(dialect Dialect, w io.Writer, ctx *m.Context) error
}

type localMappingIOAdapter struct {
	fsAdapter MappingFSAdapter
}

// NewMappingIOAdapter builds a MappingIOAdapter on top of fsAdapter.
func NewMappingIOAdapter(fsAdapter MappingFSAdapter) MappingIOAdapter {
	return &localMappingIOAdapter{fsAdapter: fsAdapter}
}

func (a *localMappingIOAdapter) Read(dialect Dialect, path m.Path) (*m.ReadResult, Dialect, error) {
	info, err := a.fsAdapter.FileInfo(path)
	if err != nil {
		return nil, dialect, fmt.Errorf("%w: %w", m.ErrStreamFailure, err)
	}

	if dialect == DialectAuto {
		dialect = DetectDialect(string(path), info.IsDir())
		slog.Debug("detected mapping dialect", "source", string(path), "dialect", dialect.String())
	}

	if dialect == DialectPOMF {
		if !info.IsDir() {
			return nil, dialect, fmt.Errorf("%w: pomf source %s is not a directory", m.ErrStreamFailure, path)
		}

		result, err := NewPOMFReader(a.fsAdapter).Read(path)

		return result, dialect, err
	}

	result, err := a.readFile(dialect, path)

	return result, dialect, err
}

func (a *localMappingIOAdapter) readFile(dialect Dialect, path m.Path) (*m.ReadResult, error) {
	f, err := a.fsAdapter.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrStreamFailure, err)
	}

	defer func() {
		_ = f.Close()
	}()

	switch dialect {
	case DialectSRG:
		return NewSRGReader(path).Read(f)
	case DialectEnigma:
		return NewEnigmaReader(path).Read(f)
	default:
		return nil, fmt.Errorf("no reader for dialect %s", dialect)
	}
}

func (a *localMappingIOAdapter) Write(dialect Dialect, path m.Path, ctx *m.Context) error {
	if dialect == DialectPOMF {
		return a.writePOMF(path, ctx)
	}

	f, err := a.fsAdapter.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", m.ErrStreamFailure, err)
	}

	if err := a.WriteTo(dialect, f, ctx); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (a *localMappingIOAdapter) WriteTo(dialect Dialect, w io.Writer, ctx *m.Context) error {
	switch dialect {
	case DialectSRG:
		return NewSRGWriter().Write(w, ctx)
	case DialectEnigma, DialectPOMF:
		return NewEnigmaWriter().Write(w, ctx)
	default:
		return fmt.Errorf("no writer for dialect %s", dialect)
	}
}

func (a *localMappingIOAdapter) writePOMF(root m.Path, ctx *m.Context) error {
	if err := a.fsAdapter.MkdirAll(root); err != nil {
		return fmt.Errorf("%w: %w", m.ErrStreamFailure, err)
	}

	writer := NewEnigmaWriter()

	for _, id := range ctx.TopLevelClasses() {
		target := a.fsAdapter.JoinPath(string(root), ctx.Class(id).ObfuscatedName()+pomfFileExtension)

		f, err := a.fsAdapter.Create(target)
		if err != nil {
			return fmt.Errorf("%w: %w", m.ErrStreamFailure, err)
		}

		if err := writer.WriteClass(f, ctx, id); err != nil {
			_ = f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
