package adapter

import (
	"io"
	"strings"

	"nocturne.dev/pkg/nocturne/internal/merge"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

const (
	srgPackageTag = "PK:"
	srgClassTag   = "CL:"
	srgFieldTag   = "FD:"
	srgMethodTag  = "MD:"
)

// SRGReader imports SRG mappings:
//
//	CL: a net/example/Foo
//	FD: a/b net/example/Foo/bar
//	MD: a/c (I)V net/example/Foo/baz (I)V
type SRGReader struct {
	source m.Path
}

// NewSRGReader returns a reader; source only labels diagnostics.
func NewSRGReader(source m.Path) *SRGReader {
	return &SRGReader{source: source}
}

// Read parses r into a fresh context. Lines that do not parse are skipped
// and reported; a failing stream aborts the read.
func (s *SRGReader) Read(r io.Reader) (*m.ReadResult, error) {
	ctx := m.NewContext()
	skips := &skipLog{source: s.source, dialect: DialectSRG}

	err := scanLines(r, func(lineNo int, line string) {
		if err := s.readLine(ctx, line); err != nil {
			skips.skip(lineNo, line, err)
		}
	})
	if err != nil {
		return nil, err
	}

	return &m.ReadResult{Context: ctx, Skipped: skips.skipped}, nil
}

func (s *SRGReader) readLine(ctx *m.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	tag, args := fields[0], fields[1:]

	switch tag {
	case srgPackageTag:
		return nil
	case srgClassTag:
		if len(args) != 2 {
			return unparseable("%s expects 2 fields, got %d", tag, len(args))
		}

		_, err := merge.GenClassMapping(ctx, args[0], args[1])

		return err
	case srgFieldTag:
		if len(args) != 2 {
			return unparseable("%s expects 2 fields, got %d", tag, len(args))
		}

		_, err := merge.GenFieldMapping(ctx, args[0], args[1], nil)

		return err
	case srgMethodTag:
		if len(args) != 4 {
			return unparseable("%s expects 4 fields, got %d", tag, len(args))
		}

		_, err := merge.GenMethodMapping(ctx, args[0], args[1], args[2], args[3])

		return err
	}

	return unparseable("unknown tag %q", tag)
}
