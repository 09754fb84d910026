package adapter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	m "nocturne.dev/pkg/nocturne/internal/model"
)

const maxLineSize = 1024 * 1024

// scanLines feeds every line of r to fn. Read failures are wrapped in ErrStreamFailure.
func scanLines(r io.Reader, fn func(lineNo int, line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fn(lineNo, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", m.ErrStreamFailure, lineNo+1, err)
	}

	return nil
}

// skipLog collects skipped lines for one read and logs each of them.
type skipLog struct {
	source  m.Path
	dialect Dialect
	skipped []m.LineDiagnostic
}

func (s *skipLog) skip(lineNo int, line string, err error) {
	slog.Warn("skipping mapping line",
		"dialect", s.dialect.String(),
		"source", string(s.source),
		"line", lineNo,
		"text", line,
		"error", err,
	)

	s.skipped = append(s.skipped, m.LineDiagnostic{
		Source: s.source,
		Line:   lineNo,
		Text:   line,
		Err:    err,
	})
}

func unparseable(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{m.ErrUnparseableLine}, args...)...)
}
