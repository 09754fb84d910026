package model

// LineDiagnostic records an input line that was skipped during an import.
type LineDiagnostic struct {
	Source Path   // file the line came from, empty for in-memory input
	Line   int    // 1-based line number in the stream the reader saw
	Text   string // raw line
	Err    error  // cause, matches ErrUnparseableLine, ErrStructuralMismatch or a codec error
}

// ReadResult is the outcome of a successful import.
type ReadResult struct {
	Context *Context
	Skipped []LineDiagnostic
}

// SourceReport summarizes one loaded mapping source.
type SourceReport struct {
	Source  Path   `yaml:"source"`
	Dialect string `yaml:"dialect"`
	Stats   Stats  `yaml:"stats"`
	Skipped int    `yaml:"skipped"`
}
