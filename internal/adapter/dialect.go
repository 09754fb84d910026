package adapter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect is a supported mapping file grammar.
type Dialect int

// Supported dialects. DialectAuto picks one from the source path.
const (
	DialectAuto Dialect = iota
	DialectSRG
	DialectEnigma
	DialectPOMF
)

const srgExtension = ".srg"

// String returns the dialect name as accepted by ParseDialect.
func (d Dialect) String() string {
	switch d {
	case DialectAuto:
		return "auto"
	case DialectSRG:
		return "srg"
	case DialectEnigma:
		return "enigma"
	case DialectPOMF:
		return "pomf"
	default:
		return "unknown"
	}
}

// ParseDialect resolves a dialect name, case-insensitively.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return DialectAuto, nil
	case "srg":
		return DialectSRG, nil
	case "enigma":
		return DialectEnigma, nil
	case "pomf":
		return DialectPOMF, nil
	}

	return DialectAuto, fmt.Errorf("unknown mapping dialect %q (want auto, srg, enigma or pomf)", name)
}

// DetectDialect picks a dialect from the shape of a source: directories are
// POMF trees, *.srg files are SRG and anything else is read as Enigma.
func DetectDialect(path string, isDir bool) Dialect {
	if isDir {
		return DialectPOMF
	}

	if strings.EqualFold(filepath.Ext(path), srgExtension) {
		return DialectSRG
	}

	return DialectEnigma
}
