package model

import "errors"

// Codec errors are fatal to the single parse call that produced them.
var (
	// ErrUnknownPrimitiveKey is returned when a descriptor character is not one of the nine primitive keys.
	ErrUnknownPrimitiveKey = errors.New("unknown primitive key")
	// ErrInvalidTypeDescriptor is returned for a type descriptor that is neither primitive nor class reference.
	ErrInvalidTypeDescriptor = errors.New("invalid type descriptor")
	// ErrMalformedDescriptor is returned for a method descriptor that does not follow the (params)return grammar.
	ErrMalformedDescriptor = errors.New("malformed method descriptor")
	// ErrWrongTypeKind is returned when a primitive Type is queried as a class or vice versa.
	ErrWrongTypeKind = errors.New("wrong type kind")
)

// Import errors. Line- and pair-level errors are recovered by the readers;
// ErrStreamFailure aborts the whole read.
var (
	// ErrUnparseableLine marks a mapping line that does not tokenize per its dialect.
	ErrUnparseableLine = errors.New("unparseable line")
	// ErrStructuralMismatch marks a class pair whose obfuscated and deobfuscated nesting depths differ.
	ErrStructuralMismatch = errors.New("structural mismatch")
	// ErrStreamFailure wraps I/O failures of the underlying mapping source.
	ErrStreamFailure = errors.New("stream failure")
)
