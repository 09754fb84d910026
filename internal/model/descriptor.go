package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	paramsOpen  = '('
	paramsClose = ')'
)

// MethodDescriptor is a method signature: ordered parameter types and one return type.
type MethodDescriptor struct {
	Params []Type
	Return Type
}

// NewMethodDescriptor builds a descriptor from a return type and parameters.
func NewMethodDescriptor(ret Type, params ...Type) MethodDescriptor {
	return MethodDescriptor{Params: params, Return: ret}
}

// ParseMethodDescriptor decodes a descriptor such as "(IDZ)V".
func ParseMethodDescriptor(s string) (MethodDescriptor, error) {
	if len(s) == 0 || s[0] != paramsOpen {
		return MethodDescriptor{}, fmt.Errorf("%w: %q does not start with '('", ErrMalformedDescriptor, s)
	}

	var params []Type

	pos := 1

	for {
		if pos >= len(s) {
			return MethodDescriptor{}, fmt.Errorf("%w: %q is missing ')'", ErrMalformedDescriptor, s)
		}

		if s[pos] == paramsClose {
			pos++
			break
		}

		t, next, err := scanType(s, pos)
		if err != nil {
			return MethodDescriptor{}, wrapMalformed(s, err)
		}

		params = append(params, t)
		pos = next
	}

	if pos >= len(s) {
		return MethodDescriptor{}, fmt.Errorf("%w: %q has no return type", ErrMalformedDescriptor, s)
	}

	ret, next, err := scanType(s, pos)
	if err != nil {
		return MethodDescriptor{}, wrapMalformed(s, err)
	}

	if next != len(s) {
		return MethodDescriptor{}, fmt.Errorf("%w: %q has trailing characters %q", ErrMalformedDescriptor, s, s[next:])
	}

	return MethodDescriptor{Params: params, Return: ret}, nil
}

// scanType reads one type starting at pos and returns the position just past it.
func scanType(s string, pos int) (Type, int, error) {
	start := pos
	for pos < len(s) && s[pos] == arrayPrefix {
		pos++
	}

	if pos >= len(s) {
		return Type{}, pos, fmt.Errorf("%w: %q ends inside an array type", ErrMalformedDescriptor, s[start:])
	}

	end := pos + 1

	if s[pos] == classRefPrefix {
		semi := strings.IndexByte(s[pos:], classRefSuffix)
		if semi < 0 {
			return Type{}, pos, fmt.Errorf("%w: unterminated class reference %q", ErrMalformedDescriptor, s[start:])
		}

		end = pos + semi + 1
	}

	t, err := ParseType(s[start:end])
	if err != nil {
		return Type{}, pos, err
	}

	return t, end, nil
}

func wrapMalformed(s string, err error) error {
	if errors.Is(err, ErrMalformedDescriptor) {
		return err
	}

	return fmt.Errorf("%w: %q: %w", ErrMalformedDescriptor, s, err)
}

// Equal reports whether both descriptors have equal parameters, in order, and equal return types.
func (d MethodDescriptor) Equal(other MethodDescriptor) bool {
	if len(d.Params) != len(other.Params) || !d.Return.Equal(other.Return) {
		return false
	}

	for i := range d.Params {
		if !d.Params[i].Equal(other.Params[i]) {
			return false
		}
	}

	return true
}

// String encodes the descriptor; it is the inverse of ParseMethodDescriptor.
func (d MethodDescriptor) String() string {
	var b strings.Builder

	b.WriteByte(paramsOpen)

	for _, p := range d.Params {
		p.writeTo(&b)
	}

	b.WriteByte(paramsClose)
	d.Return.writeTo(&b)

	return b.String()
}
