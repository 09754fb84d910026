package model

import (
	"fmt"
	"strings"
)

const (
	arrayPrefix    = '['
	classRefPrefix = 'L'
	classRefSuffix = ';'
)

// Type is a JVM field type: a primitive or a class reference, with array dimensions.
type Type struct {
	primitive Primitive
	className string
	isClass   bool
	dims      int
}

// NewPrimitiveType builds a primitive type with the given array dimensions.
func NewPrimitiveType(p Primitive, dims int) Type {
	return Type{primitive: p, dims: max(dims, 0)}
}

// NewClassType builds a class reference type. className uses '/' as package separator
// and must be non-empty and free of ';' so that the descriptor parses back.
func NewClassType(className string, dims int) (Type, error) {
	if className == "" || strings.ContainsRune(className, classRefSuffix) {
		return Type{}, fmt.Errorf("%w: class name %q", ErrInvalidTypeDescriptor, className)
	}

	return Type{className: className, isClass: true, dims: max(dims, 0)}, nil
}

// MustClassType is like NewClassType but panics on an invalid class name.
func MustClassType(className string, dims int) Type {
	t, err := NewClassType(className, dims)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseType decodes a field descriptor such as "[[I" or "Ljava/lang/String;".
func ParseType(s string) (Type, error) {
	rest := strings.TrimLeft(s, string(arrayPrefix))
	dims := len(s) - len(rest)

	if len(rest) == 1 {
		p, err := PrimitiveFromKey(rest[0])
		if err != nil {
			return Type{}, err
		}

		return NewPrimitiveType(p, dims), nil
	}

	if len(rest) > 2 && rest[0] == classRefPrefix && rest[len(rest)-1] == classRefSuffix {
		if t, err := NewClassType(rest[1:len(rest)-1], dims); err == nil {
			return t, nil
		}
	}

	return Type{}, fmt.Errorf("%w: %q", ErrInvalidTypeDescriptor, s)
}

// IsPrimitive reports whether the type is a primitive (possibly an array of one).
func (t Type) IsPrimitive() bool {
	return !t.isClass
}

// Dimensions returns the number of array dimensions.
func (t Type) Dimensions() int {
	return t.dims
}

// Primitive returns the primitive kind, or ErrWrongTypeKind for class references.
func (t Type) Primitive() (Primitive, error) {
	if t.isClass {
		return 0, fmt.Errorf("%w: cannot get class type %s as primitive", ErrWrongTypeKind, t)
	}

	return t.primitive, nil
}

// ClassName returns the referenced class name, or ErrWrongTypeKind for primitives.
func (t Type) ClassName() (string, error) {
	if !t.isClass {
		return "", fmt.Errorf("%w: cannot get primitive type %s as class", ErrWrongTypeKind, t)
	}

	return t.className, nil
}

// Equal reports whether both types have the same kind, primitive-or-name and dimensions.
func (t Type) Equal(other Type) bool {
	if t.isClass != other.isClass || t.dims != other.dims {
		return false
	}

	if t.isClass {
		return t.className == other.className
	}

	return t.primitive == other.primitive
}

// String encodes the type as a descriptor; it is the inverse of ParseType.
func (t Type) String() string {
	var b strings.Builder

	t.writeTo(&b)

	return b.String()
}

func (t Type) writeTo(b *strings.Builder) {
	for range t.dims {
		b.WriteByte(arrayPrefix)
	}

	if !t.isClass {
		b.WriteByte(t.primitive.Key())
		return
	}

	b.WriteByte(classRefPrefix)
	b.WriteString(t.className)
	b.WriteByte(classRefSuffix)
}
