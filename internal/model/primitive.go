package model

import "fmt"

// Primitive is a JVM primitive kind, including void.
type Primitive int

// Primitive kinds in JVM descriptor-key order.
const (
	Boolean Primitive = iota
	Byte
	Char
	Double
	Float
	Int
	Long
	Short
	Void
)

var primitiveKeys = [...]byte{
	Boolean: 'Z',
	Byte:    'B',
	Char:    'C',
	Double:  'D',
	Float:   'F',
	Int:     'I',
	Long:    'J',
	Short:   'S',
	Void:    'V',
}

var primitiveNames = [...]string{
	Boolean: "boolean",
	Byte:    "byte",
	Char:    "char",
	Double:  "double",
	Float:   "float",
	Int:     "int",
	Long:    "long",
	Short:   "short",
	Void:    "void",
}

// primitiveByKey is built once at package init and never mutated afterwards.
var primitiveByKey = func() map[byte]Primitive {
	table := make(map[byte]Primitive, len(primitiveKeys))
	for p, key := range primitiveKeys {
		table[key] = Primitive(p)
	}

	return table
}()

// Key returns the one-character descriptor key of the primitive.
// Out-of-range values yield 0.
func (p Primitive) Key() byte {
	if p < Boolean || p > Void {
		return 0
	}

	return primitiveKeys[p]
}

// String returns the Java keyword for the primitive.
func (p Primitive) String() string {
	if p < Boolean || p > Void {
		return "unknown"
	}

	return primitiveNames[p]
}

// PrimitiveFromKey resolves a descriptor key such as 'I' to its primitive.
func PrimitiveFromKey(key byte) (Primitive, error) {
	p, ok := primitiveByKey[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrimitiveKey, key)
	}

	return p, nil
}
