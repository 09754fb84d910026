// Package merge builds and extends a mapping tree from obfuscated/deobfuscated
// name pairs. Every operation is create-or-update and safe to repeat.
package merge

import (
	"fmt"
	"strings"

	m "nocturne.dev/pkg/nocturne/internal/model"
)

// GetClassMapping resolves a '$'-qualified obfuscated class name without creating anything.
func GetClassMapping(ctx *m.Context, qualifiedName string) (m.ClassID, bool) {
	return ctx.LookupClass(qualifiedName)
}

// GetOrCreateClassMapping resolves a '$'-qualified obfuscated class name,
// creating identity-named top-level and inner classes for missing segments.
// Calling it again with the same name returns the same class.
func GetOrCreateClassMapping(ctx *m.Context, qualifiedName string) m.ClassID {
	segments := splitInner(qualifiedName)

	id, ok := ctx.TopLevelClass(segments[0])
	if !ok {
		id = ctx.NewTopLevelClass(segments[0], segments[0])
	}

	for _, segment := range segments[1:] {
		id = UpsertInnerClass(ctx, id, segment, "")
	}

	return id
}

// GenClassMapping records that class obf is named deobf. Both names may be
// '$'-qualified inner class names, in which case they must have the same
// nesting depth; otherwise ErrStructuralMismatch is returned and ctx is left unchanged.
func GenClassMapping(ctx *m.Context, obf, deobf string) (m.ClassID, error) {
	if !strings.ContainsRune(obf, m.InnerClassSeparator) {
		if id, ok := ctx.TopLevelClass(obf); ok {
			ctx.Class(id).SetDeobfuscatedName(deobf)
			return id, nil
		}

		return ctx.NewTopLevelClass(obf, deobf), nil
	}

	obfSegments := splitInner(obf)
	deobfSegments := splitInner(deobf)

	if len(obfSegments) != len(deobfSegments) {
		return m.NoClass, fmt.Errorf("%w: %s <-> %s", m.ErrStructuralMismatch, obf, deobf)
	}

	last := len(obfSegments) - 1
	parent := GetOrCreateClassMapping(ctx, obf[:strings.LastIndexByte(obf, m.InnerClassSeparator)])

	return UpsertInnerClass(ctx, parent, obfSegments[last], deobfSegments[last]), nil
}

// UpsertInnerClass renames the inner class obf of parent, creating it when missing.
// An empty deobf keeps the current name of an existing class.
func UpsertInnerClass(ctx *m.Context, parent m.ClassID, obf, deobf string) m.ClassID {
	if id, ok := ctx.Class(parent).InnerClass(obf); ok {
		if deobf != "" {
			ctx.Class(id).SetDeobfuscatedName(deobf)
		}

		return id
	}

	return ctx.NewInnerClass(parent, obf, deobf)
}

// GenFieldMapping records an owner-qualified field rename such as "a/f" -> "b/g".
// typ may be nil for dialects that carry no field types.
func GenFieldMapping(ctx *m.Context, obf, deobf string, typ *m.Type) (m.FieldID, error) {
	owner, obfName, err := splitMember(obf)
	if err != nil {
		return 0, err
	}

	return UpsertField(ctx, GetOrCreateClassMapping(ctx, owner), obfName, memberName(deobf), typ), nil
}

// UpsertField renames field obf of owner, creating it when missing. A known
// type is attached to an existing field that has none.
func UpsertField(ctx *m.Context, owner m.ClassID, obf, deobf string, typ *m.Type) m.FieldID {
	id, ok := ctx.Class(owner).Field(obf)
	if !ok {
		return ctx.NewField(owner, obf, deobf, typ)
	}

	field := ctx.FieldByID(id)
	field.SetDeobfuscatedName(deobf)

	if _, known := field.Type(); !known && typ != nil {
		field.SetType(*typ)
	}

	return id
}

// GenMethodMapping records an owner-qualified method rename such as
// "a/m" "(I)V" -> "b/n" "(I)V". The obfuscated descriptor must parse; the
// deobfuscated one is accepted as-is because it is derivable from the tree.
func GenMethodMapping(ctx *m.Context, obf, obfDesc, deobf, _ string) (m.MethodID, error) {
	owner, obfName, err := splitMember(obf)
	if err != nil {
		return 0, err
	}

	desc, err := m.ParseMethodDescriptor(obfDesc)
	if err != nil {
		return 0, err
	}

	return UpsertMethod(ctx, GetOrCreateClassMapping(ctx, owner), obfName, memberName(deobf), desc), nil
}

// UpsertMethod renames method obf of owner, creating it when missing. Methods
// are keyed by name only: an existing overload keeps its original descriptor.
func UpsertMethod(ctx *m.Context, owner m.ClassID, obf, deobf string, desc m.MethodDescriptor) m.MethodID {
	if id, ok := ctx.Class(owner).Method(obf); ok {
		ctx.MethodByID(id).SetDeobfuscatedName(deobf)
		return id
	}

	return ctx.NewMethod(owner, obf, deobf, desc)
}

func splitInner(name string) []string {
	return strings.Split(name, string(m.InnerClassSeparator))
}

// splitMember splits "pkg/Owner/member" into its owner class path and member name.
func splitMember(qualified string) (string, string, error) {
	idx := strings.LastIndexByte(qualified, m.ClassPathSeparator)
	if idx <= 0 || idx == len(qualified)-1 {
		return "", "", fmt.Errorf("%w: %q is not an owner-qualified member name", m.ErrUnparseableLine, qualified)
	}

	return qualified[:idx], qualified[idx+1:], nil
}

func memberName(qualified string) string {
	return qualified[strings.LastIndexByte(qualified, m.ClassPathSeparator)+1:]
}
