package adapter

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

const exampleEnigma = "CLASS a net/example/Foo\n" +
	"\tCLASS b Inner\n" +
	"\t\tCLASS c\n" +
	"\t\t\tFIELD d deep Z\n" +
	"\t\tMETHOD e make (La;)La$b;\n" +
	"\tFIELD f count I\n" +
	"\tFIELD g [J\n" +
	"\tMETHOD h (I)V\n" +
	"\tMETHOD i run ()V\n" +
	"\t\tARG 0 self\n" +
	"CLASS j\n"

func TestEnigmaReader_Tree(t *testing.T) {
	result, err := NewEnigmaReader("example.mapping").Read(strings.NewReader(exampleEnigma))
	require.NoError(t, err)
	require.Empty(t, result.Skipped)

	ctx := result.Context
	require.Len(t, ctx.TopLevelClasses(), 2)

	a := ctx.Class(ctx.TopLevelClasses()[0])
	assert.Equal(t, "a", a.ObfuscatedName())
	assert.Equal(t, "net/example/Foo", a.DeobfuscatedName())

	j := ctx.Class(ctx.TopLevelClasses()[1])
	assert.Equal(t, "j", j.ObfuscatedName())
	assert.False(t, j.IsMapped())

	c, ok := ctx.LookupClass("a$b$c")
	require.True(t, ok)
	assert.Equal(t, "net/example/Foo$Inner$c", ctx.FullDeobfuscatedName(c))

	fid, ok := ctx.Class(c).Field("d")
	require.True(t, ok)

	typ, ok := ctx.FieldByID(fid).Type()
	require.True(t, ok)
	assert.Equal(t, "Z", typ.String())

	b, ok := ctx.LookupClass("a$b")
	require.True(t, ok)

	mid, ok := ctx.Class(b).Method("e")
	require.True(t, ok)
	assert.Equal(t, "make", ctx.MethodByID(mid).DeobfuscatedName())
	assert.Equal(t, "(La;)La$b;", ctx.MethodByID(mid).ObfuscatedDescriptor().String())

	identityField, ok := a.Field("g")
	require.True(t, ok)
	assert.False(t, ctx.FieldByID(identityField).IsMapped())

	identityMethod, ok := a.Method("h")
	require.True(t, ok)
	assert.False(t, ctx.MethodByID(identityMethod).IsMapped())

	assert.Equal(t, m.Stats{TopLevelClasses: 2, InnerClasses: 2, Fields: 3, Methods: 3, Mapped: 6}, ctx.Stats())
}

func TestEnigmaReader_FullyQualifiedInnerNames(t *testing.T) {
	input := "CLASS none/a Foo\n\tCLASS none/a$b Foo$Bar\n\t\tFIELD c d I\n"

	result, err := NewEnigmaReader("").Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, result.Skipped)

	inner, ok := result.Context.LookupClass("none/a$b")
	require.True(t, ok)
	assert.Equal(t, "b", result.Context.Class(inner).ObfuscatedName())
	assert.Equal(t, "Foo$Bar", result.Context.FullDeobfuscatedName(inner))
}

func TestEnigmaReader_SkipsBadLines(t *testing.T) {
	input := strings.Join([]string{
		"CLASS a A",
		"\t\tCLASS z",         // too deep
		"FIELD f g I",         // member without class
		"\tFIELD f g I",       // ok
		"\tFIELD f g I Q",     // too many fields
		"\tFIELD x y Lbroken", // bad type
		"\tMETHOD m (I",       // bad descriptor
		"\tCLASS q$r",         // not nested in a
		"\tARG 0 x",           // no method
		"\tWHAT is this",
		"\tMETHOD m n (I)V", // ok
		"\t\tARG 0 x",       // ok
	}, "\n")

	result, err := NewEnigmaReader("bad.mapping").Read(strings.NewReader(input))
	require.NoError(t, err)

	lines := make([]int, 0, len(result.Skipped))
	for _, d := range result.Skipped {
		lines = append(lines, d.Line)
	}

	assert.Equal(t, []int{2, 3, 5, 6, 7, 8, 9, 10}, lines)
	assert.ErrorIs(t, result.Skipped[0].Err, m.ErrUnparseableLine)
	assert.ErrorIs(t, result.Skipped[3].Err, m.ErrInvalidTypeDescriptor)
	assert.ErrorIs(t, result.Skipped[4].Err, m.ErrMalformedDescriptor)

	assert.Equal(t, m.Stats{TopLevelClasses: 1, Fields: 1, Methods: 1, Mapped: 3}, result.Context.Stats())
}

func TestEnigmaReader_StructuralMismatchAtTopLevel(t *testing.T) {
	result, err := NewEnigmaReader("").Read(strings.NewReader("CLASS a$b X\nCLASS c\n"))
	require.NoError(t, err)
	require.Len(t, result.Skipped, 1)
	assert.ErrorIs(t, result.Skipped[0].Err, m.ErrStructuralMismatch)

	assert.Len(t, result.Context.TopLevelClasses(), 1)
}

func TestEnigmaReader_UntypedFieldRename(t *testing.T) {
	result, err := NewEnigmaReader("").Read(strings.NewReader("CLASS a\n\tFIELD f g\n"))
	require.NoError(t, err)
	require.Empty(t, result.Skipped)

	a, _ := result.Context.TopLevelClass("a")
	fid, ok := result.Context.Class(a).Field("f")
	require.True(t, ok)

	field := result.Context.FieldByID(fid)
	assert.Equal(t, "g", field.DeobfuscatedName())

	_, typed := field.Type()
	assert.False(t, typed)
}

func TestEnigmaReader_ClassLineAfterMembersClosesScope(t *testing.T) {
	input := "CLASS a\n\tCLASS b\n\t\tFIELD x y I\n\tFIELD f g I\n\tCLASS c\n\t\tFIELD z w I\n"

	result, err := NewEnigmaReader("").Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, result.Skipped)

	ctx := result.Context
	c, ok := ctx.LookupClass("a$c")
	require.True(t, ok)

	_, ok = ctx.Class(c).Field("z")
	assert.True(t, ok)

	a, _ := ctx.TopLevelClass("a")
	_, ok = ctx.Class(a).Field("f")
	assert.True(t, ok)
}

func TestEnigmaReader_StreamFailure(t *testing.T) {
	boom := errors.New("connection reset")
	r := io.MultiReader(strings.NewReader("CLASS a b\n\tFIELD f g I\n"), iotest.ErrReader(boom))

	result, err := NewEnigmaReader("broken.mapping").Read(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrStreamFailure)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result, "no partial context on stream failure")
}

// failingOpenFS serves the local tree but every opened file fails mid-read.
type failingOpenFS struct {
	MappingFSAdapter
	err error
}

func (f failingOpenFS) Open(_ m.Path) (io.ReadCloser, error) {
	return io.NopCloser(io.MultiReader(strings.NewReader("CLASS a b\n"), iotest.ErrReader(f.err))), nil
}

func TestPOMFReader_StreamFailure(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.mapping"), "CLASS a b\n")

	boom := errors.New("bad sector")
	fs := failingOpenFS{MappingFSAdapter: NewLocalMappingFSAdapter(), err: boom}

	result, err := NewPOMFReader(fs).Read(m.Path(root))
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrStreamFailure)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}
