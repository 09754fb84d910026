package adapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

func TestEnigmaWriter_SingleField(t *testing.T) {
	ctx := m.NewContext()
	a := ctx.NewTopLevelClass("a", "")
	intType := m.NewPrimitiveType(m.Int, 0)
	ctx.NewField(a, "f", "g", &intType)

	var buf bytes.Buffer
	require.NoError(t, NewEnigmaWriter().Write(&buf, ctx))

	assert.Equal(t, "CLASS a\n\tFIELD f g I\n", buf.String())
}

func TestEnigmaWriter_Ordering(t *testing.T) {
	ctx := m.NewContext()

	a := ctx.NewTopLevelClass("a", "Foo")
	ctx.NewMethod(a, "m", "", m.NewMethodDescriptor(m.NewPrimitiveType(m.Void, 0), m.NewPrimitiveType(m.Int, 0)))
	ctx.NewMethod(a, "n", "run", m.NewMethodDescriptor(m.MustClassType("a", 0)))
	ctx.NewField(a, "f", "count", nil)
	b := ctx.NewInnerClass(a, "b", "Bar")
	ctx.NewInnerClass(b, "c", "")
	ctx.NewTopLevelClass("z", "")

	var buf bytes.Buffer
	require.NoError(t, NewEnigmaWriter().Write(&buf, ctx))

	want := strings.Join([]string{
		"CLASS a Foo",
		"\tCLASS b Bar",
		"\t\tCLASS c",
		"\tFIELD f count",
		"\tMETHOD m (I)V",
		"\tMETHOD n run ()La;",
		"CLASS z",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestEnigmaWriter_ReadBackIsStable(t *testing.T) {
	first, err := NewEnigmaReader("").Read(strings.NewReader(exampleEnigma))
	require.NoError(t, err)

	var once bytes.Buffer
	require.NoError(t, NewEnigmaWriter().Write(&once, first.Context))

	second, err := NewEnigmaReader("").Read(strings.NewReader(once.String()))
	require.NoError(t, err)
	require.Empty(t, second.Skipped)

	var twice bytes.Buffer
	require.NoError(t, NewEnigmaWriter().Write(&twice, second.Context))

	assert.Equal(t, once.String(), twice.String())
	assert.Equal(t, first.Context.Stats(), second.Context.Stats())
}

func TestEnigmaWriter_WriteClass(t *testing.T) {
	ctx := m.NewContext()
	a := ctx.NewTopLevelClass("a", "Foo")
	ctx.NewInnerClass(a, "b", "")
	z := ctx.NewTopLevelClass("z", "Zed")
	ctx.NewField(z, "f", "g", nil)

	var buf bytes.Buffer
	require.NoError(t, NewEnigmaWriter().WriteClass(&buf, ctx, z))
	assert.Equal(t, "CLASS z Zed\n\tFIELD f g\n", buf.String())

	buf.Reset()
	require.NoError(t, NewEnigmaWriter().WriteClass(&buf, ctx, a))
	assert.Equal(t, "CLASS a Foo\n\tCLASS b\n", buf.String())
}
