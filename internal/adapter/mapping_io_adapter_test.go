package adapter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestMappingIOAdapter_ReadAutoDetects(t *testing.T) {
	root := t.TempDir()
	srgPath := filepath.Join(root, "joined.srg")
	enigmaPath := filepath.Join(root, "client.mapping")

	writeTestFile(t, srgPath, "CL: a b\n")
	writeTestFile(t, enigmaPath, "CLASS a b\n")

	io := NewMappingIOAdapter(NewLocalMappingFSAdapter())

	result, dialect, err := io.Read(DialectAuto, m.Path(srgPath))
	require.NoError(t, err)
	assert.Equal(t, DialectSRG, dialect)
	assert.Len(t, result.Context.TopLevelClasses(), 1)

	result, dialect, err = io.Read(DialectAuto, m.Path(enigmaPath))
	require.NoError(t, err)
	assert.Equal(t, DialectEnigma, dialect)
	assert.Len(t, result.Context.TopLevelClasses(), 1)

	_, dialect, err = io.Read(DialectAuto, m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, DialectPOMF, dialect)
}

func TestMappingIOAdapter_ReadMissingFile(t *testing.T) {
	io := NewMappingIOAdapter(NewLocalMappingFSAdapter())

	result, _, err := io.Read(DialectEnigma, m.Path(filepath.Join(t.TempDir(), "missing.mapping")))
	require.ErrorIs(t, err, m.ErrStreamFailure)
	assert.Nil(t, result)
}

func TestMappingIOAdapter_POMFMustBeDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.mapping")
	writeTestFile(t, path, "CLASS a\n")

	_, _, err := NewMappingIOAdapter(NewLocalMappingFSAdapter()).Read(DialectPOMF, m.Path(path))
	require.ErrorIs(t, err, m.ErrStreamFailure)
}

func TestPOMFReader_ConcatenatesInTraversalOrder(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.mapping"), "CLASS a Alpha\n\tFIELD f g I") // no trailing newline
	writeTestFile(t, filepath.Join(root, "nested", "b.mapping"), "CLASS b Beta\n\tMETHOD m run ()V\n")
	writeTestFile(t, filepath.Join(root, "c.mapping"), "CLASS a Again\n")

	result, err := NewPOMFReader(NewLocalMappingFSAdapter()).Read(m.Path(root))
	require.NoError(t, err)
	require.Empty(t, result.Skipped)

	ctx := result.Context
	require.Len(t, ctx.TopLevelClasses(), 2)

	a, ok := ctx.TopLevelClass("a")
	require.True(t, ok)
	assert.Equal(t, "Again", ctx.Class(a).DeobfuscatedName(), "c.mapping is read after a.mapping")

	_, ok = ctx.Class(a).Field("f")
	assert.True(t, ok)

	b, ok := ctx.TopLevelClass("b")
	require.True(t, ok)

	_, ok = ctx.Class(b).Method("m")
	assert.True(t, ok)
}

func TestMappingIOAdapter_WriteAndReadBack(t *testing.T) {
	ctx := m.NewContext()
	a := ctx.NewTopLevelClass("a", "Alpha")
	intType := m.NewPrimitiveType(m.Int, 0)
	ctx.NewField(a, "f", "g", &intType)
	z := ctx.NewTopLevelClass("net/z", "")
	ctx.NewMethod(z, "m", "run", m.NewMethodDescriptor(m.NewPrimitiveType(m.Void, 0)))

	root := t.TempDir()
	io := NewMappingIOAdapter(NewLocalMappingFSAdapter())

	for _, dialect := range []Dialect{DialectEnigma, DialectSRG, DialectPOMF} {
		t.Run(dialect.String(), func(t *testing.T) {
			target := m.Path(filepath.Join(root, "out-"+dialect.String()))
			require.NoError(t, io.Write(dialect, target, ctx))

			result, _, err := io.Read(dialect, target)
			require.NoError(t, err)
			require.Empty(t, result.Skipped)

			stats := result.Context.Stats()
			assert.Equal(t, 2, stats.TopLevelClasses)
			assert.Equal(t, 1, stats.Fields)
			assert.Equal(t, 1, stats.Methods)
		})
	}

	_, err := os.Stat(filepath.Join(root, "out-pomf", "net", "z.mapping"))
	assert.NoError(t, err, "pomf export writes one file per top-level class")
}

func TestMappingIOAdapter_WriteTo(t *testing.T) {
	ctx := m.NewContext()
	ctx.NewTopLevelClass("a", "b")

	io := NewMappingIOAdapter(NewLocalMappingFSAdapter())

	var buf bytes.Buffer
	require.NoError(t, io.WriteTo(DialectSRG, &buf, ctx))
	assert.Equal(t, "CL: a b\n", buf.String())

	buf.Reset()
	require.NoError(t, io.WriteTo(DialectPOMF, &buf, ctx))
	assert.Equal(t, "CLASS a b\n", buf.String())

	require.Error(t, io.WriteTo(DialectAuto, &buf, ctx))
}
