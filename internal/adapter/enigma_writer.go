package adapter

import (
	"bufio"
	"io"
	"strings"

	m "nocturne.dev/pkg/nocturne/internal/model"
)

// EnigmaWriter exports a context in the Enigma dialect.
type EnigmaWriter struct{}

// NewEnigmaWriter returns an EnigmaWriter.
func NewEnigmaWriter() *EnigmaWriter {
	return &EnigmaWriter{}
}

// Write serializes ctx depth-first: each class, its inner classes, its fields,
// then its methods, all in insertion order, one tab per nesting level.
func (e *EnigmaWriter) Write(w io.Writer, ctx *m.Context) error {
	out := bufio.NewWriter(w)

	err := ctx.Walk(func(entry m.Entry) error {
		_, err := out.WriteString(enigmaLine(entry))
		return err
	})
	if err != nil {
		return err
	}

	return out.Flush()
}

// WriteClass serializes one top-level class and everything nested in it.
func (e *EnigmaWriter) WriteClass(w io.Writer, ctx *m.Context, id m.ClassID) error {
	out := bufio.NewWriter(w)
	target := ctx.Class(id)
	inside := false

	err := ctx.Walk(func(entry m.Entry) error {
		if entry.Kind == m.EntryClass && entry.Depth == 0 {
			inside = entry.Class == target
		}

		if !inside {
			return nil
		}

		_, err := out.WriteString(enigmaLine(entry))

		return err
	})
	if err != nil {
		return err
	}

	return out.Flush()
}

func enigmaLine(entry m.Entry) string {
	var b strings.Builder

	for range entry.Depth {
		b.WriteByte(enigmaIndent)
	}

	switch entry.Kind {
	case m.EntryClass:
		b.WriteString(enigmaClassKey)
		b.WriteByte(' ')
		b.WriteString(entry.Class.ObfuscatedName())

		if entry.Class.IsMapped() {
			b.WriteByte(' ')
			b.WriteString(entry.Class.DeobfuscatedName())
		}
	case m.EntryField:
		b.WriteString(enigmaFieldKey)
		b.WriteByte(' ')
		b.WriteString(entry.Field.ObfuscatedName())
		b.WriteByte(' ')
		b.WriteString(entry.Field.DeobfuscatedName())

		if typ, ok := entry.Field.Type(); ok {
			b.WriteByte(' ')
			b.WriteString(typ.String())
		}
	case m.EntryMethod:
		b.WriteString(enigmaMethodKey)
		b.WriteByte(' ')
		b.WriteString(entry.Method.ObfuscatedName())

		if entry.Method.IsMapped() {
			b.WriteByte(' ')
			b.WriteString(entry.Method.DeobfuscatedName())
		}

		b.WriteByte(' ')
		b.WriteString(entry.Method.ObfuscatedDescriptor().String())
	}

	b.WriteByte('\n')

	return b.String()
}
