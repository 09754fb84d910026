package adapter

import (
	"bufio"
	"fmt"
	"io"

	m "nocturne.dev/pkg/nocturne/internal/model"
)

// SRGWriter exports a context in the SRG dialect. SRG has no field types, so
// field type information is dropped.
type SRGWriter struct{}

// NewSRGWriter returns an SRGWriter.
func NewSRGWriter() *SRGWriter {
	return &SRGWriter{}
}

// Write emits one CL line per class, then FD and MD lines for its members,
// in the same order the Enigma writer uses.
func (s *SRGWriter) Write(w io.Writer, ctx *m.Context) error {
	out := bufio.NewWriter(w)

	err := ctx.Walk(func(entry m.Entry) error {
		var err error

		switch entry.Kind {
		case m.EntryClass:
			_, err = fmt.Fprintf(out, "%s %s %s\n", srgClassTag,
				ctx.FullObfuscatedName(entry.Class.ID()),
				ctx.FullDeobfuscatedName(entry.Class.ID()))
		case m.EntryField:
			owner := entry.Field.Owner()
			_, err = fmt.Fprintf(out, "%s %s/%s %s/%s\n", srgFieldTag,
				ctx.FullObfuscatedName(owner), entry.Field.ObfuscatedName(),
				ctx.FullDeobfuscatedName(owner), entry.Field.DeobfuscatedName())
		case m.EntryMethod:
			owner := entry.Method.Owner()
			_, err = fmt.Fprintf(out, "%s %s/%s %s %s/%s %s\n", srgMethodTag,
				ctx.FullObfuscatedName(owner), entry.Method.ObfuscatedName(),
				entry.Method.ObfuscatedDescriptor(),
				ctx.FullDeobfuscatedName(owner), entry.Method.DeobfuscatedName(),
				entry.Method.DeobfuscatedDescriptor(ctx))
		}

		return err
	})
	if err != nil {
		return err
	}

	return out.Flush()
}
