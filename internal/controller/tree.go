package controller

import (
	"fmt"
	"strings"

	m "nocturne.dev/pkg/nocturne/internal/model"
)

const treeIndent = "  "

// RenderTree renders a mapping set as an indented tree, one entry per line.
// Mapped entries read "obf -> deobf"; identity entries show the obfuscated name only.
func RenderTree(mappings *m.Context) string {
	return strings.Join(treeLines(mappings, plainStyle), "\n")
}

type styleFunc func(string) string

func plainStyle(s string) string {
	return s
}

func treeLines(mappings *m.Context, deobf styleFunc) []string {
	var lines []string

	_ = mappings.Walk(func(entry m.Entry) error {
		indent := strings.Repeat(treeIndent, entry.Depth)

		switch entry.Kind {
		case m.EntryClass:
			lines = append(lines, indent+"class "+renamed(&entry.Class.Mapping, deobf))
		case m.EntryField:
			line := indent + "field " + renamed(&entry.Field.Mapping, deobf)
			if typ, ok := entry.Field.Type(); ok {
				line += " : " + typ.String()
			}

			lines = append(lines, line)
		case m.EntryMethod:
			lines = append(lines, fmt.Sprintf("%smethod %s %s",
				indent, renamed(&entry.Method.Mapping, deobf), entry.Method.ObfuscatedDescriptor()))
		}

		return nil
	})

	return lines
}

func renamed(mapping *m.Mapping, deobf styleFunc) string {
	if !mapping.IsMapped() {
		return mapping.ObfuscatedName()
	}

	return mapping.ObfuscatedName() + " -> " + deobf(mapping.DeobfuscatedName())
}
