package adapter

import (
	"io"
	"strings"

	"nocturne.dev/pkg/nocturne/internal/merge"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

const (
	enigmaIndent    = '\t'
	enigmaClassKey  = "CLASS"
	enigmaFieldKey  = "FIELD"
	enigmaMethodKey = "METHOD"
	enigmaArgKey    = "ARG"
)

// EnigmaReader imports Enigma mappings, a tab-indented tree:
//
//	CLASS a net/example/Foo
//		CLASS b Inner
//		FIELD c count I
//		METHOD d run (I)V
type EnigmaReader struct {
	source m.Path
}

// NewEnigmaReader returns a reader; source only labels diagnostics.
func NewEnigmaReader(source m.Path) *EnigmaReader {
	return &EnigmaReader{source: source}
}

// enigmaScope tracks the enclosing classes of the line being read.
type enigmaScope struct {
	classes     []m.ClassID // classes[k] is the open class at depth k
	methodDepth int         // depth of the last METHOD line, -1 if none
}

// Read parses r into a fresh context. Lines that do not parse are skipped
// and reported; a failing stream aborts the read.
func (e *EnigmaReader) Read(r io.Reader) (*m.ReadResult, error) {
	ctx := m.NewContext()
	skips := &skipLog{source: e.source, dialect: DialectEnigma}
	scope := &enigmaScope{methodDepth: -1}

	err := scanLines(r, func(lineNo int, line string) {
		if err := e.readLine(ctx, scope, line); err != nil {
			skips.skip(lineNo, line, err)
		}
	})
	if err != nil {
		return nil, err
	}

	return &m.ReadResult{Context: ctx, Skipped: skips.skipped}, nil
}

func (e *EnigmaReader) readLine(ctx *m.Context, scope *enigmaScope, line string) error {
	depth := indentDepth(line)

	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	key, args := fields[0], fields[1:]

	switch key {
	case enigmaClassKey:
		return e.readClass(ctx, scope, depth, args)
	case enigmaFieldKey:
		return e.readField(ctx, scope, depth, args)
	case enigmaMethodKey:
		return e.readMethod(ctx, scope, depth, args)
	case enigmaArgKey:
		if scope.methodDepth < 0 || depth != scope.methodDepth+1 {
			return unparseable("%s outside of a method", key)
		}

		return nil
	}

	return unparseable("unknown keyword %q", key)
}

func (e *EnigmaReader) readClass(ctx *m.Context, scope *enigmaScope, depth int, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return unparseable("%s expects 1 or 2 fields, got %d", enigmaClassKey, len(args))
	}

	if depth > len(scope.classes) {
		return unparseable("%s at depth %d has no enclosing class", enigmaClassKey, depth)
	}

	obf := args[0]
	deobf := obf

	if len(args) == 2 {
		deobf = args[1]
	}

	scope.classes = scope.classes[:depth]
	scope.methodDepth = -1

	if depth == 0 {
		id, err := merge.GenClassMapping(ctx, obf, deobf)
		if err != nil {
			return err
		}

		scope.classes = append(scope.classes, id)

		return nil
	}

	parent := scope.classes[depth-1]

	if i := strings.LastIndexByte(obf, m.InnerClassSeparator); i >= 0 {
		if outer := obf[:i]; outer != ctx.FullObfuscatedName(parent) {
			return unparseable("inner class %s is not nested in %s", obf, ctx.FullObfuscatedName(parent))
		}
	}

	id := merge.UpsertInnerClass(ctx, parent, simpleClassName(obf), simpleClassName(deobf))
	scope.classes = append(scope.classes, id)

	return nil
}

func (e *EnigmaReader) readField(ctx *m.Context, scope *enigmaScope, depth int, args []string) error {
	owner, err := scope.member(enigmaFieldKey, depth)
	if err != nil {
		return err
	}

	var obf, deobf, desc string

	switch len(args) {
	case 3:
		obf, deobf, desc = args[0], args[1], args[2]
	case 2:
		// "FIELD obf type" for identity fields, "FIELD obf deobf" for untyped renames.
		if _, typeErr := m.ParseType(args[1]); typeErr == nil {
			obf, deobf, desc = args[0], args[0], args[1]
		} else {
			obf, deobf = args[0], args[1]
		}
	default:
		return unparseable("%s expects 2 or 3 fields, got %d", enigmaFieldKey, len(args))
	}

	var typ *m.Type

	if desc != "" {
		parsed, err := m.ParseType(desc)
		if err != nil {
			return err
		}

		typ = &parsed
	}

	merge.UpsertField(ctx, owner, obf, deobf, typ)
	scope.classes = scope.classes[:depth]
	scope.methodDepth = -1

	return nil
}

func (e *EnigmaReader) readMethod(ctx *m.Context, scope *enigmaScope, depth int, args []string) error {
	owner, err := scope.member(enigmaMethodKey, depth)
	if err != nil {
		return err
	}

	var obf, deobf, desc string

	switch len(args) {
	case 2:
		obf, deobf, desc = args[0], args[0], args[1]
	case 3:
		obf, deobf, desc = args[0], args[1], args[2]
	default:
		return unparseable("%s expects 2 or 3 fields, got %d", enigmaMethodKey, len(args))
	}

	parsed, err := m.ParseMethodDescriptor(desc)
	if err != nil {
		return err
	}

	merge.UpsertMethod(ctx, owner, obf, deobf, parsed)
	scope.classes = scope.classes[:depth]
	scope.methodDepth = depth

	return nil
}

// member returns the class owning a member line at depth.
func (s *enigmaScope) member(key string, depth int) (m.ClassID, error) {
	if depth < 1 || depth > len(s.classes) {
		return m.NoClass, unparseable("%s at depth %d has no enclosing class", key, depth)
	}

	return s.classes[depth-1], nil
}

func indentDepth(line string) int {
	depth := 0
	for depth < len(line) && line[depth] == enigmaIndent {
		depth++
	}

	return depth
}

func simpleClassName(name string) string {
	return name[strings.LastIndexByte(name, m.InnerClassSeparator)+1:]
}
