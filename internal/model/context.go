package model

import (
	"fmt"
	"strings"
)

// Context is the root of one loaded mapping set. It owns every class, field and
// method mapping; entities refer to each other by ID only.
//
// A Context is not safe for concurrent use. Callers serialize renames, imports
// and exports against one Context.
type Context struct {
	classes  []*ClassMapping
	fields   []*FieldMapping
	methods  []*MethodMapping
	topLevel table[ClassID]
}

// NewContext returns an empty mapping context.
func NewContext() *Context {
	return &Context{topLevel: newTable[ClassID]()}
}

// NewTopLevelClass creates a top-level class and registers it under obf,
// replacing any class previously registered under that name.
func (c *Context) NewTopLevelClass(obf, deobf string) ClassID {
	id := c.newClass(NoClass, obf, deobf)
	c.topLevel.put(obf, id)

	return id
}

// NewInnerClass creates an inner class of parent and registers it under obf,
// replacing any inner class previously registered under that name.
func (c *Context) NewInnerClass(parent ClassID, obf, deobf string) ClassID {
	owner := c.mustClass(parent)
	id := c.newClass(parent, obf, deobf)
	owner.inner.put(obf, id)

	return id
}

// NewField creates a field of owner and registers it under obf. typ may be nil.
func (c *Context) NewField(owner ClassID, obf, deobf string, typ *Type) FieldID {
	cls := c.mustClass(owner)

	id := FieldID(len(c.fields))
	field := &FieldMapping{Mapping: newMapping(obf, deobf), id: id, owner: owner}

	if typ != nil {
		field.SetType(*typ)
	}

	c.fields = append(c.fields, field)
	cls.fields.put(obf, id)

	return id
}

// NewMethod creates a method of owner and registers it under obf. Methods are
// keyed by name alone, so an overload replaces the previous registration.
func (c *Context) NewMethod(owner ClassID, obf, deobf string, desc MethodDescriptor) MethodID {
	cls := c.mustClass(owner)

	id := MethodID(len(c.methods))
	c.methods = append(c.methods, &MethodMapping{
		Mapping:    newMapping(obf, deobf),
		id:         id,
		owner:      owner,
		descriptor: desc,
	})
	cls.methods.put(obf, id)

	return id
}

func (c *Context) newClass(parent ClassID, obf, deobf string) ClassID {
	id := ClassID(len(c.classes))
	c.classes = append(c.classes, &ClassMapping{
		Mapping: newMapping(obf, deobf),
		id:      id,
		parent:  parent,
		inner:   newTable[ClassID](),
		fields:  newTable[FieldID](),
		methods: newTable[MethodID](),
	})

	return id
}

func (c *Context) mustClass(id ClassID) *ClassMapping {
	cls := c.Class(id)
	if cls == nil {
		panic(fmt.Sprintf("model: unknown class id %d", id))
	}

	return cls
}

// Class returns the class with the given ID, or nil.
func (c *Context) Class(id ClassID) *ClassMapping {
	if id < 0 || int(id) >= len(c.classes) {
		return nil
	}

	return c.classes[id]
}

// FieldByID returns the field with the given ID, or nil.
func (c *Context) FieldByID(id FieldID) *FieldMapping {
	if id < 0 || int(id) >= len(c.fields) {
		return nil
	}

	return c.fields[id]
}

// MethodByID returns the method with the given ID, or nil.
func (c *Context) MethodByID(id MethodID) *MethodMapping {
	if id < 0 || int(id) >= len(c.methods) {
		return nil
	}

	return c.methods[id]
}

// TopLevelClasses returns the top-level class IDs in insertion order.
func (c *Context) TopLevelClasses() []ClassID {
	return c.topLevel.ids()
}

// TopLevelClass looks up a top-level class by obfuscated name.
func (c *Context) TopLevelClass(obf string) (ClassID, bool) {
	return c.topLevel.get(obf)
}

// LookupClass resolves a '$'-qualified obfuscated name through the top-level
// table and the inner class chain. Nothing is created.
func (c *Context) LookupClass(qualified string) (ClassID, bool) {
	segments := strings.Split(qualified, string(InnerClassSeparator))

	id, ok := c.topLevel.get(segments[0])
	if !ok {
		return NoClass, false
	}

	for _, segment := range segments[1:] {
		id, ok = c.classes[id].inner.get(segment)
		if !ok {
			return NoClass, false
		}
	}

	return id, true
}

// FullObfuscatedName returns the '$'-joined obfuscated names from the top-level ancestor down to id.
func (c *Context) FullObfuscatedName(id ClassID) string {
	return c.fullName(id, (*ClassMapping).ObfuscatedName)
}

// FullDeobfuscatedName returns the '$'-joined deobfuscated names from the top-level ancestor down to id.
func (c *Context) FullDeobfuscatedName(id ClassID) string {
	return c.fullName(id, (*ClassMapping).DeobfuscatedName)
}

func (c *Context) fullName(id ClassID, name func(*ClassMapping) string) string {
	var chain []string

	for cls := c.Class(id); cls != nil; cls = c.Class(cls.parent) {
		chain = append(chain, name(cls))
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return strings.Join(chain, string(InnerClassSeparator))
}

// DeobfuscateType renames a class reference to the current deobfuscated full
// name of the class it points at. Primitives, unknown classes and names that
// cannot be encoded are returned unchanged.
func (c *Context) DeobfuscateType(t Type) Type {
	if t.IsPrimitive() {
		return t
	}

	id, ok := c.LookupClass(t.className)
	if !ok {
		return t
	}

	renamed, err := NewClassType(c.FullDeobfuscatedName(id), t.dims)
	if err != nil {
		return t
	}

	return renamed
}

// DeobfuscateDescriptor applies DeobfuscateType to every parameter and the return type.
func (c *Context) DeobfuscateDescriptor(d MethodDescriptor) MethodDescriptor {
	params := make([]Type, 0, len(d.Params))
	for _, p := range d.Params {
		params = append(params, c.DeobfuscateType(p))
	}

	return MethodDescriptor{Params: params, Return: c.DeobfuscateType(d.Return)}
}
