package model

// Separators used in qualified names.
const (
	// InnerClassSeparator joins an outer class name to an inner class simple name.
	InnerClassSeparator = '$'
	// ClassPathSeparator joins packages, classes and member names in owner-qualified names.
	ClassPathSeparator = '/'
)

// ClassID addresses a class mapping inside its Context.
type ClassID int

// FieldID addresses a field mapping inside its Context.
type FieldID int

// MethodID addresses a method mapping inside its Context.
type MethodID int

// NoClass is the parent of top-level classes.
const NoClass ClassID = -1

// Mapping is the obfuscated/deobfuscated name pair shared by every mapped entity.
// The obfuscated name is the identity and never changes.
type Mapping struct {
	obfuscated   string
	deobfuscated string
}

func newMapping(obf, deobf string) Mapping {
	if deobf == "" {
		deobf = obf
	}

	return Mapping{obfuscated: obf, deobfuscated: deobf}
}

// ObfuscatedName returns the name as it appears in bytecode.
func (m *Mapping) ObfuscatedName() string {
	return m.obfuscated
}

// DeobfuscatedName returns the human-assigned name.
func (m *Mapping) DeobfuscatedName() string {
	return m.deobfuscated
}

// SetDeobfuscatedName renames the entity. An empty name resets it to the obfuscated name.
func (m *Mapping) SetDeobfuscatedName(name string) {
	if name == "" {
		name = m.obfuscated
	}

	m.deobfuscated = name
}

// IsMapped reports whether the entity carries a custom name.
func (m *Mapping) IsMapped() bool {
	return m.deobfuscated != m.obfuscated
}

// ClassMapping is a top-level or inner class with its members.
type ClassMapping struct {
	Mapping

	id      ClassID
	parent  ClassID
	inner   table[ClassID]
	fields  table[FieldID]
	methods table[MethodID]
}

// ID returns the arena identifier of the class.
func (c *ClassMapping) ID() ClassID {
	return c.id
}

// Parent returns the enclosing class. ok is false for top-level classes.
func (c *ClassMapping) Parent() (ClassID, bool) {
	return c.parent, c.parent != NoClass
}

// IsInner reports whether the class is nested in another class.
func (c *ClassMapping) IsInner() bool {
	return c.parent != NoClass
}

// InnerClasses returns the inner class IDs in insertion order.
func (c *ClassMapping) InnerClasses() []ClassID {
	return c.inner.ids()
}

// Fields returns the field IDs in insertion order.
func (c *ClassMapping) Fields() []FieldID {
	return c.fields.ids()
}

// Methods returns the method IDs in insertion order.
func (c *ClassMapping) Methods() []MethodID {
	return c.methods.ids()
}

// InnerClass looks up a direct inner class by obfuscated simple name.
func (c *ClassMapping) InnerClass(obf string) (ClassID, bool) {
	return c.inner.get(obf)
}

// Field looks up a field by obfuscated name.
func (c *ClassMapping) Field(obf string) (FieldID, bool) {
	return c.fields.get(obf)
}

// Method looks up a method by obfuscated name. Overloads share one slot.
func (c *ClassMapping) Method(obf string) (MethodID, bool) {
	return c.methods.get(obf)
}

// FieldMapping is a field of a class. Type is nil for dialects without field types.
type FieldMapping struct {
	Mapping

	id    FieldID
	owner ClassID
	typ   *Type
}

// ID returns the arena identifier of the field.
func (f *FieldMapping) ID() FieldID {
	return f.id
}

// Owner returns the declaring class.
func (f *FieldMapping) Owner() ClassID {
	return f.owner
}

// Type returns the obfuscated field type, if known.
func (f *FieldMapping) Type() (Type, bool) {
	if f.typ == nil {
		return Type{}, false
	}

	return *f.typ, true
}

// SetType attaches type information to the field.
func (f *FieldMapping) SetType(t Type) {
	f.typ = &t
}

// DeobfuscatedType returns the field type with class references renamed through ctx.
func (f *FieldMapping) DeobfuscatedType(ctx *Context) (Type, bool) {
	t, ok := f.Type()
	if !ok {
		return Type{}, false
	}

	return ctx.DeobfuscateType(t), true
}

// MethodMapping is a method of a class.
type MethodMapping struct {
	Mapping

	id         MethodID
	owner      ClassID
	descriptor MethodDescriptor
}

// ID returns the arena identifier of the method.
func (m *MethodMapping) ID() MethodID {
	return m.id
}

// Owner returns the declaring class.
func (m *MethodMapping) Owner() ClassID {
	return m.owner
}

// ObfuscatedDescriptor returns the descriptor as it appears in bytecode.
func (m *MethodMapping) ObfuscatedDescriptor() MethodDescriptor {
	return m.descriptor
}

// DeobfuscatedDescriptor returns the descriptor with class references renamed through ctx.
func (m *MethodMapping) DeobfuscatedDescriptor(ctx *Context) MethodDescriptor {
	return ctx.DeobfuscateDescriptor(m.descriptor)
}
