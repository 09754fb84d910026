package model

// EntryKind tells which entity an Entry carries.
type EntryKind int

// Entry kinds.
const (
	EntryClass EntryKind = iota
	EntryField
	EntryMethod
)

// Entry is one node visited by Walk. Exactly one of Class, Field or Method is set.
type Entry struct {
	Kind   EntryKind
	Depth  int
	Class  *ClassMapping
	Field  *FieldMapping
	Method *MethodMapping
}

// WalkFunc is called for every entry; returning an error stops the walk.
type WalkFunc func(entry Entry) error

// Walk visits the tree depth-first in pre-order: each class, then its inner
// classes, then its fields, then its methods, all in insertion order.
func (c *Context) Walk(fn WalkFunc) error {
	for _, id := range c.topLevel.ids() {
		if err := c.walkClass(id, 0, fn); err != nil {
			return err
		}
	}

	return nil
}

func (c *Context) walkClass(id ClassID, depth int, fn WalkFunc) error {
	cls := c.classes[id]
	if err := fn(Entry{Kind: EntryClass, Depth: depth, Class: cls}); err != nil {
		return err
	}

	for _, inner := range cls.inner.ids() {
		if err := c.walkClass(inner, depth+1, fn); err != nil {
			return err
		}
	}

	for _, fid := range cls.fields.ids() {
		if err := fn(Entry{Kind: EntryField, Depth: depth + 1, Field: c.fields[fid]}); err != nil {
			return err
		}
	}

	for _, mid := range cls.methods.ids() {
		if err := fn(Entry{Kind: EntryMethod, Depth: depth + 1, Method: c.methods[mid]}); err != nil {
			return err
		}
	}

	return nil
}

// Stats summarizes the entities reachable from the top-level table.
type Stats struct {
	TopLevelClasses int `yaml:"top_level_classes"`
	InnerClasses    int `yaml:"inner_classes"`
	Fields          int `yaml:"fields"`
	Methods         int `yaml:"methods"`
	Mapped          int `yaml:"mapped"`
}

// Total returns the number of counted entities.
func (s Stats) Total() int {
	return s.TopLevelClasses + s.InnerClasses + s.Fields + s.Methods
}

// Stats counts reachable entities. Entities replaced by a later registration are not counted.
func (c *Context) Stats() Stats {
	var s Stats

	_ = c.Walk(func(e Entry) error {
		var mapping *Mapping

		switch e.Kind {
		case EntryClass:
			if e.Class.IsInner() {
				s.InnerClasses++
			} else {
				s.TopLevelClasses++
			}

			mapping = &e.Class.Mapping
		case EntryField:
			s.Fields++
			mapping = &e.Field.Mapping
		case EntryMethod:
			s.Methods++
			mapping = &e.Method.Mapping
		}

		if mapping.IsMapped() {
			s.Mapped++
		}

		return nil
	})

	return s
}
