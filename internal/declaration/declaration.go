// Package declaration holds the in-memory model of the type declarations
// flowing through the generator: the extracted IntrinsicElements table,
// the attribute interfaces pulled from the React declarations, and the
// type aliases carried over verbatim.
package declaration

import "github.com/elliotchance/orderedmap/v3"

// Property is one property signature of an interface.
type Property struct {
	Name     string
	Type     string
	Optional bool
}

// HeritageRef is one extends clause of an interface: the parent name and
// the original type-argument text, if any. Normalization discards Args.
type HeritageRef struct {
	Name string
	Args string
}

// Interface is an interface declaration. Generic type parameters are
// stripped when the AST is converted into this model and never reappear.
type Interface struct {
	Name       string
	Extends    []HeritageRef
	Properties []Property
}

// Clone returns a deep copy, so edits to the original never leak into
// the emitted declarations.
func (i *Interface) Clone() *Interface {
	c := &Interface{Name: i.Name}
	c.Extends = append([]HeritageRef(nil), i.Extends...)
	c.Properties = append([]Property(nil), i.Properties...)
	return c
}

// TypeAlias is a type-alias declaration, kept as verbatim source text.
type TypeAlias struct {
	Name string
	Text string
}

// Decl is either an *Interface or a *TypeAlias.
type Decl interface {
	DeclName() string
}

func (i *Interface) DeclName() string { return i.Name }
func (t *TypeAlias) DeclName() string { return t.Name }

// NameSet is a deduplicated set of identifiers that preserves insertion
// order, so every run filters and emits declarations in the same order.
type NameSet struct {
	m *orderedmap.OrderedMap[string, struct{}]
}

func NewNameSet(names ...string) *NameSet {
	s := &NameSet{m: orderedmap.NewOrderedMap[string, struct{}]()}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

func (s *NameSet) Add(name string) {
	s.m.Set(name, struct{}{})
}

func (s *NameSet) Has(name string) bool {
	_, ok := s.m.Get(name)
	return ok
}

func (s *NameSet) Len() int {
	return s.m.Len()
}

// Names returns the members in insertion order.
func (s *NameSet) Names() []string {
	names := make([]string, 0, s.m.Len())
	for name := range s.m.Keys() {
		names = append(names, name)
	}
	return names
}
