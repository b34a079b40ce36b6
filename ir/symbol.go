package ir

import "github.com/signadot/gdres/token"

// Symbol is an outline node.  Sections own their properties and array
// groups; array groups own the indexed properties sharing their key.
type Symbol struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Name   string `json:"name" yaml:"name"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
	// Tag is the header tag of a section.
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`
	// ID is the numeric id attribute of a section, 0 when absent.
	ID        int         `json:"id,omitempty" yaml:"id,omitempty"`
	Range     token.Range `json:"range" yaml:"range"`
	Selection token.Range `json:"selection" yaml:"selection"`
	Children  []*Symbol   `json:"children,omitempty" yaml:"children,omitempty"`
}

// Child returns the first direct child named name.
func (s *Symbol) Child(name string) *Symbol {
	for _, c := range s.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits syms depth first in document order.  Returning false from f
// skips the children of the visited symbol.
func Walk(syms []*Symbol, f func(s *Symbol, depth int) bool) {
	walk(syms, 0, f)
}

func walk(syms []*Symbol, depth int, f func(*Symbol, int) bool) {
	for _, s := range syms {
		if f(s, depth) {
			walk(s.Children, depth+1, f)
		}
	}
}
