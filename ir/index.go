package ir

import (
	"sort"

	"github.com/signadot/gdres/token"
)

// Index is the structure built from one document.
type Index struct {
	// BaseName is the document file name given to the parser.
	BaseName string
	// Root is the name of the scene root node, "" when none was declared.
	Root     string
	Symbols  []*Symbol
	Ext      RefTable
	Sub      RefTable
	Strings  []token.Token
	Comments []token.Token
	Source   *token.Source
}

func (x *Index) Table(k RefKind) *RefTable {
	if k == SubResource {
		return &x.Sub
	}
	return &x.Ext
}

// NodePath resolves a node path relative to the scene root: "." is the
// root itself and other paths are prefixed with it.
func (x *Index) NodePath(n string) string {
	if x.Root == "" || n == "" {
		return n
	}
	if n == "." {
		return x.Root
	}
	return x.Root + "/" + n
}

func (x *Index) StringContaining(p token.Pos) *token.Token {
	return containing(x.Strings, p)
}

func (x *Index) CommentContaining(p token.Pos) *token.Token {
	return containing(x.Comments, p)
}

// containing relies on toks being in document order and not overlapping.
func containing(toks []token.Token, p token.Pos) *token.Token {
	i := sort.Search(len(toks), func(i int) bool {
		return !toks[i].Range.End.Before(p)
	})
	if i < len(toks) && toks[i].Range.Contains(p) {
		return &toks[i]
	}
	return nil
}

// SectionAt returns the section whose header is on line.
func (x *Index) SectionAt(line int) *Symbol {
	i := sort.Search(len(x.Symbols), func(i int) bool {
		return x.Symbols[i].Range.Start.Line >= line
	})
	for ; i < len(x.Symbols); i++ {
		s := x.Symbols[i]
		if s.Range.Start.Line != line {
			return nil
		}
		if s.Kind == SectionKind {
			return s
		}
	}
	return nil
}

// Sections returns the top level sections in document order.
func (x *Index) Sections() []*Symbol {
	var res []*Symbol
	for _, s := range x.Symbols {
		if s.Kind == SectionKind {
			res = append(res, s)
		}
	}
	return res
}
