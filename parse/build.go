package parse

import (
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"
)

// builder owns the open section and property while the document is
// scanned.  Sections are frozen when the next header opens or the scan
// ends.
type builder struct {
	idx     *ir.Index
	section *ir.Symbol
	prop    *ir.Symbol
	group   *ir.Symbol
	// last is the end of the last consumed construct.
	last token.Pos
}

func newBuilder(idx *ir.Index) *builder {
	return &builder{idx: idx}
}

func (b *builder) touch(p token.Pos) {
	b.last = p
}

func (b *builder) openSection(s *ir.Symbol) {
	b.closeSection()
	b.idx.Symbols = append(b.idx.Symbols, s)
	b.section = s
	b.prop, b.group = nil, nil
}

func (b *builder) closeSection() {
	if b.section == nil {
		return
	}
	grow(&b.section.Range, b.last)
	b.section = nil
	b.prop, b.group = nil, nil
}

func (b *builder) finish() {
	b.closeSection()
}

// container is where new properties go: the open section, or the top
// level before any header.
func (b *builder) container() *[]*ir.Symbol {
	if b.section != nil {
		return &b.section.Children
	}
	return &b.idx.Symbols
}

// openProperty starts a property at line.  An indexed key joins the
// key[] array group of its container, created on first use.
func (b *builder) openProperty(a assign, line, lineLen int) {
	lr := token.LineRange(line, 0, lineLen)
	prop := &ir.Symbol{
		Kind:      ir.PropertyKind,
		Name:      a.prop,
		Range:     lr,
		Selection: token.LineRange(line, a.propCol, a.propCol+len(a.prop)),
	}
	dst := b.container()
	b.group = nil
	if a.hasIndex {
		name := a.key + "[]"
		g := findArray(*dst, name)
		if g == nil {
			g = &ir.Symbol{
				Kind:      ir.ArrayKind,
				Name:      name,
				Range:     lr,
				Selection: token.LineRange(line, a.propCol, a.propCol+len(a.key)),
			}
			*dst = append(*dst, g)
		}
		grow(&g.Range, lr.End)
		g.Children = append(g.Children, prop)
		b.group = g
	} else {
		*dst = append(*dst, prop)
	}
	if b.section != nil {
		grow(&b.section.Range, lr.End)
	}
	b.prop = prop
}

// extendValue records a value token spanning start to end.  The open
// property then reaches the end of the token's last line, or exactly end
// when the token continued past its first line.
func (b *builder) extendValue(start, end, lineEnd token.Pos) {
	b.last = end
	if b.prop == nil {
		return
	}
	to := lineEnd
	if end.Line > start.Line {
		to = end
	}
	grow(&b.prop.Range, to)
	if b.group != nil {
		grow(&b.group.Range, to)
	}
}

func findArray(syms []*ir.Symbol, name string) *ir.Symbol {
	for _, s := range syms {
		if s.Kind == ir.ArrayKind && s.Name == name {
			return s
		}
	}
	return nil
}

func grow(r *token.Range, p token.Pos) {
	if r.End.Before(p) {
		r.End = p
	}
}
