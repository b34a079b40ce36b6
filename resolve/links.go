package resolve

import (
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"
)

// Link is a res:// path appearing in a document.
type Link struct {
	Range token.Range `json:"range"`
	Path  string      `json:"path"`
}

// Links returns the res:// paths of idx in document order, skipping those
// inside comments.
func Links(idx *ir.Index) []Link {
	var res []Link
	src := idx.Source
	for i := 0; i < src.NumLines(); i++ {
		line := src.Line(i)
		for _, sp := range token.ResPaths(line) {
			r := token.LineRange(i, sp[0], sp[1])
			if idx.CommentContaining(r.Start) != nil {
				continue
			}
			res = append(res, Link{Range: r, Path: line[sp[0]:sp[1]]})
		}
	}
	return res
}

// Use is an ExtResource( id ) or SubResource( id ) call.  Symbol is nil
// when the id was never declared.
type Use struct {
	Range  token.Range
	Table  ir.RefKind
	ID     int
	Symbol *ir.Symbol
}

// Uses returns the resource calls of idx outside comments and strings.
func Uses(idx *ir.Index) []Use {
	var res []Use
	src := idx.Source
	for i := 0; i < src.NumLines(); i++ {
		for _, c := range calls(src.Line(i)) {
			p := token.Pos{Line: i, Col: c.start}
			if idx.CommentContaining(p) != nil || idx.StringContaining(p) != nil {
				continue
			}
			res = append(res, Use{
				Range:  token.LineRange(i, c.start, c.end),
				Table:  c.kind,
				ID:     c.id,
				Symbol: idx.Table(c.kind).Get(c.id),
			})
		}
	}
	return res
}

// UsesOf returns the uses resolving to the declaring section s.
func UsesOf(idx *ir.Index, s *ir.Symbol) []Use {
	var res []Use
	for _, u := range Uses(idx) {
		if u.Symbol != nil && u.Symbol == s {
			res = append(res, u)
		}
	}
	return res
}
