package resolve

import (
	"strings"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"
)

// Resolve returns what the text at pos refers to, or nil.  Positions
// inside comments never resolve.
func Resolve(idx *ir.Index, pos token.Pos) *Reference {
	ref := resolve(idx, pos)
	if debug.Resolve() {
		if ref == nil {
			debug.Logf("resolve %s: none\n", pos)
		} else {
			debug.Logf("resolve %s: %s\n", pos, ref)
		}
	}
	return ref
}

func resolve(idx *ir.Index, pos token.Pos) *Reference {
	if idx == nil || idx.Source == nil {
		return nil
	}
	if pos.Line < 0 || pos.Line >= idx.Source.NumLines() {
		return nil
	}
	line := idx.Source.Line(pos.Line)
	if pos.Col < 0 || pos.Col > len(line) {
		return nil
	}
	if idx.CommentContaining(pos) != nil {
		return nil
	}
	sec := idx.SectionAt(pos.Line)
	if ref := pathRef(line, pos, sec); ref != nil {
		return ref
	}
	if c, ok := callAt(line, pos.Col); ok {
		if idx.StringContaining(pos) != nil {
			return nil
		}
		s := idx.Table(c.kind).Get(c.id)
		if s == nil {
			return nil
		}
		return &Reference{
			Kind:   Declared,
			Word:   token.LineRange(pos.Line, c.start, c.end),
			Table:  c.kind,
			ID:     c.id,
			Type:   s.Detail,
			Symbol: s,
		}
	}
	if sec != nil {
		return tagRef(line, pos, sec)
	}
	return nil
}

// pathRef resolves a res:// path at pos, or the path value of the
// ext_resource header on pos's line.
func pathRef(line string, pos token.Pos, sec *ir.Symbol) *Reference {
	isExt := sec != nil && sec.Tag == ir.ExtResource.Tag()
	if start, end, ok := token.ResPathAt(line, pos.Col); ok {
		ref := &Reference{
			Kind: External,
			Word: token.LineRange(pos.Line, start, end),
			Path: line[start:end],
		}
		if isExt && sec.Selection.Contains(ref.Word.Start) {
			ref.Type = sec.Detail
			ref.Symbol = sec
		}
		return ref
	}
	if isExt && sec.Selection != sec.Range && sec.Selection.Contains(pos) {
		return &Reference{
			Kind:   External,
			Word:   sec.Selection,
			Path:   sec.Name,
			Type:   sec.Detail,
			Symbol: sec,
		}
	}
	return nil
}

// tagRef resolves the tag word of the header on pos's line.
func tagRef(line string, pos token.Pos, sec *ir.Symbol) *Reference {
	start, end, ok := token.WordAt(line, pos.Col)
	if !ok || line[start:end] != sec.Tag {
		return nil
	}
	word := token.LineRange(pos.Line, start, end)
	switch sec.Tag {
	case "ext_resource":
		if sec.Selection == sec.Range {
			return nil
		}
		return &Reference{Kind: External, Word: word, Path: sec.Name, Type: sec.Detail, Symbol: sec}
	case "gd_scene", "gd_resource", "sub_resource":
		return &Reference{Kind: Self, Word: word, Tag: sec.Tag, Type: sec.Detail, ID: sec.ID, Symbol: sec}
	}
	return nil
}

type call struct {
	kind       ir.RefKind
	id         int
	start, end int
}

// calls returns the ExtResource( id ) and SubResource( id ) calls on line.
func calls(line string) []call {
	var res []call
	for off := 0; off < len(line); {
		i := strings.Index(line[off:], "Resource")
		if i < 0 {
			break
		}
		i += off
		off = i + len("Resource")
		var kind ir.RefKind
		switch {
		case i >= 3 && line[i-3:i] == "Ext":
			kind = ir.ExtResource
		case i >= 3 && line[i-3:i] == "Sub":
			kind = ir.SubResource
		default:
			continue
		}
		start := i - 3
		if start > 0 && isIdentByte(line[start-1]) {
			continue
		}
		id, end, ok := callArgs(line, off)
		if !ok {
			continue
		}
		res = append(res, call{kind: kind, id: id, start: start, end: end})
		off = end
	}
	return res
}

// callArgs matches `\s*\(\s*digits\s*\)` at i.
func callArgs(line string, i int) (id, end int, ok bool) {
	i = token.SkipBlanks(line, i)
	if i == len(line) || line[i] != '(' {
		return 0, 0, false
	}
	i = token.SkipBlanks(line, i+1)
	d := i
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		if id > 1<<31/10 {
			return 0, 0, false
		}
		id = id*10 + int(line[i]-'0')
		i++
	}
	if i == d {
		return 0, 0, false
	}
	i = token.SkipBlanks(line, i)
	if i == len(line) || line[i] != ')' {
		return 0, 0, false
	}
	return id, i + 1, true
}

func callAt(line string, col int) (call, bool) {
	for _, c := range calls(line) {
		if c.start <= col && col <= c.end {
			return c, true
		}
	}
	return call{}, false
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
