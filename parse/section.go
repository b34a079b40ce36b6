package parse

import (
	"strconv"
	"strings"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"
)

// sectionSymbol derives the outline entry of a header on line and
// registers resource ids.
func (p *parser) sectionSymbol(h header, line int, text string) *ir.Symbol {
	lr := token.LineRange(line, 0, len(text))
	attrs := parseAttrs(h.attrs, h.attrCol)
	s := &ir.Symbol{
		Kind:      ir.SectionKind,
		Name:      h.tag,
		Detail:    h.attrs,
		Tag:       h.tag,
		Range:     lr,
		Selection: lr,
	}
	idx := p.idx
	switch h.tag {
	case "gd_scene":
		s.Name = orTag(sceneName(idx.BaseName), h.tag)
		s.Detail = "PackedScene"
	case "gd_resource":
		s.Name = orTag(fileName(idx.BaseName), h.tag)
		s.Detail = attrs.StrOr("type", "")
	case "ext_resource", "sub_resource":
		s.Name = attrs.StrOr("path", h.tag)
		s.Detail = attrs.StrOr("type", "")
		if v, ok := attrs["path"]; ok {
			s.Selection = token.LineRange(line, v.Col, v.End)
		}
		if id, ok := attrs.Int("id"); ok && id > 0 && id <= maxID {
			s.ID = int(id)
			kind := ir.ExtResource
			if h.tag == "sub_resource" {
				kind = ir.SubResource
			}
			if prev := idx.Table(kind).Get(s.ID); prev != nil && debug.Parse() {
				debug.Logf("%s: %s id %d redeclared on line %d\n", idx.BaseName, kind, s.ID, line)
			}
			idx.Table(kind).Set(s.ID, s)
		}
	case "node":
		name, hasName := attrs.Str("name")
		parent, hasParent := attrs.Str("parent")
		switch {
		case !hasParent:
			idx.Root = name
			s.Name = orTag(name, h.tag)
		case !hasName:
			s.Name = idx.NodePath(parent) + "/" + h.tag
		default:
			s.Name = idx.NodePath(parent) + "/" + name
		}
		s.Detail = attrs.StrOr("type", "")
	case "connection":
		from, okF := attrs.Str("from")
		to, okT := attrs.Str("to")
		method, okM := attrs.Str("method")
		if okF && okT && okM && from != "" && to != "" && method != "" {
			s.Name = idx.NodePath(from) + "→" + idx.NodePath(to) + "::" + method
		}
		s.Detail = attrs.StrOr("signal", "")
	}
	if debug.Parse() {
		debug.Logf("section %q %q at %s\n", s.Name, s.Detail, lr)
	}
	return s
}

const maxID = 1<<31 - 1

func orTag(v, tag string) string {
	if v == "" {
		return tag
	}
	return v
}

// fileName is the last element of a slash or backslash separated path.
func fileName(p string) string {
	return p[strings.LastIndexAny(p, `/\`)+1:]
}

// sceneName is the file name with its extension removed.
func sceneName(p string) string {
	n := fileName(p)
	if i := strings.LastIndexByte(n, '.'); i >= 0 {
		return n[:i]
	}
	return n
}

// parseAttrs scans header attribute text for key=digits and key="text"
// assignments.  col is the column of text on its line.  Quoted values are
// unescaped; anything not shaped like an assignment is skipped.
func parseAttrs(text string, col int) ir.Attrs {
	attrs := ir.Attrs{}
	i := 0
	for i < len(text) {
		if !isWordByte(text[i]) || (i > 0 && isWordByte(text[i-1])) {
			i++
			continue
		}
		k := i
		for k < len(text) && (isWordByte(text[k]) || text[k] == '-') {
			k++
		}
		for k > i && text[k-1] == '-' {
			k--
		}
		key := text[i:k]
		j := token.SkipBlanks(text, k)
		if j == len(text) || text[j] != '=' {
			i = k
			continue
		}
		j = token.SkipBlanks(text, j+1)
		switch {
		case j < len(text) && isDigit(text[j]):
			e := j
			for e < len(text) && isDigit(text[e]) {
				e++
			}
			v := ir.Value{Str: text[j:e], Col: col + j, End: col + e}
			if n, err := strconv.ParseInt(v.Str, 10, 64); err == nil {
				v.Num, v.IsNum = n, true
			}
			attrs[key] = v
			i = e
		case j < len(text) && text[j] == '"':
			e := closingQuote(text, j+1)
			if e < 0 {
				i = k
				continue
			}
			attrs[key] = ir.Value{
				Str: token.Unescape(text[j+1 : e]),
				Col: col + j + 1,
				End: col + e,
			}
			i = e + 1
		default:
			i = k
		}
	}
	return attrs
}

// closingQuote returns the index of the first unescaped '"' at or after i,
// or -1.
func closingQuote(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case '"':
			return i
		case '\\':
			i++
		}
		i++
	}
	return -1
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
