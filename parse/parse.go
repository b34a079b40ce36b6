package parse

import (
	"os"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"
)

// Parse returns the structural index of text.  baseName is the document
// file name, or a path ending in it, and is used to name gd_scene and
// gd_resource sections.
func Parse(text, baseName string) *ir.Index {
	p := newParser(text, baseName)
	p.run()
	if debug.Parse() {
		debug.Logf("parse %s: %d sections\n", baseName, len(p.idx.Sections()))
		token.PrintTokens(os.Stderr, p.idx.Strings, "string")
		token.PrintTokens(os.Stderr, p.idx.Comments, "comment")
	}
	return p.idx
}

type parser struct {
	src *token.Source
	idx *ir.Index
	b   *builder
}

func newParser(text, baseName string) *parser {
	src := token.NewSource(text)
	idx := &ir.Index{BaseName: baseName, Source: src}
	return &parser{src: src, idx: idx, b: newBuilder(idx)}
}

func (p *parser) run() {
	defer p.b.finish()
	cur := token.Pos{}
	n := p.src.NumLines()
	for cur.Line < n {
		next, ok := p.step(cur)
		if !ok {
			return
		}
		cur = next
	}
}

// step consumes one construct at cur and returns the advanced cursor.
// It reports false when the document ended inside a string literal.
func (p *parser) step(cur token.Pos) (token.Pos, bool) {
	line := p.src.Line(cur.Line)
	lineEnd := p.src.LineEnd(cur.Line)
	nextLine := token.Pos{Line: cur.Line + 1}

	if at, ok := matchTail(line[cur.Col:]); ok {
		if at >= 0 {
			p.comment(cur.Line, cur.Col+at)
		}
		p.b.touch(lineEnd)
		return nextLine, true
	}
	if cur.Col == 0 {
		if h, ok := matchHeader(line); ok {
			p.b.openSection(p.sectionSymbol(h, cur.Line, line))
			if h.comment >= 0 {
				p.comment(cur.Line, h.comment)
			}
			p.b.touch(lineEnd)
			return nextLine, true
		}
		if a, ok := matchAssign(line); ok {
			p.b.openProperty(a, cur.Line, len(line))
			cur.Col = a.end
			p.b.touch(cur)
			return cur, true
		}
	}

	start := cur
	switch c := line[cur.Col]; {
	case c == '"':
		tok, end, err := token.LexString(p.src, cur)
		if err != nil {
			if debug.Parse() {
				debug.Logf("parse %s: %v\n", p.idx.BaseName, err)
			}
			return end, false
		}
		p.idx.Strings = append(p.idx.Strings, *tok)
		cur = end
	case token.IsBlank(c):
		cur.Col = token.SkipBlanks(line, cur.Col)
	default:
		cur.Col = valueEnd(line, cur.Col)
	}
	p.b.extendValue(start, cur, p.src.LineEnd(cur.Line))
	return cur, true
}

func (p *parser) comment(line, col int) {
	text := p.src.Line(line)
	p.idx.Comments = append(p.idx.Comments, token.Token{
		Type:  token.TComment,
		Range: token.LineRange(line, col, len(text)),
		Value: text[col:],
	})
}

// valueEnd returns the end of the run of non blank, non quote bytes
// starting at i.
func valueEnd(line string, i int) int {
	for i < len(line) && line[i] != '"' && !token.IsBlank(line[i]) {
		i++
	}
	return i
}
