package token

import "fmt"

// Pos is a zero based line and byte column.
type Pos struct {
	Line int `json:"line" yaml:"line"`
	Col  int `json:"col" yaml:"col"`
}

func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line, p.Col)
}

// Range is a span of a document.  Both ends are included by Contains so
// that a cursor resting just after a token still touches it.
type Range struct {
	Start Pos `json:"start" yaml:"start"`
	End   Pos `json:"end" yaml:"end"`
}

func LineRange(line, from, to int) Range {
	return Range{Start: Pos{Line: line, Col: from}, End: Pos{Line: line, Col: to}}
}

func (r Range) Contains(p Pos) bool {
	return !p.Before(r.Start) && !r.End.Before(p)
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Col, r.End.Line, r.End.Col)
}
