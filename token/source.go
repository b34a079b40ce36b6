package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Source is a document split into lines.  Line terminators ("\n", with an
// optional preceding "\r") are not part of any line.
type Source struct {
	lines []string
}

func NewSource(text string) *Source {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return &Source{lines: lines}
}

func (s *Source) NumLines() int {
	return len(s.lines)
}

// Line returns line i, or "" when i is out of range.
func (s *Source) Line(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return s.lines[i]
}

func (s *Source) LineEnd(i int) Pos {
	return Pos{Line: i, Col: len(s.Line(i))}
}

func (s *Source) End() Pos {
	return s.LineEnd(len(s.lines) - 1)
}

// Text returns the text covered by r, joining lines with "\n".
func (s *Source) Text(r Range) string {
	r.Start = s.clamp(r.Start)
	r.End = s.clamp(r.End)
	if r.End.Before(r.Start) {
		return ""
	}
	if r.Start.Line == r.End.Line {
		return s.lines[r.Start.Line][r.Start.Col:r.End.Col]
	}
	b := &strings.Builder{}
	b.WriteString(s.lines[r.Start.Line][r.Start.Col:])
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		b.WriteByte('\n')
		b.WriteString(s.lines[i])
	}
	b.WriteByte('\n')
	b.WriteString(s.lines[r.End.Line][:r.End.Col])
	return b.String()
}

func (s *Source) clamp(p Pos) Pos {
	switch {
	case p.Line < 0:
		return Pos{}
	case p.Line >= len(s.lines):
		return s.End()
	}
	p.Col = max(0, min(p.Col, len(s.lines[p.Line])))
	return p
}

// UTF16Col converts the byte column of p to UTF-16 code units, the unit
// editors speaking the language server protocol count in.
func (s *Source) UTF16Col(p Pos) int {
	p = s.clamp(p)
	n := 0
	for _, r := range s.lines[p.Line][:p.Col] {
		n += utf16.RuneLen(r)
	}
	return n
}

// FromUTF16 converts a line and UTF-16 column to a byte position.
func (s *Source) FromUTF16(line, col int) Pos {
	p := s.clamp(Pos{Line: line})
	ln := s.lines[p.Line]
	units := 0
	i := 0
	for i < len(ln) && units < col {
		r, sz := utf8.DecodeRuneInString(ln[i:])
		units += utf16.RuneLen(r)
		i += sz
	}
	p.Col = i
	return p
}
