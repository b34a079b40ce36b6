package token

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// LexString consumes the string literal whose opening quote is at start.
// It returns the token and the position just past the closing quote.
//
// A line break inside the literal contributes "\n" unless the line ends
// with a backslash, in which case the break is swallowed.  If the
// document ends first the literal is dropped and the returned error wraps
// ErrUnterminated.
func LexString(src *Source, start Pos) (*Token, Pos, error) {
	line := src.Line(start.Line)
	if start.Col >= len(line) || line[start.Col] != '"' {
		return nil, start, NewLexErr(ErrNotString, start)
	}
	b := &strings.Builder{}
	cur := Pos{Line: start.Line, Col: start.Col + 1}
	for {
		i, closed, cont := unescape(b, line, cur.Col, true)
		if closed {
			end := Pos{Line: cur.Line, Col: i}
			return &Token{
				Type:  TString,
				Range: Range{Start: start, End: end},
				Value: b.String(),
			}, end, nil
		}
		if !cont {
			b.WriteByte('\n')
		}
		cur = Pos{Line: cur.Line + 1}
		if cur.Line >= src.NumLines() {
			return nil, src.End(), NewLexErr(ErrUnterminated, start)
		}
		line = src.Line(cur.Line)
	}
}

// Unescape returns s with escape sequences replaced.  Quote characters are
// kept as is.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	b := &strings.Builder{}
	unescape(b, s, 0, false)
	return b.String()
}

// unescape writes the unescaped form of d[i:] to b.  With stop set it
// halts after the first unescaped quote and reports closed.  cont reports
// a backslash ending d.
func unescape(b *strings.Builder, d string, i int, stop bool) (next int, closed, cont bool) {
	n := len(d)
	for i < n {
		c := d[i]
		switch c {
		case '"':
			if stop {
				return i + 1, true, false
			}
			b.WriteByte(c)
			i++
			continue
		case '\\':
		default:
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 == n {
			return n, false, true
		}
		e := d[i+1]
		i += 2
		switch e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			r, ok := hex4(d[i:])
			if !ok {
				b.WriteByte('u')
				continue
			}
			i += 4
			if utf16.IsSurrogate(r) && strings.HasPrefix(d[i:], `\u`) {
				if lo, ok := hex4(d[i+2:]); ok {
					if pair := utf16.DecodeRune(r, lo); pair != unicode.ReplacementChar {
						b.WriteRune(pair)
						i += 6
						continue
					}
				}
			}
			b.WriteRune(r)
		default:
			// \" \\ and anything unknown stand for themselves
			_, sz := utf8.DecodeRuneInString(d[i-1:])
			b.WriteString(d[i-1 : i-1+sz])
			i += sz - 1
		}
	}
	return n, false, false
}

func hex4(d string) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := d[i]
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}
	return r, true
}

// Quote returns v as a double quoted literal that LexString reads back
// as v.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) && r < 0x10000 {
				d = append(d, '\\', 'u', hexDigit(r>>12), hexDigit(r>>8), hexDigit(r>>4), hexDigit(r))
				continue
			}
			d = utf8.AppendRune(d, r)
		}
	}
	return string(append(d, '"'))
}

func hexDigit(r rune) byte {
	return "0123456789abcdef"[r&0xf]
}
