package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/gdres/token"
)

// matchTail reports whether rest holds only blanks and an optional ';' or
// '#' comment.  at is the offset of the comment in rest, or -1.
func matchTail(rest string) (at int, ok bool) {
	i := token.SkipBlanks(rest, 0)
	if i == len(rest) {
		return -1, true
	}
	if isCommentStart(rest[i]) {
		return i, true
	}
	return -1, false
}

func isCommentStart(c byte) bool {
	return c == ';' || c == '#'
}

type header struct {
	tag string
	// attrs is the raw attribute text and attrCol its column.
	attrs   string
	attrCol int
	// comment is the column of a trailing comment, or -1.
	comment int
}

// matchHeader matches a section header line:
//
//	[tag attr=value ...]  ; comment
//
// The header closes at the first ']' followed only by blanks and an
// optional comment.  The tag is the whole bracketed text when it consists
// of words and quoted words only, otherwise its leading run of non blank,
// non bracket bytes.
func matchHeader(line string) (header, bool) {
	h := header{comment: -1}
	if len(line) == 0 || line[0] != '[' {
		return h, false
	}
	closeAt := -1
	for i := 1; i < len(line); i++ {
		if line[i] != ']' {
			continue
		}
		j := token.SkipBlanks(line, i+1)
		if j == len(line) {
			closeAt = i
			break
		}
		if isCommentStart(line[j]) {
			closeAt = i
			h.comment = j
			break
		}
	}
	if closeAt < 0 {
		return h, false
	}
	lead := token.SkipBlanks(line, 1)
	if lead >= closeAt {
		return h, false
	}
	body := token.TrimBlanks(line[lead:closeAt])
	if wordsOnly(body) {
		h.tag = body
		h.attrCol = lead + len(body)
		return h, true
	}
	k := 0
	for k < len(body) && body[k] != '[' && body[k] != ']' && !token.IsBlank(body[k]) {
		k++
	}
	if k == 0 {
		return h, false
	}
	h.tag = body[:k]
	rest := body[k:]
	h.attrs = strings.TrimLeft(rest, " \t\v\f\r")
	h.attrCol = lead + k + len(rest) - len(h.attrs)
	return h, true
}

// wordsOnly reports whether body is a word followed by blank separated
// words or quoted words without escapes.
func wordsOnly(body string) bool {
	i := wordEnd(body, 0)
	if i == 0 {
		return false
	}
	for i < len(body) {
		j := token.SkipBlanks(body, i)
		if j == i || j == len(body) {
			return false
		}
		if body[j] == '"' {
			k := j + 1
			for k < len(body) && body[k] != '"' && body[k] != '\\' {
				k++
			}
			if k == len(body) || body[k] != '"' {
				return false
			}
			i = k + 1
			continue
		}
		k := wordEnd(body, j)
		if k == j {
			return false
		}
		i = k
	}
	return true
}

// wordEnd returns the end of the run of letters, digits, '_' and '-'
// starting at i.
func wordEnd(d string, i int) int {
	for i < len(d) {
		r, sz := utf8.DecodeRuneInString(d[i:])
		if !isKeyRune(r) {
			break
		}
		i += sz
	}
	return i
}

func isKeyRune(r rune) bool {
	return r == '-' || r == '_' || unicode.IsLetter(r) || (r >= '0' && r <= '9')
}

type assign struct {
	// prop is the assigned key including any index, as written.
	prop     string
	key      string
	index    string
	hasIndex bool
	// propCol is the column of prop and end the column just past '='.
	propCol int
	end     int
}

// matchAssign matches the start of a property assignment:
//
//	key[.subkey|/subkey]* [index] =
func matchAssign(line string) (assign, bool) {
	a := assign{}
	i := token.SkipBlanks(line, 0)
	a.propCol = i
	k := wordEnd(line, i)
	if k == i {
		return a, false
	}
	for k < len(line) && (line[k] == '.' || line[k] == '/') {
		w := wordEnd(line, k+1)
		if w == k+1 {
			break
		}
		k = w
	}
	a.key = line[i:k]
	propEnd := k
	j := token.SkipBlanks(line, k)
	if j < len(line) && line[j] == '[' {
		x := j + 1
		for x < len(line) && isIndexByte(line[x]) {
			x++
		}
		if x == j+1 || x == len(line) || line[x] != ']' {
			return a, false
		}
		a.index = line[j+1 : x]
		a.hasIndex = true
		propEnd = x + 1
		j = token.SkipBlanks(line, propEnd)
	}
	if j == len(line) || line[j] != '=' {
		return a, false
	}
	a.prop = line[i:propEnd]
	a.end = j + 1
	return a, true
}

func isIndexByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte(`_\/.:!@$%+-`, c) >= 0
}
