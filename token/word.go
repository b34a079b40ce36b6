package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const ResScheme = "res://"

func IsBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

// SkipBlanks returns the index of the first non blank byte of d at or
// after i.
func SkipBlanks(d string, i int) int {
	for i < len(d) && IsBlank(d[i]) {
		i++
	}
	return i
}

func TrimBlanks(d string) string {
	return strings.Trim(d, " \t\v\f\r")
}

// IsWordRune reports letters, decimal digits and '_'.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || (r >= '0' && r <= '9')
}

// WordAt returns the span [start, end) of the word touching column col of
// line.  A column just after the last rune of a word touches it.
func WordAt(line string, col int) (start, end int, ok bool) {
	if col < 0 || col > len(line) {
		return 0, 0, false
	}
	start, end = col, col
	for start > 0 {
		r, sz := utf8.DecodeLastRuneInString(line[:start])
		if !IsWordRune(r) {
			break
		}
		start -= sz
	}
	for end < len(line) {
		r, sz := utf8.DecodeRuneInString(line[end:])
		if !IsWordRune(r) {
			break
		}
		end += sz
	}
	return start, end, start < end
}

// ResPaths returns the spans of the res:// paths on line.  A path runs
// until a quote or a backslash.
func ResPaths(line string) [][2]int {
	var res [][2]int
	off := 0
	for {
		i := strings.Index(line[off:], ResScheme)
		if i < 0 {
			return res
		}
		start := off + i
		end := start + len(ResScheme)
		for end < len(line) && line[end] != '"' && line[end] != '\\' {
			end++
		}
		res = append(res, [2]int{start, end})
		off = end
	}
}

// ResPathAt returns the span of the res:// path touching column col.
func ResPathAt(line string, col int) (start, end int, ok bool) {
	for _, sp := range ResPaths(line) {
		if sp[0] <= col && col <= sp[1] {
			return sp[0], sp[1], true
		}
	}
	return 0, 0, false
}
