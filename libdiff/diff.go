package libdiff

import (
	"strings"

	"github.com/signadot/gdres/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

// Edit is one line of a diff.
type Edit struct {
	Op   Op
	Line string
}

// Diff returns the line edits turning the outline from into to.
func Diff(from, to []*ir.Symbol) []Edit {
	return DiffLines(Lines(from), Lines(to))
}

func DiffLines(from, to []string) []Edit {
	dmp := diffpatch.New()
	a := joinLines(from)
	b := joinLines(to)
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []Edit
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Edit{Op: op, Line: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Changed reports whether edits contain an insertion or a deletion.
func Changed(edits []Edit) bool {
	for _, e := range edits {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

// Format renders edits one per line, prefixed with '+', '-' or ' '.
// Unchanged runs longer than 2*context lines are elided.
func Format(edits []Edit, context int) string {
	b := &strings.Builder{}
	for i := 0; i < len(edits); i++ {
		e := edits[i]
		if e.Op == Equal && context >= 0 && !near(edits, i, context) {
			j := i
			for j < len(edits) && edits[j].Op == Equal && !near(edits, j, context) {
				j++
			}
			b.WriteString("@@ ...\n")
			i = j - 1
			continue
		}
		b.WriteString(e.Op.Prefix())
		b.WriteString(e.Line)
		b.WriteString("\n")
	}
	return b.String()
}

// near reports whether edit i is within context lines of a change.
func near(edits []Edit, i, context int) bool {
	for j := max(0, i-context); j <= min(len(edits)-1, i+context); j++ {
		if edits[j].Op != Equal {
			return true
		}
	}
	return false
}
