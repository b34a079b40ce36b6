package libdiff

import (
	"strings"

	"github.com/signadot/gdres/ir"
)

// Lines renders an outline one symbol per line.  Each line carries the
// names of its ancestors so that equal lines denote the same symbol.
func Lines(syms []*ir.Symbol) []string {
	var res []string
	var path []string
	ir.Walk(syms, func(s *ir.Symbol, depth int) bool {
		path = append(path[:depth], s.Name)
		ln := strings.Join(path, " > ")
		if s.Kind == ir.SectionKind {
			ln = "[" + ln + "]"
		}
		if s.Detail != "" {
			ln += ": " + s.Detail
		}
		res = append(res, ln)
		return true
	})
	return res
}
