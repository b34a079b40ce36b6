package eval

import (
	"path"

	"github.com/signadot/gdres/ir"

	"github.com/expr-lang/expr"
)

type Env map[string]any

// SymbolEnv is the evaluation environment of s.  parent is nil at the top
// level.
func SymbolEnv(s, parent *ir.Symbol, depth int) Env {
	env := Env{
		"kind":     s.Kind.String(),
		"name":     s.Name,
		"detail":   s.Detail,
		"tag":      s.Tag,
		"id":       s.ID,
		"line":     s.Range.Start.Line,
		"endLine":  s.Range.End.Line,
		"depth":    depth,
		"parent":   "",
		"children": len(s.Children),
	}
	if parent != nil {
		env["parent"] = parent.Name
	}
	return env
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(SymbolEnv(&ir.Symbol{}, nil, 0)),
		expr.Function("basename", func(params ...any) (any, error) {
			return path.Base(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("ext", func(params ...any) (any, error) {
			return path.Ext(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
