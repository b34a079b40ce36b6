package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Filter is a compiled boolean expression over symbols.
type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	opts := append(exprOpts(), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrQuery, src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(env Env) (bool, error) {
	res, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrQuery, f.src, err)
	}
	b, _ := res.(bool)
	return b, nil
}

// Select returns the outline restricted to the symbols matching f and
// their ancestors.  The result shares no symbols with syms.
func Select(syms []*ir.Symbol, f *Filter) ([]*ir.Symbol, error) {
	return sel(syms, nil, 0, f)
}

func sel(syms []*ir.Symbol, parent *ir.Symbol, depth int, f *Filter) ([]*ir.Symbol, error) {
	var res []*ir.Symbol
	for _, s := range syms {
		ok, err := f.Match(SymbolEnv(s, parent, depth))
		if err != nil {
			return nil, err
		}
		kids, err := sel(s.Children, s, depth+1, f)
		if err != nil {
			return nil, err
		}
		if !ok && len(kids) == 0 {
			continue
		}
		if debug.Eval() && ok {
			debug.Logf("%s matched %s\n", f, s)
		}
		c := *s
		c.Children = kids
		res = append(res, &c)
	}
	return res, nil
}
