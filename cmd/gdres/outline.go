package main

import (
	"fmt"
	"io"

	"github.com/signadot/gdres/encode"
	"github.com/signadot/gdres/eval"
	"github.com/signadot/gdres/ir"

	"github.com/scott-cotton/cli"
)

func outline(cfg *OutlineConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Outline.Parse(cc, args)
	if err != nil {
		return err
	}
	var filter *eval.Filter
	if cfg.Query != "" {
		filter, err = eval.Compile(cfg.Query)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return cfg.eachIndex(cc, args, func(_ string, idx *ir.Index) error {
		if cfg.Template != "" {
			return outlineTemplate(cc.Out, idx.Symbols, filter, cfg.Template)
		}
		syms := idx.Symbols
		if filter != nil {
			syms, err = eval.Select(syms, filter)
			if err != nil {
				return err
			}
		}
		if err := encode.Encode(syms, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding outline: %w", err)
		}
		return nil
	})
}

// outlineTemplate prints tmpl expanded for each symbol matching filter,
// or for every symbol when filter is nil.
func outlineTemplate(w io.Writer, syms []*ir.Symbol, filter *eval.Filter, tmpl string) error {
	var (
		err     error
		parents []*ir.Symbol
	)
	ir.Walk(syms, func(s *ir.Symbol, depth int) bool {
		if err != nil {
			return false
		}
		parents = parents[:depth]
		var parent *ir.Symbol
		if depth > 0 {
			parent = parents[depth-1]
		}
		parents = append(parents, s)
		env := eval.SymbolEnv(s, parent, depth)
		ok := true
		if filter != nil {
			ok, err = filter.Match(env)
			if err != nil {
				return false
			}
		}
		if !ok {
			return true
		}
		var line string
		line, err = eval.ExpandString(tmpl, env)
		if err != nil {
			return false
		}
		_, err = io.WriteString(w, line+"\n")
		return err == nil
	})
	return err
}
