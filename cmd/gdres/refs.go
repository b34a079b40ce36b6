package main

import (
	"fmt"
	"io"

	"github.com/signadot/gdres/encode"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/resolve"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

type refEntry struct {
	Table string `json:"table" yaml:"table"`
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Line  int    `json:"line" yaml:"line"`
	Uses  int    `json:"uses" yaml:"uses"`
}

type useEntry struct {
	Table  string `json:"table" yaml:"table"`
	ID     int    `json:"id" yaml:"id"`
	Line   int    `json:"line" yaml:"line"`
	Col    int    `json:"col" yaml:"col"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

func refs(cfg *RefsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Refs.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachIndex(cc, args, func(_ string, idx *ir.Index) error {
		uses := resolve.Uses(idx)
		if cfg.Uses {
			return writeUses(cfg.MainConfig, cc.Out, uses)
		}
		return writeRefs(cfg.MainConfig, cc.Out, refEntries(idx, uses))
	})
}

func refEntries(idx *ir.Index, uses []resolve.Use) []refEntry {
	counts := map[*ir.Symbol]int{}
	for _, u := range uses {
		if u.Symbol != nil {
			counts[u.Symbol]++
		}
	}
	var res []refEntry
	for _, k := range []ir.RefKind{ir.ExtResource, ir.SubResource} {
		tab := idx.Table(k)
		for _, id := range tab.IDs() {
			s := tab.Get(id)
			res = append(res, refEntry{
				Table: k.String(),
				ID:    id,
				Name:  s.Name,
				Type:  s.Detail,
				Line:  s.Range.Start.Line + 1,
				Uses:  counts[s],
			})
		}
	}
	return res
}

func writeRefs(cfg *MainConfig, w io.Writer, entries []refEntry) error {
	if !cfg.format().IsText() {
		return encode.EncodeValue(entries, w, cfg.encOpts(w)...)
	}
	name := fmt.Sprint
	if cfg.useColor(w) {
		name = color.New(color.FgCyan).Sprint
	}
	for _, e := range entries {
		_, err := fmt.Fprintf(w, "%s(%d) %s %s line %d, %d uses\n", e.Table, e.ID, name(e.Name), e.Type, e.Line, e.Uses)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeUses(cfg *MainConfig, w io.Writer, uses []resolve.Use) error {
	entries := make([]useEntry, 0, len(uses))
	for _, u := range uses {
		e := useEntry{
			Table: u.Table.String(),
			ID:    u.ID,
			Line:  u.Range.Start.Line + 1,
			Col:   u.Range.Start.Col + 1,
		}
		if u.Symbol != nil {
			e.Target = u.Symbol.Name
		}
		entries = append(entries, e)
	}
	if !cfg.format().IsText() {
		return encode.EncodeValue(entries, w, cfg.encOpts(w)...)
	}
	missing := fmt.Sprint
	if cfg.useColor(w) {
		missing = color.New(color.FgRed).Sprint
	}
	for _, e := range entries {
		target := e.Target
		if target == "" {
			target = missing("<undeclared>")
		}
		if _, err := fmt.Fprintf(w, "%d:%d %s(%d) %s\n", e.Line, e.Col, e.Table, e.ID, target); err != nil {
			return err
		}
	}
	return nil
}
