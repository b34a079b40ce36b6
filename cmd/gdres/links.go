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

type linkEntry struct {
	Line    int    `json:"line" yaml:"line"`
	Col     int    `json:"col" yaml:"col"`
	Path    string `json:"path" yaml:"path"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Missing bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
}

func links(cfg *LinksConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Links.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachIndex(cc, args, func(file string, idx *ir.Index) error {
		root, err := openProject(cfg.Project, file)
		if err != nil {
			return err
		}
		var entries []linkEntry
		for _, l := range resolve.Links(idx) {
			e := linkEntry{
				Line: l.Range.Start.Line + 1,
				Col:  l.Range.Start.Col + 1,
				Path: l.Path,
			}
			if root != nil {
				if f, err := root.File(l.Path); err == nil {
					e.File = f
				}
				e.Missing = !root.Exists(l.Path)
			}
			if cfg.Missing && !e.Missing {
				continue
			}
			entries = append(entries, e)
		}
		return writeLinks(cfg.MainConfig, cc.Out, entries)
	})
}

func writeLinks(cfg *MainConfig, w io.Writer, entries []linkEntry) error {
	if !cfg.format().IsText() {
		return encode.EncodeValue(entries, w, cfg.encOpts(w)...)
	}
	missing := fmt.Sprint
	if cfg.useColor(w) {
		missing = color.New(color.FgRed).Sprint
	}
	for _, e := range entries {
		ln := fmt.Sprintf("%d:%d %s", e.Line, e.Col, e.Path)
		if e.File != "" {
			ln += " " + e.File
		}
		if e.Missing {
			ln += " " + missing("(missing)")
		}
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}
