package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/gdres/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	idxs, err := readIndexes(cc, args)
	if err != nil {
		return err
	}
	a, b := idxs[0], idxs[1]
	edits := libdiff.Diff(a.Symbols, b.Symbols)
	if cfg.Patch {
		patch, err := libdiff.MergePatch(a.Symbols, b.Symbols)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(patch, '\n')); err != nil {
			return err
		}
	} else if err := writeDiff(cfg.MainConfig, cc.Out, edits, cfg.Context); err != nil {
		return err
	}
	if libdiff.Changed(edits) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeDiff(cfg *MainConfig, w io.Writer, edits []libdiff.Edit, context int) error {
	text := libdiff.Format(edits, context)
	if !cfg.useColor(w) {
		_, err := io.WriteString(w, text)
		return err
	}
	for _, ln := range strings.SplitAfter(text, "\n") {
		switch {
		case strings.HasPrefix(ln, "+"):
			ln = color.GreenString("%s", ln)
		case strings.HasPrefix(ln, "-"):
			ln = color.RedString("%s", ln)
		case strings.HasPrefix(ln, "@@"):
			ln = color.CyanString("%s", ln)
		}
		if _, err := io.WriteString(w, ln); err != nil {
			return err
		}
	}
	return nil
}
