package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/parse"

	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

// readIndex parses file, or the command input when file is "-".
func readIndex(cc *cli.Context, file string) (*ir.Index, error) {
	var (
		r    io.Reader
		name = file
	)
	if file == "-" {
		r = cc.In
		name = "stdin"
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return parse.Parse(string(d), name), nil
}

// readIndexes parses files concurrently, keeping their order.
func readIndexes(cc *cli.Context, files []string) ([]*ir.Index, error) {
	res := make([]*ir.Index, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			idx, err := readIndex(cc, file)
			if err != nil {
				return err
			}
			res[i] = idx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// eachIndex calls f with the index of each file, or of the command input
// when files is empty.  Text output of several files is headed by the
// file name.
func (cfg *MainConfig) eachIndex(cc *cli.Context, files []string, f func(file string, idx *ir.Index) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	idxs, err := readIndexes(cc, files)
	if err != nil {
		return err
	}
	for i, file := range files {
		if len(files) > 1 && cfg.format().IsText() {
			if i > 0 {
				if _, err := cc.Out.Write([]byte("\n")); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(cc.Out, "# %s\n", file); err != nil {
				return err
			}
		}
		if err := f(file, idxs[i]); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
