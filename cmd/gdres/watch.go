package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/eval"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/libdiff"
	"github.com/signadot/gdres/parse"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

// settle is how long a file must stay quiet before it is reloaded.
const settle = 100 * time.Millisecond

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: watch requires at least one file", cli.ErrUsage)
	}
	var filter *eval.Filter
	if cfg.Query != "" {
		filter, err = eval.Compile(cfg.Query)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	w, err := newWatcher(args, filter)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return w.run(ctx, func(file string, edits []libdiff.Edit) error {
		if _, err := fmt.Fprintf(cc.Out, "# %s\n", file); err != nil {
			return err
		}
		return writeDiff(cfg.MainConfig, cc.Out, edits, cfg.Context)
	})
}

// watcher keeps the last outline of each watched file, keyed by absolute
// path.
type watcher struct {
	fsw    *fsnotify.Watcher
	filter *eval.Filter
	syms   map[string][]*ir.Symbol
	names  map[string]string
}

func newWatcher(files []string, filter *eval.Filter) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %w", err)
	}
	w := &watcher{
		fsw:    fsw,
		filter: filter,
		syms:   map[string][]*ir.Symbol{},
		names:  map[string]string{},
	}
	dirs := map[string]bool{}
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		syms, err := w.load(abs)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.syms[abs] = syms
		w.names[abs] = file
		// saves renaming over the file only show up on its directory.
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("could not watch %q: %w", dir, err)
		}
		dirs[dir] = true
	}
	return w, nil
}

func (w *watcher) load(file string) ([]*ir.Symbol, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	idx := parse.Parse(string(d), filepath.Base(file))
	if w.filter == nil {
		return idx.Symbols, nil
	}
	return eval.Select(idx.Symbols, w.filter)
}

// run reports outline changes of the watched files until ctx is done.
func (w *watcher) run(ctx context.Context, report func(file string, edits []libdiff.Edit) error) error {
	defer w.fsw.Close()
	pending := map[string]bool{}
	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if _, watched := w.syms[ev.Name]; !watched {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if debug.Parse() {
				debug.Logf("watch %s\n", ev)
			}
			pending[ev.Name] = true
			timer.Reset(settle)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		case <-timer.C:
			for _, file := range slices.Sorted(maps.Keys(pending)) {
				if err := w.reload(file, report); err != nil {
					return err
				}
			}
			clear(pending)
		}
	}
}

// reload reports the changes to the outline of file since it was last
// loaded.  A file that has gone away keeps its outline until it returns.
func (w *watcher) reload(file string, report func(string, []libdiff.Edit) error) error {
	syms, err := w.load(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	edits := libdiff.Diff(w.syms[file], syms)
	w.syms[file] = syms
	if !libdiff.Changed(edits) {
		return nil
	}
	return report(w.names[file], edits)
}
