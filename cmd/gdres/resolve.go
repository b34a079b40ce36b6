package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/encode"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/project"
	"github.com/signadot/gdres/resolve"
	"github.com/signadot/gdres/token"

	"github.com/scott-cotton/cli"
)

type resolveReport struct {
	Kind    string `json:"kind" yaml:"kind"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Tag     string `json:"tag,omitempty" yaml:"tag,omitempty"`
	ID      int    `json:"id,omitempty" yaml:"id,omitempty"`
	Target  string `json:"target,omitempty" yaml:"target,omitempty"`
	Preload string `json:"preload" yaml:"preload"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
}

func resolveCmd(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: resolve requires 2 args, got %v", cli.ErrUsage, args)
	}
	file := args[0]
	pos, err := parsePos(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	idx, err := readIndex(cc, file)
	if err != nil {
		return err
	}
	ref := resolve.Resolve(idx, pos)
	if ref == nil {
		return nil
	}
	root, err := openProject(cfg.Project, file)
	if err != nil {
		return err
	}
	return writeResolve(cfg.MainConfig, cc.Out, report(ref, root, file))
}

// parsePos parses a one based line:col.
func parsePos(v string) (token.Pos, error) {
	l, c, ok := strings.Cut(v, ":")
	if !ok {
		return token.Pos{}, fmt.Errorf("position %q is not line:col", v)
	}
	line, err := strconv.Atoi(l)
	if err != nil || line < 1 {
		return token.Pos{}, fmt.Errorf("bad line in %q", v)
	}
	col, err := strconv.Atoi(c)
	if err != nil || col < 1 {
		return token.Pos{}, fmt.Errorf("bad column in %q", v)
	}
	return token.Pos{Line: line - 1, Col: col - 1}, nil
}

// openProject opens dir, or finds the project containing file.  A file
// outside any project yields a nil root.
func openProject(dir, file string) (*project.Root, error) {
	if dir != "" {
		return project.Open(dir)
	}
	if file == "-" {
		file = "."
	}
	root, err := project.FindRoot(filepath.Dir(file))
	if errors.Is(err, project.ErrNoProject) {
		if debug.Resolve() {
			debug.Logf("%v\n", err)
		}
		return nil, nil
	}
	return root, err
}

func report(ref *resolve.Reference, root *project.Root, file string) *resolveReport {
	docPath := file
	if root != nil {
		if p, err := root.ResPath(file); err == nil {
			docPath = p
		}
	}
	rep := &resolveReport{
		Kind:    ref.Kind.String(),
		Path:    ref.Path,
		Type:    ref.Type,
		Tag:     ref.Tag,
		ID:      ref.ID,
		Preload: ref.Preload(docPath),
	}
	if ref.Kind == resolve.Declared {
		t := ref.Target().Start
		rep.Target = fmt.Sprintf("%d:%d", t.Line+1, t.Col+1)
		if ref.Table == ir.ExtResource {
			rep.Path = ref.Symbol.Name
		}
	}
	if rep.Path != "" && root != nil {
		if f, err := root.File(rep.Path); err == nil {
			rep.File = f
		}
	}
	return rep
}

func writeResolve(cfg *MainConfig, w io.Writer, rep *resolveReport) error {
	if !cfg.format().IsText() {
		return encode.EncodeValue(rep, w, cfg.encOpts(w)...)
	}
	lines := []string{rep.Kind}
	if rep.Target != "" {
		lines[0] += " at " + rep.Target
	}
	lines = append(lines, rep.Preload)
	if rep.File != "" {
		lines = append(lines, rep.File)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
