// Package project locates the Godot project a document belongs to and maps
// res:// paths to files.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/parse"
	"github.com/signadot/gdres/token"
)

const (
	// FileName marks the root directory of a project.
	FileName = "project.godot"
	// EnvRoot, when set, names the project directory and disables the
	// search.
	EnvRoot = "GDRES_PROJECT"
)

var (
	ErrNoProject  = errors.New("no " + FileName + " found")
	ErrNotResPath = errors.New("not a " + token.ResScheme + " path")
	ErrOutside    = errors.New("outside of project")
)

// Root is an opened project.
type Root struct {
	Dir string `json:"dir"`
	// Name and MainScene come from the application section of
	// project.godot.
	Name      string `json:"name,omitempty"`
	MainScene string `json:"mainScene,omitempty"`
}

// FindRoot returns the project containing dir, searching dir and its
// parents for project.godot.
func FindRoot(dir string) (*Root, error) {
	if env := os.Getenv(EnvRoot); env != "" {
		return Open(env)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for d := abs; ; {
		_, err := os.Stat(filepath.Join(d, FileName))
		if err == nil {
			return Open(d)
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not stat %q: %w", filepath.Join(d, FileName), err)
		}
		up := filepath.Dir(d)
		if up == d {
			return nil, fmt.Errorf("%w in %q or its parents", ErrNoProject, abs)
		}
		d = up
	}
}

// Open reads the project.godot in dir.
func Open(dir string) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	p := filepath.Join(abs, FileName)
	d, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %q", ErrNoProject, abs)
		}
		return nil, fmt.Errorf("could not read %q: %w", p, err)
	}
	idx := parse.Parse(string(d), p)
	r := &Root{
		Dir:       abs,
		Name:      Setting(idx, "application", "config/name"),
		MainScene: Setting(idx, "application", "run/main_scene"),
	}
	if debug.Resolve() {
		debug.Logf("opened project %q at %s\n", r.Name, r.Dir)
	}
	return r, nil
}

// Setting returns the string value of key in section of a parsed settings
// file, or "" when absent or not a string.
func Setting(idx *ir.Index, section, key string) string {
	var prop *ir.Symbol
	for _, s := range idx.Sections() {
		if s.Tag == section {
			prop = s.Child(key)
			break
		}
	}
	if prop == nil || prop.Kind != ir.PropertyKind {
		return ""
	}
	for i := range idx.Strings {
		tok := &idx.Strings[i]
		if prop.Range.Start.Before(tok.Range.Start) && !prop.Range.End.Before(tok.Range.End) {
			return tok.Value
		}
	}
	return ""
}

// File maps a res:// path to a file below the project directory.
func (r *Root) File(resPath string) (string, error) {
	rel, ok := strings.CutPrefix(resPath, token.ResScheme)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotResPath, resPath)
	}
	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) && rel != "" {
		return "", fmt.Errorf("%q: %w", resPath, ErrOutside)
	}
	return filepath.Join(r.Dir, rel), nil
}

// ResPath maps a file below the project directory to its res:// path.
func (r *Root) ResPath(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.Dir, abs)
	switch {
	case err != nil || !filepath.IsLocal(rel):
		return "", fmt.Errorf("%q: %w %q", file, ErrOutside, r.Dir)
	case rel == ".":
		return token.ResScheme, nil
	}
	return token.ResScheme + filepath.ToSlash(rel), nil
}

// Exists reports whether resPath names an existing file.
func (r *Root) Exists(resPath string) bool {
	f, err := r.File(resPath)
	if err != nil {
		return false
	}
	_, err = os.Stat(f)
	return err == nil
}
