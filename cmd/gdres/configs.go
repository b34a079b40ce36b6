package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/gdres/encode"
	"github.com/signadot/gdres/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Ranges bool `cli:"name=r aliases=ranges desc='show source ranges'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.EncodeRanges(cfg.Ranges),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored: -color forces it,
// otherwise it is on for terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type OutlineConfig struct {
	*MainConfig
	Query    string `cli:"name=q aliases=query desc='only show symbols matching an expression and their parents'"`
	Template string `cli:"name=t aliases=template desc='print each matching symbol with a $[expr] template'"`

	Outline *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Comments bool `cli:"name=c aliases=comments desc='list comments instead of strings'"`

	Tokens *cli.Command
}

type RefsConfig struct {
	*MainConfig
	Uses bool `cli:"name=u aliases=uses desc='list every ExtResource and SubResource use'"`

	Refs *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	Project string `cli:"name=p aliases=project desc='project directory (default: search from the file)'"`

	Resolve *cli.Command
}

type LinksConfig struct {
	*MainConfig
	Project string `cli:"name=p aliases=project desc='project directory (default: search from the file)'"`
	Missing bool   `cli:"name=m aliases=missing desc='only list links to missing files'"`

	Links *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int  `cli:"name=C aliases=context desc='lines of context around changes, -1 for all'"`
	Patch   bool `cli:"name=patch desc='output a json merge patch between the outlines'"`

	Diff *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Query   string `cli:"name=q aliases=query desc='only watch symbols matching expr'"`
	Context int    `cli:"name=C aliases=context desc='lines of context around changes, -1 for all'"`

	Watch *cli.Command
}
