package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "gdres").
		WithSynopsis("gdres [opts] command [opts]").
		WithDescription("gdres indexes Godot text scenes and resources.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gdresMain(cfg, cc, args)
		}).
		WithSubs(
			OutlineCommand(cfg),
			TokensCommand(cfg),
			RefsCommand(cfg),
			ResolveCommand(cfg),
			LinksCommand(cfg),
			DiffCommand(cfg),
			WatchCommand(cfg))
}

func OutlineCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OutlineConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Outline, "outline").
		WithAliases("o", "out").
		WithSynopsis("outline [-q expr] [-t template] [files]").
		WithDescription(outlineDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return outline(cfg, cc, args)
		})
}

const outlineDescription = `outline shows the sections, properties and array groups of documents.

Queries and templates are expressions over one symbol with the variables
kind, name, detail, tag, id, line, endLine, depth, parent and children and
the functions basename(path) and ext(path).  For example

  gdres outline -q 'tag == "ext_resource" && ext(name) == ".png"' main.tscn
  gdres outline -q 'kind == "Section"' -t '$[line]: $[name]' main.tscn`

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "strings").
		WithSynopsis("tokens [-c] [files]").
		WithDescription("tokens lists the string literals or comments of documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func RefsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RefsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Refs, "refs").
		WithSynopsis("refs [-u] [files]").
		WithDescription("refs lists the ExtResource and SubResource ids declared by documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return refs(cfg, cc, args)
		})
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r", "res").
		WithSynopsis("resolve [-p dir] file line:col").
		WithDescription("resolve shows what the text at a one based line and column refers to").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return resolveCmd(cfg, cc, args)
		})
}

func LinksCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LinksConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Links, "links").
		WithAliases("l").
		WithSynopsis("links [-p dir] [-m] [files]").
		WithDescription("links lists res:// paths and the files they name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return links(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-C n] [-patch] a b").
		WithDescription("diff compares the outlines of two documents, exiting 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg, Context: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Watch, "watch").
		WithAliases("w").
		WithSynopsis("watch [-q expr] [-C n] files").
		WithDescription("watch prints outline diffs of files as they change, until interrupted").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
}
