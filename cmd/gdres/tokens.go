package main

import (
	"fmt"

	"github.com/signadot/gdres/encode"
	"github.com/signadot/gdres/ir"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachIndex(cc, args, func(_ string, idx *ir.Index) error {
		toks := idx.Strings
		if cfg.Comments {
			toks = idx.Comments
		}
		if err := encode.EncodeTokens(toks, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding tokens: %w", err)
		}
		return nil
	})
}
