package main

import (
	"context"

	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	syms := documentSymbols(doc.idx.Source, doc.idx.Symbols)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

func documentSymbols(src *token.Source, syms []*ir.Symbol) []protocol.DocumentSymbol {
	if len(syms) == 0 {
		return nil
	}
	res := make([]protocol.DocumentSymbol, 0, len(syms))
	for _, sym := range syms {
		res = append(res, protocol.DocumentSymbol{
			Name:           sym.Name,
			Detail:         sym.Detail,
			Kind:           symbolKind(sym),
			Range:          toRange(src, sym.Range),
			SelectionRange: toRange(src, sym.Selection),
			Children:       documentSymbols(src, sym.Children),
		})
	}
	return res
}

func symbolKind(sym *ir.Symbol) protocol.SymbolKind {
	switch sym.Kind {
	case ir.PropertyKind:
		return protocol.SymbolKindProperty
	case ir.ArrayKind:
		return protocol.SymbolKindArray
	}
	switch sym.Tag {
	case "gd_scene", "gd_resource", "ext_resource", "sub_resource":
		return protocol.SymbolKindFile
	case "connection":
		return protocol.SymbolKindEvent
	}
	return protocol.SymbolKindObject
}

// FoldingRanges folds sections spanning more than their header line.
func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	return foldingRanges(doc.idx), nil
}

func foldingRanges(idx *ir.Index) []protocol.FoldingRange {
	var res []protocol.FoldingRange
	ir.Walk(idx.Symbols, func(sym *ir.Symbol, _ int) bool {
		r := sym.Range
		if r.End.Line > r.Start.Line {
			res = append(res, protocol.FoldingRange{
				StartLine: uint32(r.Start.Line),
				EndLine:   uint32(r.End.Line),
			})
		}
		return true
	})
	return res
}
