package main

import (
	"context"
	"sort"

	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"

	"go.lsp.dev/protocol"
)

// semanticTypes is the token type legend, indexed by token.Type.
var semanticTypes = []protocol.SemanticTokenTypes{
	token.TString:  protocol.SemanticTokenString,
	token.TComment: protocol.SemanticTokenComment,
}

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType uint32
}

// collectSemanticTokens splits the string and comment tokens of idx into
// single line pieces within r, in document order.
func collectSemanticTokens(idx *ir.Index, r token.Range) []tokenInfo {
	src := idx.Source
	toks := make([]token.Token, 0, len(idx.Strings)+len(idx.Comments))
	toks = append(toks, idx.Strings...)
	toks = append(toks, idx.Comments...)
	sort.Slice(toks, func(i, j int) bool {
		return toks[i].Range.Start.Before(toks[j].Range.Start)
	})

	var res []tokenInfo
	for _, tok := range toks {
		for line := tok.Range.Start.Line; line <= tok.Range.End.Line; line++ {
			start := token.Pos{Line: line}
			if line == tok.Range.Start.Line {
				start = tok.Range.Start
			}
			end := src.LineEnd(line)
			if line == tok.Range.End.Line {
				end = tok.Range.End
			}
			if end.Before(r.Start) || r.End.Before(start) {
				continue
			}
			c0, c1 := src.UTF16Col(start), src.UTF16Col(end)
			if c1 <= c0 {
				continue
			}
			res = append(res, tokenInfo{
				line:      uint32(line),
				character: uint32(c0),
				length:    uint32(c1 - c0),
				tokenType: uint32(tok.Type),
			})
		}
	}
	return res
}

// encodeSemanticTokens produces the relative encoding of the protocol.
func encodeSemanticTokens(infos []tokenInfo) []uint32 {
	res := make([]uint32, 0, 5*len(infos))
	var prevLine, prevChar uint32
	for _, ti := range infos {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar -= prevChar
		}
		res = append(res, deltaLine, deltaChar, ti.length, ti.tokenType, 0)
		prevLine = ti.line
		prevChar = ti.character
	}
	return res
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	all := token.Range{End: doc.idx.Source.End()}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.idx, all)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	src := doc.idx.Source
	r := token.Range{
		Start: fromPosition(src, params.Range.Start),
		End:   fromPosition(src, params.Range.End),
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.idx, r)),
	}, nil
}
