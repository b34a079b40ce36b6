package main

import (
	"github.com/signadot/gdres/token"

	"go.lsp.dev/protocol"
)

// Index positions count bytes, protocol positions UTF-16 code units.

func toPosition(src *token.Source, p token.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(p.Line),
		Character: uint32(src.UTF16Col(p)),
	}
}

func toRange(src *token.Source, r token.Range) protocol.Range {
	return protocol.Range{
		Start: toPosition(src, r.Start),
		End:   toPosition(src, r.End),
	}
}

func fromPosition(src *token.Source, p protocol.Position) token.Pos {
	return src.FromUTF16(int(p.Line), int(p.Character))
}
