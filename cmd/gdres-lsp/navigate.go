package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/resolve"

	"go.lsp.dev/protocol"
)

func (s *Server) referenceAt(u protocol.DocumentURI, p protocol.Position) (*document, *resolve.Reference) {
	doc := s.docs.get(u)
	if doc == nil {
		return nil, nil
	}
	pos := fromPosition(doc.idx.Source, p)
	ref := resolve.Resolve(doc.idx, pos)
	if debug.LSP() {
		debug.Logf("%s %s: %v\n", u, pos, ref)
	}
	return doc, ref
}

func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	doc, ref := s.referenceAt(params.TextDocument.URI, params.Position)
	if ref == nil {
		return nil, nil
	}
	switch ref.Kind {
	case resolve.Declared:
		return []protocol.Location{{
			URI:   doc.uri,
			Range: toRange(doc.idx.Source, ref.Target()),
		}}, nil
	case resolve.External:
		target, ok := doc.fileURI(ref.Path)
		if !ok {
			return nil, nil
		}
		return []protocol.Location{{URI: target}}, nil
	}
	return nil, nil
}

// References lists the ExtResource and SubResource calls resolving to the
// section declaring the resource under the cursor.
func (s *Server) References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	doc, ref := s.referenceAt(params.TextDocument.URI, params.Position)
	decl := declaring(ref)
	if decl == nil {
		return nil, nil
	}
	src := doc.idx.Source
	var res []protocol.Location
	if params.Context.IncludeDeclaration {
		res = append(res, protocol.Location{URI: doc.uri, Range: toRange(src, decl.Selection)})
	}
	for _, use := range resolve.UsesOf(doc.idx, decl) {
		res = append(res, protocol.Location{URI: doc.uri, Range: toRange(src, use.Range)})
	}
	return res, nil
}

// declaring is the ext_resource or sub_resource section ref denotes, if
// any.
func declaring(ref *resolve.Reference) *ir.Symbol {
	if ref == nil || ref.Symbol == nil {
		return nil
	}
	switch ref.Symbol.Tag {
	case ir.ExtResource.Tag(), ir.SubResource.Tag():
		if ref.Symbol.ID > 0 {
			return ref.Symbol
		}
	}
	return nil
}

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ref := s.referenceAt(params.TextDocument.URI, params.Position)
	if ref == nil {
		return nil, nil
	}
	word := toRange(doc.idx.Source, ref.Word)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(doc, ref),
		},
		Range: &word,
	}, nil
}

func hoverText(doc *document, ref *resolve.Reference) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```gdscript\n%s\n```", ref.Preload(doc.resPath()))
	var path string
	switch {
	case ref.Kind == resolve.External:
		path = ref.Path
	case ref.Kind == resolve.Declared && ref.Table == ir.ExtResource:
		path = ref.Symbol.Name
	}
	if path == "" {
		return b.String()
	}
	if target, ok := doc.fileURI(path); ok {
		fmt.Fprintf(&b, "\n\n[%s](%s)", path, target)
	}
	return b.String()
}

// DocumentLink links res:// paths to files of the document's project.
// Nothing is linked outside a project.
func (s *Server) DocumentLink(ctx context.Context, params *protocol.DocumentLinkParams) ([]protocol.DocumentLink, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	var res []protocol.DocumentLink
	for _, l := range resolve.Links(doc.idx) {
		target, ok := doc.fileURI(l.Path)
		if !ok {
			continue
		}
		res = append(res, protocol.DocumentLink{
			Range:  toRange(doc.idx.Source, l.Range),
			Target: target,
		})
	}
	return res, nil
}
