package main

import (
	"context"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/signadot/gdres/debug"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/parse"
	"github.com/signadot/gdres/project"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

// document is an open editor buffer.  Its index is rebuilt from scratch on
// every change and never modified afterwards.
type document struct {
	uri     protocol.DocumentURI
	file    string
	version int32
	idx     *ir.Index
	// root is the project the file belongs to, nil when there is none.
	root *project.Root
}

func (ds *documentStore) get(u protocol.DocumentURI) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[u]
}

func (ds *documentStore) put(u protocol.DocumentURI, content string, version int32) *document {
	file := uriFile(u)
	name := filepath.Base(file)
	if file == "" {
		name = path.Base(string(u))
	}
	doc := &document{
		uri:     u,
		file:    file,
		version: version,
		idx:     parse.Parse(content, name),
	}
	if prev := ds.get(u); prev != nil {
		doc.root = prev.root
	} else {
		doc.root = findProject(file)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[u] = doc
	return doc
}

func (ds *documentStore) remove(u protocol.DocumentURI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, u)
}

// uriFile is the file name of a file:// URI, "" for other schemes.
func uriFile(u protocol.DocumentURI) string {
	if !strings.HasPrefix(string(u), uri.FileScheme+"://") {
		return ""
	}
	return uri.URI(u).Filename()
}

func findProject(file string) *project.Root {
	if file == "" {
		return nil
	}
	root, err := project.FindRoot(filepath.Dir(file))
	if err != nil {
		if debug.LSP() {
			debug.Logf("no project for %s: %v\n", file, err)
		}
		return nil
	}
	return root
}

// resPath is the res:// path of the document, or its base name outside a
// project.
func (d *document) resPath() string {
	if d.root != nil {
		if p, err := d.root.ResPath(d.file); err == nil {
			return p
		}
	}
	return d.idx.BaseName
}

// fileURI maps a res:// path to a file URI in the document's project.
func (d *document) fileURI(resPath string) (protocol.DocumentURI, bool) {
	if d.root == nil {
		return "", false
	}
	f, err := d.root.File(resPath)
	if err != nil {
		return "", false
	}
	return protocol.DocumentURI(uri.File(f)), true
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := params.TextDocument
	doc := s.docs.put(td.URI, td.Text, td.Version)
	if debug.LSP() {
		debug.Logf("open %s: %d symbols\n", td.URI, len(doc.idx.Symbols))
	}
	return nil
}

// DidChange expects full document sync: the last change holds the whole
// text.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	n := len(params.ContentChanges)
	if n == 0 {
		return nil
	}
	td := params.TextDocument
	if prev := s.docs.get(td.URI); prev != nil && prev.version > td.Version {
		return nil
	}
	s.docs.put(td.URI, params.ContentChanges[n-1].Text, td.Version)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(params.TextDocument.URI)
	return nil
}
