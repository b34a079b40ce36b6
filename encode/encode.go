package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/gdres/format"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	indent int
	ranges bool
	Color  func(ir.Kind, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if !es.format.IsText() {
		es.Color = nil
	}
	return es
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

// Symbol is the encoded form of an outline entry.
type Symbol struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Name     string       `json:"name" yaml:"name"`
	Detail   string       `json:"detail,omitempty" yaml:"detail,omitempty"`
	Tag      string       `json:"tag,omitempty" yaml:"tag,omitempty"`
	ID       int          `json:"id,omitempty" yaml:"id,omitempty"`
	Range    *token.Range `json:"range,omitempty" yaml:"range,omitempty"`
	Children []*Symbol    `json:"children,omitempty" yaml:"children,omitempty"`
}

// Symbols converts an outline to its encoded form.
func Symbols(syms []*ir.Symbol, ranges bool) []*Symbol {
	res := make([]*Symbol, 0, len(syms))
	for _, s := range syms {
		v := &Symbol{
			Kind:     s.Kind.String(),
			Name:     s.Name,
			Detail:   s.Detail,
			Tag:      s.Tag,
			ID:       s.ID,
		}
		if ranges {
			r := s.Range
			v.Range = &r
		}
		if len(s.Children) != 0 {
			v.Children = Symbols(s.Children, ranges)
		}
		res = append(res, v)
	}
	return res
}

// Encode writes an outline.  The text format prints one symbol per line,
// children indented below their parent, sections in brackets.
func Encode(syms []*ir.Symbol, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if !es.format.IsText() {
		return EncodeValue(Symbols(syms, es.ranges), w, opts...)
	}
	var err error
	ir.Walk(syms, func(s *ir.Symbol, depth int) bool {
		if err != nil {
			return false
		}
		err = writeString(w, symbolLine(s, depth, es)+"\n")
		return true
	})
	return err
}

func symbolLine(s *ir.Symbol, depth int, es *EncState) string {
	b := &strings.Builder{}
	b.WriteString(strings.Repeat(" ", depth*es.indent))
	name := s.Name
	if s.Kind == ir.SectionKind {
		name = "[" + name + "]"
	}
	b.WriteString(es.color(s.Kind, NameColor, name))
	if s.Detail != "" {
		b.WriteString(": ")
		b.WriteString(es.color(s.Kind, DetailColor, s.Detail))
	}
	if es.ranges {
		b.WriteString(" ")
		b.WriteString(es.color(s.Kind, RangeColor, "@"+s.Range.String()))
	}
	return b.String()
}

// Token is the encoded form of a string or comment token.
type Token struct {
	Type  string      `json:"type" yaml:"type"`
	Range token.Range `json:"range" yaml:"range"`
	Value string      `json:"value" yaml:"value"`
}

// EncodeTokens writes a token list.  The text format prints each token's
// range and its value, strings re-quoted.
func EncodeTokens(toks []token.Token, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if !es.format.IsText() {
		vs := make([]Token, len(toks))
		for i := range toks {
			vs[i] = Token{Type: toks[i].Type.String(), Range: toks[i].Range, Value: toks[i].Value}
		}
		return EncodeValue(vs, w, opts...)
	}
	for i := range toks {
		tok := &toks[i]
		v := tok.Value
		attr := CommentColor
		if tok.Type == token.TString {
			v = token.Quote(v)
			attr = StringColor
		}
		line := es.color(ir.PropertyKind, RangeColor, tok.Range.String()) + " " + es.color(ir.PropertyKind, attr, v)
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// EncodeValue writes v as a JSON or YAML document.
func EncodeValue(v any, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	switch es.format {
	case format.JSONFormat:
		buf := bytes.NewBuffer(nil)
		enc := json.NewEncoder(buf)
		enc.SetIndent("", strings.Repeat(" ", es.indent))
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case format.YAMLFormat:
		d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: cannot encode %T as %s", ErrEncoding, v, es.format)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
