package resolve

import (
	"fmt"
	"strconv"

	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/token"
)

type Kind int

const (
	// External refers to another file by res:// path.
	External Kind = iota
	// Declared refers to the section declaring an ExtResource or
	// SubResource id.
	Declared
	// Self refers to the document containing the position.
	Self
)

func (k Kind) String() string {
	switch k {
	case External:
		return "external"
	case Declared:
		return "declared"
	case Self:
		return "self"
	}
	return "<unknown reference kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Reference is a resolved position.
type Reference struct {
	Kind Kind `json:"kind"`
	// Word is the span the reference was found at.
	Word token.Range `json:"word"`
	// Path is the referenced res:// path of an External reference.
	Path string `json:"path,omitempty"`
	// Type is the declared resource type, if known.
	Type string `json:"type,omitempty"`
	// Tag is the header tag of a Self reference.
	Tag string `json:"tag,omitempty"`
	// Table and ID locate a Declared reference.  ID is also set for a Self
	// reference made from a sub_resource header.
	Table ir.RefKind `json:"-"`
	ID    int        `json:"id,omitempty"`
	// Symbol is the declaring section, or the header the position is on.
	Symbol *ir.Symbol `json:"-"`
}

// Target is the range a definition request should jump to.  It is only
// meaningful for Declared references: the path value of an ext_resource
// header, or the whole sub_resource section.
func (r *Reference) Target() token.Range {
	if r.Symbol == nil {
		return r.Word
	}
	if r.Table == ir.ExtResource && r.Symbol.Selection != r.Symbol.Range {
		sel := r.Symbol.Selection
		return token.Range{Start: sel.Start, End: sel.Start}
	}
	return r.Symbol.Range
}

// Preload renders the GDScript expression loading the referenced
// resource.  docPath is the res:// path of the document being resolved
// against and is used for Self references and sub resources.
func (r *Reference) Preload(docPath string) string {
	var p string
	switch {
	case r.Kind == External:
		p = r.Path
	case r.Kind == Declared && r.Table == ir.ExtResource:
		p = r.Symbol.Name
	case r.ID > 0:
		p = docPath + "::" + strconv.Itoa(r.ID)
	default:
		p = docPath
	}
	res := "preload(" + token.Quote(p) + ")"
	if r.Type != "" {
		res += " as " + r.Type
	}
	return res
}

func (r *Reference) String() string {
	switch r.Kind {
	case External:
		return fmt.Sprintf("%s %s %s", r.Kind, r.Path, r.Type)
	case Declared:
		return fmt.Sprintf("%s %s(%d) %s", r.Kind, r.Table, r.ID, r.Symbol.Range)
	}
	return fmt.Sprintf("%s %s %s", r.Kind, r.Tag, r.Type)
}
