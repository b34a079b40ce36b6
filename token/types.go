package token

type Type int

const (
	TString Type = iota
	TComment
)

func (t Type) String() string {
	switch t {
	case TString:
		return "String"
	case TComment:
		return "Comment"
	default:
		return "<unknown token type>"
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Token is a string literal or a trailing comment.  For strings Value is
// the unescaped text and Range includes both quotes; for comments Value
// is the raw text starting at ';' or '#'.
type Token struct {
	Type  Type   `json:"type" yaml:"type"`
	Range Range  `json:"range" yaml:"range"`
	Value string `json:"value" yaml:"value"`
}
