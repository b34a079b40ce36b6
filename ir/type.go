package ir

import "fmt"

type Kind int

const (
	SectionKind Kind = iota
	PropertyKind
	ArrayKind
)

// Kinds returns all symbol kinds.
func Kinds() []Kind {
	return []Kind{SectionKind, PropertyKind, ArrayKind}
}

func (k Kind) String() string {
	s, ok := map[Kind]string{
		SectionKind:  "Section",
		PropertyKind: "Property",
		ArrayKind:    "Array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Section":  SectionKind,
		"Property": PropertyKind,
		"Array":    ArrayKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}
