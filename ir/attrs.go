package ir

import "strconv"

// Value is a header attribute value: a run of digits or a quoted string.
type Value struct {
	Str   string
	Num   int64
	IsNum bool
	// Col and End delimit the value text on the header line, quotes
	// excluded.
	Col, End int
}

func (v Value) String() string {
	if v.IsNum {
		return strconv.FormatInt(v.Num, 10)
	}
	return v.Str
}

// Attrs holds the attributes of one section header.
type Attrs map[string]Value

func (a Attrs) Str(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// StrOr returns the attribute text of key, or def when absent.
func (a Attrs) StrOr(key, def string) string {
	if s, ok := a.Str(key); ok {
		return s
	}
	return def
}

func (a Attrs) Int(key string) (int64, bool) {
	v, ok := a[key]
	if !ok || !v.IsNum {
		return 0, false
	}
	return v.Num, true
}
