package ir

import "sort"

// RefKind selects one of the two cross reference tables.
type RefKind int

const (
	ExtResource RefKind = iota
	SubResource
)

func (k RefKind) String() string {
	switch k {
	case ExtResource:
		return "ExtResource"
	case SubResource:
		return "SubResource"
	}
	return "<unknown ref kind>"
}

// Tag is the section tag declaring references of kind k.
func (k RefKind) Tag() string {
	switch k {
	case ExtResource:
		return "ext_resource"
	case SubResource:
		return "sub_resource"
	}
	return ""
}

func ParseRefKind(v string) (RefKind, bool) {
	switch v {
	case "ExtResource":
		return ExtResource, true
	case "SubResource":
		return SubResource, true
	}
	return 0, false
}

// RefTable maps numeric resource ids to their declaring section.  An id
// never set is absent.  Setting an id twice keeps the later symbol.
type RefTable struct {
	ids map[int]*Symbol
}

func (t *RefTable) Set(id int, s *Symbol) {
	if t.ids == nil {
		t.ids = map[int]*Symbol{}
	}
	t.ids[id] = s
}

func (t *RefTable) Get(id int) *Symbol {
	return t.ids[id]
}

func (t *RefTable) Len() int {
	return len(t.ids)
}

// IDs returns the set ids in increasing order.
func (t *RefTable) IDs() []int {
	res := make([]int, 0, len(t.ids))
	for id := range t.ids {
		res = append(res, id)
	}
	sort.Ints(res)
	return res
}
