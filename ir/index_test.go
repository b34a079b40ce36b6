package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/gdres/token"
)

func TestNodePath(t *testing.T) {
	x := &Index{Root: "Main"}
	for in, want := range map[string]string{
		".":      "Main",
		"Player": "Main/Player",
		"a/b":    "Main/a/b",
		"":       "",
	} {
		if got := x.NodePath(in); got != want {
			t.Errorf("%q: got %q want %q", in, got, want)
		}
	}
	x.Root = ""
	if got := x.NodePath("Player"); got != "Player" {
		t.Errorf("no root: got %q", got)
	}
}

func TestContaining(t *testing.T) {
	x := &Index{
		Strings: []token.Token{
			{Type: token.TString, Range: token.LineRange(0, 4, 8)},
			{Type: token.TString, Range: token.Range{Start: token.Pos{Line: 1, Col: 2}, End: token.Pos{Line: 3, Col: 1}}},
			{Type: token.TString, Range: token.LineRange(3, 5, 7)},
		},
	}
	tests := []struct {
		p    token.Pos
		want int
	}{
		{token.Pos{Line: 0, Col: 3}, -1},
		{token.Pos{Line: 0, Col: 4}, 0},
		{token.Pos{Line: 0, Col: 8}, 0},
		{token.Pos{Line: 0, Col: 9}, -1},
		{token.Pos{Line: 2, Col: 40}, 1},
		{token.Pos{Line: 3, Col: 1}, 1},
		{token.Pos{Line: 3, Col: 3}, -1},
		{token.Pos{Line: 3, Col: 6}, 2},
		{token.Pos{Line: 9}, -1},
	}
	for _, tc := range tests {
		got := x.StringContaining(tc.p)
		switch {
		case tc.want < 0 && got != nil:
			t.Errorf("%s: got %s want none", tc.p, got.Range)
		case tc.want >= 0 && got != &x.Strings[tc.want]:
			t.Errorf("%s: got %v want token %d", tc.p, got, tc.want)
		}
	}
	if x.CommentContaining(token.Pos{}) != nil {
		t.Errorf("empty comments matched")
	}
}

func TestSectionAt(t *testing.T) {
	a := &Symbol{Kind: SectionKind, Name: "a", Range: token.Range{Start: token.Pos{Line: 2}, End: token.Pos{Line: 4}}}
	b := &Symbol{Kind: SectionKind, Name: "b", Range: token.LineRange(5, 0, 3)}
	p := &Symbol{Kind: PropertyKind, Name: "p", Range: token.LineRange(0, 0, 5)}
	x := &Index{Symbols: []*Symbol{p, a, b}}
	for line, want := range map[int]*Symbol{0: nil, 2: a, 3: nil, 5: b, 6: nil} {
		if got := x.SectionAt(line); got != want {
			t.Errorf("line %d: got %v want %v", line, got, want)
		}
	}
	if diff := cmp.Diff([]*Symbol{a, b}, x.Sections()); diff != "" {
		t.Errorf("sections (-want +got):\n%s", diff)
	}
}

func TestRefTable(t *testing.T) {
	var tab RefTable
	if tab.Get(1) != nil || tab.Len() != 0 {
		t.Fatalf("empty table not empty")
	}
	a, b := &Symbol{Name: "a"}, &Symbol{Name: "b"}
	tab.Set(7, a)
	tab.Set(2, a)
	tab.Set(7, b)
	if tab.Get(7) != b {
		t.Errorf("last write did not win")
	}
	if tab.Get(3) != nil {
		t.Errorf("unset id resolved")
	}
	if diff := cmp.Diff([]int{2, 7}, tab.IDs()); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	x := &Index{}
	x.Table(SubResource).Set(1, a)
	if x.Sub.Get(1) != a || x.Ext.Get(1) != nil {
		t.Errorf("table selection")
	}
}

func TestRefKind(t *testing.T) {
	for _, k := range []RefKind{ExtResource, SubResource} {
		got, ok := ParseRefKind(k.String())
		if !ok || got != k {
			t.Errorf("%s: got %v %t", k, got, ok)
		}
	}
	if _, ok := ParseRefKind("Resource"); ok {
		t.Errorf("parsed Resource")
	}
	if SubResource.Tag() != "sub_resource" {
		t.Errorf("got %q", SubResource.Tag())
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{SectionKind, PropertyKind, ArrayKind} {
		d, _ := k.MarshalText()
		var back Kind
		if err := back.UnmarshalText(d); err != nil || back != k {
			t.Errorf("%s: got %v %v", k, back, err)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Node")); err == nil {
		t.Errorf("expected error")
	}
}

func TestWalk(t *testing.T) {
	syms := []*Symbol{
		{Name: "s", Children: []*Symbol{
			{Name: "g", Children: []*Symbol{{Name: "g[0]"}}},
			{Name: "p"},
		}},
		{Name: "t"},
	}
	var got []string
	Walk(syms, func(s *Symbol, depth int) bool {
		got = append(got, s.Name)
		return s.Name != "g"
	})
	if diff := cmp.Diff([]string{"s", "g", "p", "t"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if syms[0].Child("p") != syms[0].Children[1] || syms[0].Child("x") != nil {
		t.Errorf("Child")
	}
}
