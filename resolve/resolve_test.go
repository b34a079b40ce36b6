package resolve

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/gdres/ir"
	"github.com/signadot/gdres/parse"
	"github.com/signadot/gdres/token"
)

var scene = strings.Join([]string{
	`[gd_scene load_steps=3 format=2]`,
	``,
	`[ext_resource path="res://player.gd" type="Script" id=1]`,
	`[sub_resource type="CircleShape2D" id=2]`,
	`radius = 10.0`,
	``,
	`[node name="Player" type="KinematicBody2D"]`,
	`script = ExtResource( 1 )`,
	`; shape = SubResource( 2 ) res://ignored.png`,
	`shape = SubResource( 2 )`,
	`label = "ExtResource( 1 )"`,
	`missing = ExtResource( 9 )`,
	`texture = "res://icon.png"`,
}, "\n")

func pos(line, col int) token.Pos {
	return token.Pos{Line: line, Col: col}
}

func TestResolve(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	ext, sub := idx.Ext.Get(1), idx.Sub.Get(2)
	if ext == nil || sub == nil {
		t.Fatalf("tables not filled: %v %v", idx.Ext.IDs(), idx.Sub.IDs())
	}
	scn := idx.Symbols[0]
	tests := []struct {
		name string
		at   token.Pos
		want *Reference
	}{
		{"ext call keyword", pos(7, 9), &Reference{Kind: Declared, Word: token.LineRange(7, 9, 25), Table: ir.ExtResource, ID: 1, Type: "Script", Symbol: ext}},
		{"ext call middle", pos(7, 14), &Reference{Kind: Declared, Word: token.LineRange(7, 9, 25), Table: ir.ExtResource, ID: 1, Type: "Script", Symbol: ext}},
		{"ext call id", pos(7, 23), &Reference{Kind: Declared, Word: token.LineRange(7, 9, 25), Table: ir.ExtResource, ID: 1, Type: "Script", Symbol: ext}},
		{"ext call end", pos(7, 25), &Reference{Kind: Declared, Word: token.LineRange(7, 9, 25), Table: ir.ExtResource, ID: 1, Type: "Script", Symbol: ext}},
		{"sub call", pos(9, 10), &Reference{Kind: Declared, Word: token.LineRange(9, 8, 24), Table: ir.SubResource, ID: 2, Type: "CircleShape2D", Symbol: sub}},
		{"property key", pos(7, 3), nil},
		{"call in comment", pos(8, 12), nil},
		{"path in comment", pos(8, 32), nil},
		{"call in string", pos(10, 12), nil},
		{"undeclared id", pos(11, 12), nil},
		{"res path in value", pos(12, 15), &Reference{Kind: External, Word: token.LineRange(12, 11, 25), Path: "res://icon.png"}},
		{"res path in header", pos(2, 25), &Reference{Kind: External, Word: token.LineRange(2, 20, 35), Path: "res://player.gd", Type: "Script", Symbol: ext}},
		{"ext_resource tag", pos(2, 5), &Reference{Kind: External, Word: token.LineRange(2, 1, 13), Path: "res://player.gd", Type: "Script", Symbol: ext}},
		{"gd_scene tag", pos(0, 3), &Reference{Kind: Self, Word: token.LineRange(0, 1, 9), Tag: "gd_scene", Type: "PackedScene", Symbol: scn}},
		{"sub_resource tag", pos(3, 5), &Reference{Kind: Self, Word: token.LineRange(3, 1, 13), Tag: "sub_resource", Type: "CircleShape2D", ID: 2, Symbol: sub}},
		{"node tag", pos(6, 2), nil},
		{"header attribute", pos(6, 14), nil},
		{"blank line", pos(1, 0), nil},
		{"past end", pos(99, 0), nil},
		{"past line end", pos(7, 40), nil},
	}
	for _, tc := range tests {
		got := Resolve(idx, tc.at)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestResolveExample(t *testing.T) {
	in := strings.Join([]string{
		`[gd_resource type="Resource" load_steps=2 format=2]`,
		`[ext_resource path="res://a.png" type="Texture" id=1]`,
		`[resource]`,
		`icon = ExtResource( 1 )`,
	}, "\n")
	idx := parse.Parse(in, "a.tres")
	ref := Resolve(idx, pos(3, 9))
	if ref == nil || ref.Symbol != idx.Symbols[1] {
		t.Fatalf("got %v want the ext_resource section", ref)
	}
	if got, want := ref.Target(), (token.Range{Start: pos(1, 20), End: pos(1, 20)}); got != want {
		t.Errorf("target: got %s want %s", got, want)
	}
	if got, want := ref.Preload("res://a.tres"), `preload("res://a.png") as Texture`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestResolveBarePath(t *testing.T) {
	idx := parse.Parse(`[ext_resource path="../a.png" type="Texture" id=3]`, "x.tscn")
	ref := Resolve(idx, pos(0, 22))
	want := &Reference{Kind: External, Word: token.LineRange(0, 20, 28), Path: "../a.png", Type: "Texture", Symbol: idx.Symbols[0]}
	if diff := cmp.Diff(want, ref); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTarget(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	sub := idx.Sub.Get(2)
	ref := Resolve(idx, pos(9, 10))
	if got := ref.Target(); got != sub.Range {
		t.Errorf("got %s want %s", got, sub.Range)
	}
}

func TestPreload(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	const doc = "res://scenes/player.tscn"
	tests := []struct {
		at   token.Pos
		want string
	}{
		{pos(12, 15), `preload("res://icon.png")`},
		{pos(7, 9), `preload("res://player.gd") as Script`},
		{pos(9, 10), `preload("res://scenes/player.tscn::2") as CircleShape2D`},
		{pos(3, 5), `preload("res://scenes/player.tscn::2") as CircleShape2D`},
		{pos(0, 3), `preload("res://scenes/player.tscn") as PackedScene`},
	}
	for _, tc := range tests {
		ref := Resolve(idx, tc.at)
		if ref == nil {
			t.Errorf("%s: no reference", tc.at)
			continue
		}
		if got := ref.Preload(doc); got != tc.want {
			t.Errorf("%s: got %s want %s", tc.at, got, tc.want)
		}
	}
}

func TestLinks(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	want := []Link{
		{Range: token.LineRange(2, 20, 35), Path: "res://player.gd"},
		{Range: token.LineRange(12, 11, 25), Path: "res://icon.png"},
	}
	if diff := cmp.Diff(want, Links(idx)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUses(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	ext, sub := idx.Ext.Get(1), idx.Sub.Get(2)
	want := []Use{
		{Range: token.LineRange(7, 9, 25), Table: ir.ExtResource, ID: 1, Symbol: ext},
		{Range: token.LineRange(9, 8, 24), Table: ir.SubResource, ID: 2, Symbol: sub},
		{Range: token.LineRange(11, 10, 26), Table: ir.ExtResource, ID: 9},
	}
	if diff := cmp.Diff(want, Uses(idx)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := UsesOf(idx, ext); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("uses of ext: got %v", got)
	}
}

func TestCalls(t *testing.T) {
	tests := []struct {
		in   string
		want []call
	}{
		{"ExtResource(1)", []call{{kind: ir.ExtResource, id: 1, start: 0, end: 14}}},
		{"a = [SubResource( 12 ), ExtResource (3)]", []call{
			{kind: ir.SubResource, id: 12, start: 5, end: 22},
			{kind: ir.ExtResource, id: 3, start: 24, end: 39},
		}},
		{"MyExtResource( 1 )", nil},
		{"ExtResource( x )", nil},
		{"ExtResource( 1", nil},
		{"Resource( 1 )", nil},
		{`ExtResource("1_abc")`, nil},
	}
	for _, tc := range tests {
		got := calls(tc.in)
		if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(call{})); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
}
