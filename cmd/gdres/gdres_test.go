package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/gdres/eval"
	"github.com/signadot/gdres/format"
	"github.com/signadot/gdres/libdiff"
	"github.com/signadot/gdres/parse"
	"github.com/signadot/gdres/project"
	"github.com/signadot/gdres/resolve"
	"github.com/signadot/gdres/token"

	"github.com/scott-cotton/cli"
)

const scene = `[gd_scene load_steps=3 format=2]
[ext_resource path="res://player.gd" type="Script" id=1]
[sub_resource type="CircleShape2D" id=2]
[node name="Player" type="KinematicBody2D"]
script = ExtResource( 1 )
shape = SubResource( 2 )
other = ExtResource( 1 )
gone = ExtResource( 7 )`

func testConfig() *MainConfig {
	return &MainConfig{Main: &cli.Command{}}
}

func TestParsePos(t *testing.T) {
	p, err := parsePos("5:10")
	if err != nil || p != (token.Pos{Line: 4, Col: 9}) {
		t.Errorf("got %v %v", p, err)
	}
	for _, bad := range []string{"5", "0:1", "1:0", "a:b", ""} {
		if _, err := parsePos(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestRefEntries(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	want := []refEntry{
		{Table: "ExtResource", ID: 1, Name: "res://player.gd", Type: "Script", Line: 2, Uses: 2},
		{Table: "SubResource", ID: 2, Name: "sub_resource", Type: "CircleShape2D", Line: 3, Uses: 1},
	}
	got := refEntries(idx, resolve.Uses(idx))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf := bytes.NewBuffer(nil)
	if err := writeRefs(testConfig(), buf, got); err != nil {
		t.Fatal(err)
	}
	wantText := "ExtResource(1) res://player.gd Script line 2, 2 uses\nSubResource(2) sub_resource CircleShape2D line 3, 1 uses\n"
	if buf.String() != wantText {
		t.Errorf("got %q want %q", buf.String(), wantText)
	}
}

func TestWriteUses(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	buf := bytes.NewBuffer(nil)
	if err := writeUses(testConfig(), buf, resolve.Uses(idx)); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"5:10 ExtResource(1) res://player.gd",
		"6:9 SubResource(2) sub_resource",
		"7:9 ExtResource(1) res://player.gd",
		"8:8 ExtResource(7) <undeclared>",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestReport(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	root := &project.Root{Dir: "/games/p"}
	ref := resolve.Resolve(idx, token.Pos{Line: 4, Col: 12})
	if ref == nil {
		t.Fatal("no reference")
	}
	got := report(ref, root, "/games/p/player.tscn")
	want := &resolveReport{
		Kind:    "declared",
		Path:    "res://player.gd",
		Type:    "Script",
		ID:      1,
		Target:  "2:21",
		Preload: `preload("res://player.gd") as Script`,
		File:    "/games/p/player.gd",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	self := report(resolve.Resolve(idx, token.Pos{Line: 0, Col: 2}), root, "/games/p/player.tscn")
	if self.Preload != `preload("res://player.tscn") as PackedScene` {
		t.Errorf("got %s", self.Preload)
	}
	buf := bytes.NewBuffer(nil)
	if err := writeResolve(testConfig(), buf, got); err != nil {
		t.Fatal(err)
	}
	wantText := "declared at 2:21\npreload(\"res://player.gd\") as Script\n/games/p/player.gd\n"
	if buf.String() != wantText {
		t.Errorf("got %q want %q", buf.String(), wantText)
	}
}

func TestOutlineTemplate(t *testing.T) {
	idx := parse.Parse(scene, "player.tscn")
	f, err := eval.Compile(`kind == "Property"`)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := outlineTemplate(buf, idx.Symbols, f, "$[parent].$[name]@$[line+1]"); err != nil {
		t.Fatal(err)
	}
	want := "Player.script@5\nPlayer.shape@6\nPlayer.other@7\nPlayer.gone@8\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestWriteLinksJSON(t *testing.T) {
	cfg := testConfig()
	cfg.J = true
	buf := bytes.NewBuffer(nil)
	entries := []linkEntry{{Line: 2, Col: 21, Path: "res://player.gd", Missing: true}}
	if err := writeLinks(cfg, buf, entries); err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "line": 2,
    "col": 21,
    "path": "res://player.gd",
    "missing": true
  }
]
`
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteDiff(t *testing.T) {
	a := parse.Parse("[resource]\nx = 1", "a.tres")
	b := parse.Parse("[resource]\ny = 1", "a.tres")
	buf := bytes.NewBuffer(nil)
	if err := writeDiff(testConfig(), buf, libdiff.Diff(a.Symbols, b.Symbols), -1); err != nil {
		t.Fatal(err)
	}
	want := " [resource]\n-resource > x\n+resource > y\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestFormatFlags(t *testing.T) {
	cfg := testConfig()
	if !cfg.format().IsText() {
		t.Errorf("default format %s", cfg.format())
	}
	cfg.Y = true
	if !cfg.format().IsYAML() {
		t.Errorf("got %s", cfg.format())
	}
	j := format.JSONFormat
	cfg.OutFormat = &j
	if !cfg.format().IsJSON() {
		t.Errorf("got %s", cfg.format())
	}
}
