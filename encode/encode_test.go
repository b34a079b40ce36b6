package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/gdres/format"
	"github.com/signadot/gdres/parse"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

const resource = `[gd_resource type="Resource" load_steps=2 format=2]
[ext_resource path="res://a.png" type="Texture" id=1]
[resource]
icon = ExtResource( 1 )
tex[0] = "a" ; first`

func TestEncodeText(t *testing.T) {
	idx := parse.Parse(resource, "items/a.tres")
	want := strings.Join([]string{
		"[a.tres]: Resource",
		"[res://a.png]: Texture",
		"[resource]",
		"  icon",
		"  tex[]",
		"    tex[0]",
	}, "\n")
	if got := MustString(idx.Symbols); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeRanges(t *testing.T) {
	idx := parse.Parse("[resource]\nicon = 1", "a.tres")
	want := "[resource] @0:0-1:8\n    icon @1:0-1:8"
	if got := MustString(idx.Symbols, EncodeRanges(true), Indent(4)); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeJSON(t *testing.T) {
	idx := parse.Parse("[resource]\nicon = 1", "a.tres")
	buf := bytes.NewBuffer(nil)
	if err := Encode(idx.Symbols, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "kind": "Section",
    "name": "resource",
    "tag": "resource",
    "children": [
      {
        "kind": "Property",
        "name": "icon"
      }
    ]
  }
]
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeStructured(t *testing.T) {
	idx := parse.Parse(resource, "a.tres")
	want := Symbols(idx.Symbols, true)
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		buf := bytes.NewBuffer(nil)
		if err := Encode(idx.Symbols, buf, EncodeFormat(f), EncodeRanges(true), EncodeColors(NewColors())); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
			t.Errorf("%s: colored output", f)
		}
		var got []*Symbol
		var err error
		if f.IsJSON() {
			err = json.Unmarshal(buf.Bytes(), &got)
		} else {
			err = yaml.Unmarshal(buf.Bytes(), &got)
		}
		if err != nil {
			t.Fatalf("%s: %v\n%s", f, err, buf.String())
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", f, diff)
		}
	}
}

func TestEncodeTokens(t *testing.T) {
	idx := parse.Parse(resource, "a.tres")
	buf := bytes.NewBuffer(nil)
	if err := EncodeTokens(idx.Strings, buf); err != nil {
		t.Fatal(err)
	}
	if err := EncodeTokens(idx.Comments, buf); err != nil {
		t.Fatal(err)
	}
	want := "4:9-4:12 \"a\"\n4:13-4:20 ; first\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	idx := parse.Parse("[resource]\nicon = 1", "a.tres")
	got := MustString(idx.Symbols, EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no color in %q", got)
	}
	if !strings.Contains(got, "resource") || !strings.Contains(got, "icon") {
		t.Errorf("missing names in %q", got)
	}
}

func TestEncodeValueText(t *testing.T) {
	if err := EncodeValue(1, bytes.NewBuffer(nil)); err == nil {
		t.Errorf("expected error encoding a value as text")
	}
}
