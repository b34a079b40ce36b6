package token

import (
	"errors"
	"strings"
	"testing"
)

type lexTest struct {
	in    string
	start Pos
	out   string
	end   Pos
}

func TestLexString(t *testing.T) {
	lts := []lexTest{
		{in: `"abc"`, out: "abc", end: Pos{0, 5}},
		{in: `x = "a\"b" y`, start: Pos{0, 4}, out: `a"b`, end: Pos{0, 10}},
		{in: "\"ab\ncd\"", out: "ab\ncd", end: Pos{1, 3}},
		{in: "\"ab\r\ncd\"", out: "ab\ncd", end: Pos{1, 3}},
		{in: "\"ab\\\ncd\"", out: "abcd", end: Pos{1, 3}},
		{in: "\"\n\n\"", out: "\n\n", end: Pos{2, 1}},
		{in: `"\n\t\r\b\f\\\"\u00e9\q"`, out: "\n\t\r\b\f\\\"\u00e9q", end: Pos{0, 24}},
		{in: `"\ud83d\ude00"`, out: "\U0001F600", end: Pos{0, 14}},
		{in: `"\u12"`, out: "u12", end: Pos{0, 6}},
		{in: `"\∞"`, out: "∞", end: Pos{0, 6}},
		{in: `""`, out: "", end: Pos{0, 2}},
	}
	for _, lt := range lts {
		tok, end, err := LexString(NewSource(lt.in), lt.start)
		if err != nil {
			t.Errorf("%q: %v", lt.in, err)
			continue
		}
		if tok.Value != lt.out {
			t.Errorf("%q: got %q want %q", lt.in, tok.Value, lt.out)
		}
		if end != lt.end || tok.Range.End != lt.end {
			t.Errorf("%q: got end %s want %s", lt.in, end, lt.end)
		}
		if tok.Range.Start != lt.start {
			t.Errorf("%q: got start %s want %s", lt.in, tok.Range.Start, lt.start)
		}
	}
}

func TestLexStringSpan(t *testing.T) {
	for k := 0; k < 5; k++ {
		lines := make([]string, k+1)
		for i := range lines {
			lines[i] = strings.Repeat("x", i+1)
		}
		in := `key = "` + strings.Join(lines, "\n") + `" # tail`
		src := NewSource(in)
		tok, _, err := LexString(src, Pos{0, 6})
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		want := Range{Start: Pos{0, 6}, End: Pos{k, len(lines[k]) + 1}}
		if k == 0 {
			want.End.Col += 7
		}
		if tok.Range != want {
			t.Errorf("k=%d: got %s want %s", k, tok.Range, want)
		}
		if got := src.Text(tok.Range); got != `"`+strings.Join(lines, "\n")+`"` {
			t.Errorf("k=%d: range text %q", k, got)
		}
	}
}

func TestLexStringUnterminated(t *testing.T) {
	for _, in := range []string{`"abc`, "\"abc\ndef", "\"abc\\\"", "\"abc\\"} {
		tok, _, err := LexString(NewSource(in), Pos{})
		if !errors.Is(err, ErrUnterminated) {
			t.Errorf("%q: got err %v", in, err)
		}
		if tok != nil {
			t.Errorf("%q: got token %v", in, tok)
		}
	}
	_, _, err := LexString(NewSource("abc"), Pos{})
	if !errors.Is(err, ErrNotString) {
		t.Errorf("got %v want %v", err, ErrNotString)
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, esc := range []string{
		`line\nbreak`,
		`tab\there`,
		`say \"hi\"`,
		`back\\slash`,
		`caf\u00e9`,
		`all\n\t\"\\\u00e9`,
		"plain",
		"",
	} {
		v := Unescape(esc)
		q := Quote(v)
		tok, _, err := LexString(NewSource(q), Pos{})
		if err != nil {
			t.Errorf("%q: %v", q, err)
			continue
		}
		if tok.Value != v {
			t.Errorf("unescape(quote(%q)) = %q", v, tok.Value)
		}
		if Unescape(q[1:len(q)-1]) != v {
			t.Errorf("Unescape(%q) != %q", q, v)
		}
	}
	if got := Quote("plain text"); got != `"plain text"` {
		t.Errorf("got %s", got)
	}
	if got := Unescape("plain text"); got != "plain text" {
		t.Errorf("got %s", got)
	}
	if got := Quote("\x01"); got != `"\u0001"` {
		t.Errorf("got %s", got)
	}
}
