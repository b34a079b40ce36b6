// Package token provides the lexical layer for Godot's text scene and
// resource format (.tscn, .tres).
//
// [Source] splits a document into lines addressed by [Pos] values.
// [LexString] consumes a double quoted string literal, possibly spanning
// several lines, and [Unescape] and [Quote] convert between escaped and
// plain text.
package token
