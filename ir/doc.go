// Package ir holds the structural index built from a Godot text scene or
// resource: the outline of [Symbol] values, the string and comment
// tokens, and the ExtResource/SubResource tables.
//
// An [Index] is immutable once built and may be read concurrently.
package ir
