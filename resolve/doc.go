// Package resolve answers what the text at a position of a parsed
// document refers to: an external res:// file, a section declaring an
// ExtResource or SubResource id, or the document itself.
//
// All functions are pure queries over a finished [ir.Index].
package resolve
