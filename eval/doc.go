// Package eval filters outline symbols with expressions and expands
// $[expr] references in output templates.
//
// Expressions use the expr language and see one symbol at a time through
// these variables:
//
//	kind      "Section", "Property" or "Array"
//	name      symbol name
//	detail    symbol detail
//	tag       header tag of a section
//	id        numeric id of a resource section, 0 otherwise
//	line      zero based start line
//	endLine   zero based end line
//	depth     nesting depth, 0 at the top level
//	parent    name of the enclosing symbol, "" at the top level
//	children  number of direct children
//
// and the functions basename(path) and ext(path).
package eval
