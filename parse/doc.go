// Package parse builds an [ir.Index] from the text of a Godot scene or
// resource in a single forward pass.
//
// Each step looks at the text under a line/column cursor.  At the start of
// a line it tries a section header and then a property assignment;
// anywhere it recognizes a blank or comment only line tail.  Everything
// else is consumed character by character: string literals through
// [token.LexString], blanks, and runs of other characters which extend the
// open property.  The scan never fails; an unterminated string ends it
// early with whatever structure was collected.
package parse
