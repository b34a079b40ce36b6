// Package libdiff compares the outlines of two documents, either as a
// line diff of their rendered symbols or as a JSON merge patch between
// their outline trees.
package libdiff
