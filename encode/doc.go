// Package encode renders outlines and token lists as indented text,
// optionally colored, or as JSON or YAML documents.
//
// # Usage
//
//	idx := parse.Parse(text, "main.tscn")
//	err := encode.Encode(idx.Symbols, os.Stdout,
//		encode.EncodeFormat(format.YAMLFormat),
//		encode.EncodeRanges(true))
package encode
