// Package names parses and formats filenames that carry their own metadata:
//
//	~1~02~492 Title{a=Author;d=2002-12-25;f=1}.suffix
//	2020-05-15T20 Title.suffix
//
// A name is made of an optional prefix (nested part numbers or a date), a
// title, an optional attribute block and a suffix. Every delimiter and width
// comes from a Rules value, and formatting a parsed name under the same Rules
// gives back a name that parses to the same value.
package names
