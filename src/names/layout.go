package names

import (
	"strconv"
	"strings"
)

// Span is a half-open byte range [Start, End) of a string.
type Span struct {
	Start int
	End   int
}

// Of returns the part of s covered by the span.
func (sp Span) Of(s string) string { return s[sp.Start:sp.End] }

func (sp Span) Len() int { return sp.End - sp.Start }

// Layout describes where the title, attribute body and suffix sit in a name.
// Attributes excludes the start and end delimiters; Suffix includes its
// leading delimiter.
type Layout struct {
	Title         Span
	Attributes    Span
	Suffix        Span
	HasAttributes bool
	HasSuffix     bool
}

// FindParts splits s into title, attributes and suffix.
//
// The attribute block runs from the first attribute start to the next
// attribute end. With a block present, whatever follows it must begin with
// the suffix delimiter and is the suffix in full; delimiters inside the title
// or the block never start a suffix. Without a block the suffix starts at the
// last suffix delimiter.
func FindParts(s string, r *Rules) (Layout, error) {
	r = orDefault(r)
	d := r.delims

	open := strings.IndexByte(s, d.AttributeStart)
	if open < 0 {
		dot := strings.LastIndexByte(s, d.Suffix)
		if dot < 0 {
			return Layout{Title: Span{0, len(s)}}, nil
		}
		return Layout{
			Title:     Span{0, dot},
			Suffix:    Span{dot, len(s)},
			HasSuffix: true,
		}, nil
	}

	closeAt := strings.IndexByte(s[open+1:], d.AttributeEnd)
	if closeAt < 0 {
		return Layout{}, parseErr(s, open, ErrUnterminatedAttributeBlock, "")
	}
	closeAt += open + 1

	l := Layout{
		Title:         Span{0, open},
		Attributes:    Span{open + 1, closeAt},
		HasAttributes: true,
	}
	tail := closeAt + 1
	if tail == len(s) {
		return l, nil
	}
	if s[tail] != d.Suffix {
		return Layout{}, parseErr(s, tail, ErrSuffixAttributeAdjacency, "found "+strconv.QuoteRune(rune(s[tail])))
	}
	l.Suffix = Span{tail, len(s)}
	l.HasSuffix = true
	return l, nil
}
