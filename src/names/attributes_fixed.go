package names

import (
	"iter"
	"time"
)

// Attributes is the general purpose attribute schema:
//
//	a=Author b=Group d=DateTime f=Favourite p=Person t=Tags v=Variation z=1
//
// The zero value is EmptyAttributes and formats to nothing. A value built by
// NewAttributes, or one with any field set, always formats as a block, so a
// name can carry "{}". A zero DateTime means no date unless it was parsed
// from a d= value.
type Attributes struct {
	Author            string
	Group             string
	DateTime          time.Time
	Favourite         Favourite
	Person            string
	Tags              string
	Variation         string
	AttentionRequired bool

	block bool
	dated bool
}

// EmptyAttributes formats to the empty string.
var EmptyAttributes = Attributes{}

// NewAttributes returns attributes that render a block even while unpopulated.
func NewAttributes() Attributes { return Attributes{block: true} }

func (a Attributes) Empty() bool { return !a.block && a.unset() }

func (a Attributes) unset() bool {
	return a.Author == "" && a.Group == "" && !a.hasDate() && a.Favourite == FavNone &&
		a.Person == "" && a.Tags == "" && a.Variation == "" && !a.AttentionRequired
}

func (a Attributes) hasDate() bool { return a.dated || !a.DateTime.IsZero() }

// Compact returns EmptyAttributes when nothing is set, dropping a bare "{}".
func (a Attributes) Compact() Attributes {
	if a.unset() {
		return EmptyAttributes
	}
	return a
}

func (a Attributes) Fragments(r *Rules) iter.Seq[string] {
	r = orDefault(r)
	return func(yield func(string) bool) {
		frags := [...]struct {
			key byte
			set bool
			val func() string
		}{
			{'a', a.Author != "", func() string { return a.Author }},
			{'b', a.Group != "", func() string { return a.Group }},
			{'d', a.hasDate(), func() string { return FormatDateTime(a.DateTime, r.precision, r) }},
			{'f', a.Favourite != FavNone, func() string { return string([]byte{byte(a.Favourite)}) }},
			{'p', a.Person != "", func() string { return a.Person }},
			{'t', a.Tags != "", func() string { return a.Tags }},
			{'v', a.Variation != "", func() string { return a.Variation }},
			{'z', a.AttentionRequired, func() string { return "1" }},
		}
		for _, f := range frags {
			if f.set && !yield(string(f.key)+"="+f.val()) {
				return
			}
		}
	}
}

// Inherit fills every unset field of a from parent. Fields set on a win.
func (a Attributes) Inherit(parent Attributes) Attributes {
	out := a
	out.block = a.block || parent.block
	if out.Author == "" {
		out.Author = parent.Author
	}
	if out.Group == "" {
		out.Group = parent.Group
	}
	if !out.hasDate() {
		out.DateTime, out.dated = parent.DateTime, parent.dated
	}
	if out.Favourite == FavNone {
		out.Favourite = parent.Favourite
	}
	if out.Person == "" {
		out.Person = parent.Person
	}
	if out.Tags == "" {
		out.Tags = parent.Tags
	}
	if out.Variation == "" {
		out.Variation = parent.Variation
	}
	out.AttentionRequired = a.AttentionRequired || parent.AttentionRequired
	return out
}

func (a Attributes) String() string { return FormatAttributes(a, DefaultRules) }

// ParseAttributes parses an attribute body. A blank body yields
// EmptyAttributes. Unknown keys are skipped.
func ParseAttributes(body string, r *Rules) (Attributes, error) {
	r = orDefault(r)
	if isBlank(body) {
		return EmptyAttributes, nil
	}
	a := NewAttributes()
	err := parseAssignments(body, r, func(key byte, v string) error {
		var err error
		switch key {
		case 'a':
			a.Author = v
		case 'b':
			a.Group = v
		case 'd':
			a.DateTime, err = parseAttributeDate(v, r)
			a.dated = err == nil
		case 'f':
			a.Favourite, err = parseFavourite(v)
		case 'p':
			a.Person = v
		case 't':
			a.Tags = v
		case 'v':
			a.Variation = v
		case 'z':
			a.AttentionRequired = true
		}
		return err
	})
	if err != nil {
		return EmptyAttributes, err
	}
	return a, nil
}
