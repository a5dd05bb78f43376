package names

import (
	"strings"
	"time"
)

// Name is a parsed "Title{attributes}.suffix". Suffix keeps its leading
// delimiter. Names compare by Title only.
type Name[A AttributeSet] struct {
	Title      string
	Attributes A
	Suffix     string
}

// ParseName splits s into title, attributes and suffix, handing the attribute
// body to parse.
func ParseName[A AttributeSet](s string, r *Rules, parse AttributeParser[A]) (Name[A], error) {
	r = orDefault(r)
	if isBlank(s) {
		return Name[A]{}, parseErr(s, 0, ErrEmptyInput, "")
	}
	return parseBody(s, 0, r, parse)
}

// Parse is ParseName with the general purpose Attributes schema.
func Parse(s string, r *Rules) (Name[Attributes], error) {
	return ParseName[Attributes](s, r, ParseAttributes)
}

func parseBody[A AttributeSet](s string, from int, r *Rules, parse AttributeParser[A]) (Name[A], error) {
	rest := s[from:]
	l, err := FindParts(rest, r)
	if err != nil {
		return Name[A]{}, rebase(err, s, from)
	}
	n := Name[A]{Title: l.Title.Of(rest)}
	if l.HasSuffix {
		n.Suffix = l.Suffix.Of(rest)
	}
	if l.HasAttributes {
		a, err := parse(l.Attributes.Of(rest), r)
		if err != nil {
			return Name[A]{}, rebase(err, s, from+l.Attributes.Start)
		}
		n.Attributes = a
	}
	return n, nil
}

// Format writes n using r. It never fails.
func (n Name[A]) Format(r *Rules) string {
	return string(n.appendTo(nil, orDefault(r)))
}

func (n Name[A]) appendTo(b []byte, r *Rules) []byte {
	b = append(b, n.Title...)
	if n.Attributes.Empty() && n.needsBlock(r) {
		b = append(b, r.delims.AttributeStart, r.delims.AttributeEnd)
	} else {
		b = appendAttributes(b, n.Attributes, r)
	}
	return append(b, n.Suffix...)
}

// needsBlock reports whether title and suffix would split somewhere else if
// written without an attribute block. Without one the suffix starts at the
// last suffix delimiter.
func (n Name[A]) needsBlock(r *Rules) bool {
	if n.Suffix == "" {
		return strings.IndexByte(n.Title, r.delims.Suffix) >= 0
	}
	return strings.IndexByte(n.Suffix[1:], r.delims.Suffix) >= 0
}

func (n Name[A]) String() string { return n.Format(DefaultRules) }

func (n Name[A]) Equal(o Name[A]) bool { return n.Title == o.Title }

func (n Name[A]) Compare(o Name[A]) int { return strings.Compare(n.Title, o.Title) }

// PartName is a Name led by nested part numbers: "~1~02~003 Title.ext".
// PartNames compare by their parts only.
type PartName[A AttributeSet] struct {
	Parts
	Name[A]
}

// ParsePartName reads an optional part prefix followed by a name. Input with
// no prefix parses with every level set to None.
func ParsePartName[A AttributeSet](s string, r *Rules, parse AttributeParser[A]) (PartName[A], error) {
	r = orDefault(r)
	if isBlank(s) {
		return PartName[A]{}, parseErr(s, 0, ErrEmptyInput, "")
	}
	parts, i, err := parsePartPrefix(s, r)
	if err != nil {
		return PartName[A]{}, err
	}
	n, err := parseBody(s, i, r, parse)
	if err != nil {
		return PartName[A]{}, err
	}
	return PartName[A]{Parts: parts, Name: n}, nil
}

func (p PartName[A]) Format(r *Rules) string {
	r = orDefault(r)
	b := p.Parts.appendTo(nil, r)
	if p.Title != "" && p.Parts.Any() {
		b = append(b, r.delims.Title)
	}
	return string(p.Name.appendTo(b, r))
}

func (p PartName[A]) String() string { return p.Format(DefaultRules) }

func (p PartName[A]) Equal(o PartName[A]) bool { return p.Parts == o.Parts }

func (p PartName[A]) Compare(o PartName[A]) int { return p.Parts.Compare(o.Parts) }

// DateName is a Name led by a date stamp: "2020-05-15 Title.ext". Precision
// records how much of the date was written so the name formats back the same.
type DateName[A AttributeSet] struct {
	Date      time.Time
	Precision Precision
	Name[A]
}

// ParseDateName requires s to open with a date fragment.
func ParseDateName[A AttributeSet](s string, r *Rules, parse AttributeParser[A]) (DateName[A], error) {
	r = orDefault(r)
	if isBlank(s) {
		return DateName[A]{}, parseErr(s, 0, ErrEmptyInput, "")
	}
	t, prec, err := parseDateTime(s, r)
	if err != nil {
		return DateName[A]{}, err
	}
	i := prec.Len()
	if i < len(s) && s[i] == r.delims.Title {
		i++
	}
	n, err := parseBody(s, i, r, parse)
	if err != nil {
		return DateName[A]{}, err
	}
	return DateName[A]{Date: t, Precision: prec, Name: n}, nil
}

// Format writes the date at the name's precision, or the precision of r when
// none is recorded.
func (d DateName[A]) Format(r *Rules) string {
	r = orDefault(r)
	p := d.Precision
	if p < PrecisionYear || p > PrecisionSecond {
		p = r.precision
	}
	b := appendDateTime(nil, d.Date, p, r)
	if d.Title != "" {
		b = append(b, r.delims.Title)
	}
	return string(d.Name.appendTo(b, r))
}

func (d DateName[A]) String() string { return d.Format(DefaultRules) }

func (d DateName[A]) Equal(o DateName[A]) bool {
	return d.Date.Equal(o.Date) && d.Title == o.Title
}

// Compare orders by date, then title.
func (d DateName[A]) Compare(o DateName[A]) int {
	if c := d.Date.Compare(o.Date); c != 0 {
		return c
	}
	return strings.Compare(d.Title, o.Title)
}
