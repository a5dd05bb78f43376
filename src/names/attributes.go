package names

import (
	"iter"
	"strconv"
	"time"
)

// AttributeSet is implemented by every attribute schema a Name can carry.
type AttributeSet interface {
	// Empty reports whether the set writes nothing at all, not even the
	// block delimiters.
	Empty() bool
	// Fragments yields one "k=v" fragment per populated attribute in
	// canonical order.
	Fragments(r *Rules) iter.Seq[string]
}

// AttributeParser parses the body of an attribute block, without its start
// and end delimiters.
type AttributeParser[A AttributeSet] func(body string, r *Rules) (A, error)

// FormatAttributes writes a as a complete attribute block.
func FormatAttributes(a AttributeSet, r *Rules) string {
	return string(appendAttributes(nil, a, orDefault(r)))
}

func appendAttributes(b []byte, a AttributeSet, r *Rules) []byte {
	if a.Empty() {
		return b
	}
	b = append(b, r.delims.AttributeStart)
	first := true
	for frag := range a.Fragments(r) {
		if !first {
			b = append(b, r.delims.Attribute)
		}
		b = append(b, frag...)
		first = false
	}
	return append(b, r.delims.AttributeEnd)
}

// parseAssignments walks the key=value tokens of body, handing each key and
// raw value to set. Values are taken verbatim; there is no escaping.
func parseAssignments(body string, r *Rules, set func(key byte, value string) error) error {
	var err error
	offset := 0
	ForEachToken(body, r.delims.Attribute, func(tok string) bool {
		switch {
		case len(tok) < 2:
			err = parseErr(body, offset, ErrMalformedAttributeToken, strconv.Quote(tok))
		case tok[1] != '=':
			err = parseErr(body, offset+1, ErrMissingAssignment, strconv.Quote(tok))
		default:
			if e := set(tok[0], tok[2:]); e != nil {
				err = rebase(e, body, offset+2)
			}
		}
		offset += len(tok) + 1
		return err == nil
	})
	return err
}

// Favourite is a three level rating stored as a single character.
type Favourite byte

const (
	FavNone      Favourite = 0
	FavLiked     Favourite = '1'
	FavFavourite Favourite = '2'
)

func parseFavourite(v string) (Favourite, error) {
	switch v {
	case "":
		return FavNone, nil
	case "1":
		return FavLiked, nil
	case "2":
		return FavFavourite, nil
	}
	return FavNone, parseErr(v, 0, ErrInvalidAttributeValue, "favourite must be '1' or '2', got "+strconv.Quote(v))
}

// parseAttributeDate requires the whole value to be a date fragment.
func parseAttributeDate(v string, r *Rules) (time.Time, error) {
	t, p, err := parseDateTime(v, r)
	if err != nil {
		return time.Time{}, err
	}
	if p.Len() != len(v) {
		return time.Time{}, parseErr(v, p.Len(), ErrInvalidDateComponent, "unexpected "+strconv.Quote(v[p.Len():]))
	}
	return t, nil
}
