package names

import (
	"cmp"
	"fmt"
	"strings"
)

// None marks an absent part level. Parsed part numbers are never negative.
const None = -1

// maxPartDigits keeps every part number inside an int32.
const maxPartDigits = 9

// Parts is the nested ordering prefix of a name, e.g. ~1~02~492.
type Parts struct {
	Top    int
	Mid    int
	Bottom int
}

// NoParts has every level absent.
var NoParts = Parts{Top: None, Mid: None, Bottom: None}

// Any reports whether at least one level is present.
func (p Parts) Any() bool { return p.Top >= 0 || p.Mid >= 0 || p.Bottom >= 0 }

// Validate rejects values the parser can never produce: negative numbers
// other than None, and a level set below an absent one.
func (p Parts) Validate() error {
	levels := [3]int{p.Top, p.Mid, p.Bottom}
	for i, v := range levels {
		if v < None {
			return fmt.Errorf("%w: level %d is %d", ErrMalformedPartPrefix, i+1, v)
		}
		if i > 0 && v != None && levels[i-1] == None {
			return fmt.Errorf("%w: level %d set without level %d", ErrMalformedPartPrefix, i+1, i)
		}
	}
	return nil
}

// Compare orders by Top, then Mid, then Bottom; None sorts first.
func (p Parts) Compare(o Parts) int {
	if c := cmp.Compare(p.Top, o.Top); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Mid, o.Mid); c != 0 {
		return c
	}
	return cmp.Compare(p.Bottom, o.Bottom)
}

// Format renders the present levels, each zero padded to the width r gives it.
func (p Parts) Format(r *Rules) string {
	return string(p.appendTo(nil, orDefault(r)))
}

func (p Parts) appendTo(b []byte, r *Rules) []byte {
	for _, lv := range [...]struct{ v, width int }{
		{p.Top, r.topDigits},
		{p.Mid, r.midDigits},
		{p.Bottom, r.bottomDigits},
	} {
		if lv.v < 0 {
			continue
		}
		b = append(b, r.delims.Part)
		b = appendPadded(b, lv.v, lv.width)
	}
	return b
}

// ParsePartPrefix reads up to three part levels from the start of s and
// returns them with the remainder of s. Levels fill top first: "~7 x" has
// Top 7. A delimiter not followed by a digit ends the prefix and is left in
// the remainder. One title delimiter directly after the prefix is consumed.
func ParsePartPrefix(s string, r *Rules) (Parts, string, error) {
	r = orDefault(r)
	p, i, err := parsePartPrefix(s, r)
	if err != nil {
		return NoParts, "", err
	}
	return p, s[i:], nil
}

func parsePartPrefix(s string, r *Rules) (Parts, int, error) {
	var levels [3]int
	n, i := 0, 0
	for ; n < len(levels); n++ {
		if i+1 >= len(s) || s[i] != r.delims.Part || !isDigit(s[i+1]) {
			break
		}
		end := digitRun(s, i+1)
		if end-(i+1) > maxPartDigits {
			return NoParts, 0, parseErr(s, i+1, ErrPartOverflow, s[i+1:end])
		}
		levels[n] = atoi(s[i+1 : end])
		i = end
	}
	for j := n; j < len(levels); j++ {
		levels[j] = None
	}
	if n > 0 && i < len(s) && s[i] == r.delims.Title {
		i++
	}
	return Parts{Top: levels[0], Mid: levels[1], Bottom: levels[2]}, i, nil
}

// hasPartPrefix reports whether s opens with at least one part level.
func hasPartPrefix(s string, r *Rules) bool {
	return len(s) > 1 && s[0] == r.delims.Part && isDigit(s[1])
}

func (p Parts) String() string {
	if !p.Any() {
		return "none"
	}
	var sb strings.Builder
	for i, v := range [...]int{p.Top, p.Mid, p.Bottom} {
		if i > 0 {
			sb.WriteByte('/')
		}
		if v == None {
			sb.WriteByte('-')
		} else {
			fmt.Fprint(&sb, v)
		}
	}
	return sb.String()
}
