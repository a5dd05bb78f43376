package config

import (
	"fmt"

	"github.com/contre95/namer/src/names"
)

// Build turns the configured rules into a names.Rules.
func (r Rules) Build() (*names.Rules, error) {
	d := r.Delimiters
	delims, err := d.bytes()
	if err != nil {
		return nil, err
	}
	return names.NewRules(
		names.WithPartDigits(r.PartDigits.Top, r.PartDigits.Mid, r.PartDigits.Bottom),
		names.WithDateFormat(r.DateFormat),
		names.WithDelimiters(delims),
	)
}

func (d Delimiters) bytes() (names.Delimiters, error) {
	var out names.Delimiters
	for _, f := range []struct {
		name string
		src  string
		dst  *byte
	}{
		{"part", d.Part, &out.Part},
		{"time_unit", d.TimeUnit, &out.TimeUnit},
		{"date_time", d.DateTime, &out.DateTime},
		{"attribute_start", d.AttributeStart, &out.AttributeStart},
		{"attribute_end", d.AttributeEnd, &out.AttributeEnd},
		{"attribute", d.Attribute, &out.Attribute},
		{"title", d.Title, &out.Title},
		{"suffix", d.Suffix, &out.Suffix},
	} {
		if len(f.src) != 1 {
			return names.Delimiters{}, fmt.Errorf("%w: %s delimiter %q is not a single byte", names.ErrInvalidRuleDelimiter, f.name, f.src)
		}
		*f.dst = f.src[0]
	}
	return out, nil
}

// RulesFrom describes r in config form, the inverse of Rules.Build.
func RulesFrom(r *names.Rules) Rules {
	d := r.Delimiters()
	return Rules{
		PartDigits: PartDigits{Top: r.TopDigits(), Mid: r.MidDigits(), Bottom: r.BottomDigits()},
		DateFormat: r.DateFormat(),
		Delimiters: Delimiters{
			Part:           string(rune(d.Part)),
			TimeUnit:       string(rune(d.TimeUnit)),
			DateTime:       string(rune(d.DateTime)),
			AttributeStart: string(rune(d.AttributeStart)),
			AttributeEnd:   string(rune(d.AttributeEnd)),
			Attribute:      string(rune(d.Attribute)),
			Title:          string(rune(d.Title)),
			Suffix:         string(rune(d.Suffix)),
		},
	}
}
