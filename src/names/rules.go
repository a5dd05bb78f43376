package names

import (
	"fmt"
	"slices"
)

// Delimiters holds every single-byte separator used by the name grammar.
type Delimiters struct {
	Part           byte // precedes each part number: ~1~02~003
	TimeUnit       byte // between year, month, day and between hour, minute, second
	DateTime       byte // between the date and the time
	AttributeStart byte
	AttributeEnd   byte
	Attribute      byte // between key=value pairs
	Title          byte // between a prefix and the title
	Suffix         byte // starts the suffix
}

// DefaultDelimiters produce names like "~01~02 Title{a=Author;d=2020-01-02}.ext".
var DefaultDelimiters = Delimiters{
	Part:           '~',
	TimeUnit:       '-',
	DateTime:       'T',
	AttributeStart: '{',
	AttributeEnd:   '}',
	Attribute:      ';',
	Title:          ' ',
	Suffix:         '.',
}

// Rules parameterizes parsing and formatting. A Rules value is never modified
// after NewRules returns, so one instance can be shared between goroutines.
type Rules struct {
	topDigits    int
	midDigits    int
	bottomDigits int
	precision    Precision
	delims       Delimiters
}

// RuleOption configures a Rules during NewRules.
type RuleOption func(*Rules) error

// DefaultRules uses DefaultDelimiters, two digit parts and yyyy-MM-dd dates.
var DefaultRules = MustRules()

// NewRules builds a validated rule set. Options are applied in order on top
// of the defaults.
func NewRules(opts ...RuleOption) (*Rules, error) {
	r := &Rules{
		topDigits:    2,
		midDigits:    2,
		bottomDigits: 2,
		precision:    PrecisionDay,
		delims:       DefaultDelimiters,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if err := r.delims.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustRules is like NewRules but panics on invalid options.
func MustRules(opts ...RuleOption) *Rules {
	r, err := NewRules(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// WithPartDigits sets the minimum zero-padded width of each part level.
func WithPartDigits(top, mid, bottom int) RuleOption {
	return func(r *Rules) error {
		for _, w := range [...]struct {
			name  string
			width int
		}{{"top", top}, {"mid", mid}, {"bottom", bottom}} {
			if w.width < 1 || w.width > 9 {
				return fmt.Errorf("%w: %s part width %d", ErrInvalidRuleWidth, w.name, w.width)
			}
		}
		r.topDigits, r.midDigits, r.bottomDigits = top, mid, bottom
		return nil
	}
}

// WithDatePrecision sets how much of a date is written when formatting.
func WithDatePrecision(p Precision) RuleOption {
	return func(r *Rules) error {
		if p < PrecisionYear || p > PrecisionSecond {
			return fmt.Errorf("%w: precision %d", ErrInvalidDateFormat, p)
		}
		r.precision = p
		return nil
	}
}

// WithDateFormat is WithDatePrecision taking a template such as "yyyy-MM-dd".
func WithDateFormat(format string) RuleOption {
	return func(r *Rules) error {
		p, err := ParsePrecision(format)
		if err != nil {
			return err
		}
		r.precision = p
		return nil
	}
}

// WithDelimiters replaces every delimiter at once.
func WithDelimiters(d Delimiters) RuleOption {
	return func(r *Rules) error {
		r.delims = d
		return nil
	}
}

// TopDigits is the minimum width of the first part number.
func (r *Rules) TopDigits() int { return r.topDigits }

// MidDigits is the minimum width of the second part number.
func (r *Rules) MidDigits() int { return r.midDigits }

// BottomDigits is the minimum width of the third part number.
func (r *Rules) BottomDigits() int { return r.bottomDigits }

// DatePrecision is how much of a date Format writes when a name does not say.
func (r *Rules) DatePrecision() Precision { return r.precision }

// Delimiters returns the delimiter set in use.
func (r *Rules) Delimiters() Delimiters { return r.delims }

// DateFormat returns the date template matching DatePrecision.
func (r *Rules) DateFormat() string { return r.precision.String() }

func orDefault(r *Rules) *Rules {
	if r == nil {
		return DefaultRules
	}
	return r
}

func (d Delimiters) validate() error {
	all := [...]struct {
		name string
		c    byte
	}{
		{"part", d.Part},
		{"time unit", d.TimeUnit},
		{"date/time", d.DateTime},
		{"attribute start", d.AttributeStart},
		{"attribute end", d.AttributeEnd},
		{"attribute", d.Attribute},
		{"title", d.Title},
		{"suffix", d.Suffix},
	}
	for _, f := range all {
		if f.c < ' ' || f.c > '~' || isDigit(f.c) {
			return fmt.Errorf("%w: %s delimiter %q must be printable ASCII and not a digit", ErrInvalidRuleDelimiter, f.name, f.c)
		}
	}
	// These bound the structural regions of a name and may not be confused.
	structural := []byte{d.Part, d.AttributeStart, d.AttributeEnd, d.Attribute, d.Suffix}
	for i, c := range structural {
		if c == '=' {
			return fmt.Errorf("%w: '=' is reserved for attribute assignment", ErrInvalidRuleDelimiter)
		}
		if slices.Contains(structural[i+1:], c) {
			return fmt.Errorf("%w: %q used for more than one structural delimiter", ErrInvalidRuleDelimiter, c)
		}
	}
	// A title delimiter equal to one of these would be read as the separator
	// after a prefix.
	if slices.Contains([]byte{d.Part, d.AttributeStart, d.Suffix}, d.Title) {
		return fmt.Errorf("%w: title delimiter %q clashes with a structural delimiter", ErrInvalidRuleDelimiter, d.Title)
	}
	return nil
}
