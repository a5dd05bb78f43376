package names

import (
	"fmt"
	"strconv"
	"time"
)

// Precision is how many leading fields of yyyy-MM-ddTHH-mm-ss a date carries.
type Precision int

const (
	PrecisionYear Precision = iota + 1
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
)

var precisionFormats = [...]string{
	PrecisionYear:   "yyyy",
	PrecisionMonth:  "yyyy-MM",
	PrecisionDay:    "yyyy-MM-dd",
	PrecisionHour:   "yyyy-MM-ddTHH",
	PrecisionMinute: "yyyy-MM-ddTHH-mm",
	PrecisionSecond: "yyyy-MM-ddTHH-mm-ss",
}

var dateFieldNames = [...]string{"year", "month", "day", "hour", "minute", "second"}

// Local is the zone every parsed date is tagged with. Names carry no offset,
// so it is a fixed zone without daylight saving: the fields read back are
// always the fields written.
var Local = time.FixedZone("local", 0)

func (p Precision) String() string {
	if p < PrecisionYear || p > PrecisionSecond {
		return "Precision(" + strconv.Itoa(int(p)) + ")"
	}
	return precisionFormats[p]
}

// Len is the number of bytes a date of this precision occupies.
func (p Precision) Len() int { return 4 + 3*(int(p)-1) }

// ParsePrecision maps a template such as "yyyy-MM-dd" to its Precision.
func ParsePrecision(format string) (Precision, error) {
	for p := PrecisionYear; p <= PrecisionSecond; p++ {
		if precisionFormats[p] == format {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, format)
}

// Truncate drops every field finer than p, leaving the defaults the parser
// would fill in.
func (p Precision) Truncate(t time.Time) time.Time {
	f := [6]int{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()}
	defaults := [6]int{0, 1, 1, 0, 0, 0}
	for i := int(p); i < len(f); i++ {
		f[i] = defaults[i]
	}
	return time.Date(f[0], time.Month(f[1]), f[2], f[3], f[4], f[5], 0, t.Location())
}

// ParseDateTime reads a date/time fragment from the start of s and returns it
// together with the number of bytes consumed. Trailing fields that are not
// introduced by their delimiter are left at their defaults. The result is in
// Local.
func ParseDateTime(s string, r *Rules) (time.Time, int, error) {
	t, p, err := parseDateTime(s, orDefault(r))
	if err != nil {
		return time.Time{}, 0, err
	}
	return t, p.Len(), nil
}

func parseDateTime(s string, r *Rules) (time.Time, Precision, error) {
	if len(s) < 4 || digitRun(s[:4], 0) != 4 {
		return time.Time{}, 0, parseErr(s, 0, ErrInvalidDateComponent, "year needs 4 digits")
	}
	f := [6]int{atoi(s[:4]), 1, 1, 0, 0, 0}
	seps := [6]byte{0, r.delims.TimeUnit, r.delims.TimeUnit, r.delims.DateTime, r.delims.TimeUnit, r.delims.TimeUnit}

	p := PrecisionYear
	for i := 1; i < len(f); i++ {
		at := p.Len()
		if len(s) < at+3 || s[at] != seps[i] {
			break
		}
		v := s[at+1 : at+3]
		if !isDigit(v[0]) || !isDigit(v[1]) {
			return time.Time{}, 0, parseErr(s, at+1, ErrInvalidDateComponent, dateFieldNames[i]+" needs 2 digits")
		}
		f[i] = atoi(v)
		p++
	}

	if i, ok := checkCalendar(f); !ok {
		return time.Time{}, 0, parseErr(s, Precision(i).Len()+1, ErrInvalidDateComponent,
			fmt.Sprintf("%s %d out of range", dateFieldNames[i], f[i]))
	}
	return time.Date(f[0], time.Month(f[1]), f[2], f[3], f[4], f[5], 0, Local), p, nil
}

// checkCalendar returns the index of the first out of range field.
func checkCalendar(f [6]int) (int, bool) {
	switch {
	case f[1] < 1 || f[1] > 12:
		return 1, false
	case f[2] < 1 || f[2] > daysIn(f[0], f[1]):
		return 2, false
	case f[3] > 23:
		return 3, false
	case f[4] > 59:
		return 4, false
	case f[5] > 59:
		return 5, false
	}
	return 0, true
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatDateTime writes t with precision p using the delimiters of r.
func FormatDateTime(t time.Time, p Precision, r *Rules) string {
	return string(appendDateTime(make([]byte, 0, p.Len()), t, p, orDefault(r)))
}

func appendDateTime(b []byte, t time.Time, p Precision, r *Rules) []byte {
	b = appendPadded(b, t.Year(), 4)
	f := [6]int{0, int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()}
	for i := 1; i < int(p) && i < len(f); i++ {
		if i == 3 {
			b = append(b, r.delims.DateTime)
		} else {
			b = append(b, r.delims.TimeUnit)
		}
		b = appendPadded(b, f[i], 2)
	}
	return b
}

// appendPadded writes n left-padded with zeros to at least width digits.
func appendPadded(b []byte, n, width int) []byte {
	var buf [20]byte
	d := strconv.AppendInt(buf[:0], int64(n), 10)
	for i := len(d); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, d...)
}
