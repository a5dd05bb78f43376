package names

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput                 = errors.New("empty or whitespace input")
	ErrPartOverflow               = errors.New("part number exceeds 9 digits")
	ErrMalformedPartPrefix        = errors.New("malformed part prefix")
	ErrUnterminatedAttributeBlock = errors.New("unterminated attribute block")
	ErrMalformedAttributeToken    = errors.New("malformed attribute token")
	ErrMissingAssignment          = errors.New("attribute token is missing '='")
	ErrInvalidAttributeValue      = errors.New("invalid attribute value")
	ErrSuffixAttributeAdjacency   = errors.New("suffix must immediately follow the attribute block")
	ErrInvalidDateComponent       = errors.New("invalid date component")
	ErrInvalidRuleWidth           = errors.New("part width must be between 1 and 9")
	ErrInvalidRuleDelimiter       = errors.New("invalid rule delimiter")
	ErrInvalidDateFormat          = errors.New("unknown date format")
)

// ParseError reports where in the input a parse failed. Err is always one of
// the package sentinels, so callers match with errors.Is.
type ParseError struct {
	Input  string
	Offset int
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("parse %q at %d: %v: %s", e.Input, e.Offset, e.Err, e.Detail)
	}
	return fmt.Sprintf("parse %q at %d: %v", e.Input, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(input string, offset int, err error, detail string) *ParseError {
	return &ParseError{Input: input, Offset: offset, Detail: detail, Err: err}
}

// rebase makes a ParseError produced on a substring point into the full input.
func rebase(err error, input string, base int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return &ParseError{Input: input, Offset: base + pe.Offset, Detail: pe.Detail, Err: pe.Err}
	}
	return err
}
