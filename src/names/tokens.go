package names

import (
	"iter"
	"strings"
)

// Tokens yields the substrings of s between occurrences of sep, left to right.
// Empty tokens between adjacent separators and a trailing empty token are
// yielded too. Tokens share memory with s; breaking out of the loop ends the
// scan.
func Tokens(s string, sep byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			i := strings.IndexByte(s, sep)
			if i < 0 {
				yield(s)
				return
			}
			if !yield(s[:i]) {
				return
			}
			s = s[i+1:]
		}
	}
}

// ForEachToken calls visit for every token of s as split by sep until visit
// returns false.
func ForEachToken(s string, sep byte, visit func(token string) bool) {
	for tok := range Tokens(s, sep) {
		if !visit(tok) {
			return
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// digitRun returns the index of the first non-digit at or after from.
func digitRun(s string, from int) int {
	for from < len(s) && isDigit(s[from]) {
		from++
	}
	return from
}

// atoi parses a run of ASCII digits already known to be short enough to fit.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
