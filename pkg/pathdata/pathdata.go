// Package pathdata implements tokenization and minification of SVG path
// data, the compact mini-language found in the d attribute of path
// elements.
//
// Path data consists of single-letter commands (M, L, C, ... and their
// lowercase relative forms) followed by numeric arguments. Numbers may
// carry a leading sign, a decimal point, and an e/E exponent marker.
//
// Minification rewrites every number at a fixed precision and drops every
// separator that is not required to keep the token stream unambiguous:
// command letters are self-delimiting, a number followed by a leading
// minus sign is unambiguous, and only two adjacent numbers where the
// second starts with a digit need a single separating space.
package pathdata

import (
	"strconv"
	"strings"
)

// Token is one lexical unit of SVG path data: either a command letter or
// a numeric argument.
type Token struct {
	// Cmd is the command letter, or 0 for a number token.
	Cmd byte

	// Raw is the original text of a number token, exactly as it
	// appeared in the input.
	Raw string

	// Value is the parsed numeric value. Only meaningful when Valid.
	Value float64

	// Valid reports whether Raw parsed as a floating-point number.
	// Malformed numeric text is carried through verbatim with Valid
	// false.
	Valid bool
}

// IsCommand reports whether the token is a command letter.
func (t Token) IsCommand() bool {
	return t.Cmd != 0
}

// IsRelative reports whether a command token is a relative (lowercase)
// command. It returns false for number tokens.
func (t Token) IsRelative() bool {
	return t.Cmd >= 'a' && t.Cmd <= 'z'
}

// isCommand reports whether c is one of the twenty SVG path command
// letters.
func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't',
		'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// isNumberStart reports whether c can begin a numeric token.
func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-'
}

// isNumberByte reports whether c can continue a numeric token once one
// has started. The set deliberately admits interior signs and repeated
// markers so that tolerant, non-strict grammars round-trip: text that
// fails to parse is passed through verbatim rather than rejected.
func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' || c == '-'
}

// Tokens scans s into its lexical units. Command letters become command
// tokens, numeric runs become number tokens (valid or not), and
// separators are discarded. Bytes that are neither are skipped; they do
// not occur in well-formed path data.
func Tokens(s string) []Token {
	var tokens []Token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isCommand(c):
			tokens = append(tokens, Token{Cmd: c})
			i++
		case isNumberStart(c):
			j := i + 1
			for j < len(s) && isNumberByte(s[j]) {
				j++
			}
			raw := s[i:j]
			v, err := strconv.ParseFloat(raw, 64)
			tokens = append(tokens, Token{Raw: raw, Value: v, Valid: err == nil})
			i = j
		default:
			i++
		}
	}
	return tokens
}

// Minify rewrites path data at the given precision (maximum number of
// fractional digits) and removes every redundant separator. The set of
// commands and their relative/absolute case are never changed.
//
// The transformation is idempotent: applying it twice at the same
// precision yields the same result as applying it once.
func Minify(s string, precision int) string {
	var out strings.Builder
	out.Grow(len(s))

	prevWasNumber := false
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isCommand(c):
			// Command letters are self-delimiting and never need
			// a preceding separator.
			out.WriteByte(c)
			prevWasNumber = false
			i++

		case isNumberStart(c):
			if prevWasNumber {
				out.WriteByte(' ')
			}
			j := i + 1
			for j < len(s) && isNumberByte(s[j]) {
				j++
			}
			raw := s[i:j]
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				out.WriteString(formatNumber(v, precision))
				prevWasNumber = true
			} else {
				// Malformed numeric text passes through verbatim
				// and is not a number for later spacing decisions.
				out.WriteString(raw)
				prevWasNumber = false
			}
			i = j

		case c == ' ' || c == ',':
			// Separators are never copied. A single space survives
			// only between a number and a following token that
			// starts with a digit or minus sign; before a command
			// letter or end-of-string the separator is dropped.
			// Once the space is emitted the pending-number flag is
			// cleared so the next number cannot add a second one.
			if prevWasNumber && i+1 < len(s) {
				next := s[i+1]
				if next >= '0' && next <= '9' || next == '-' {
					out.WriteByte(' ')
					prevWasNumber = false
				}
			}
			i++

		default:
			// Should not occur in valid path data.
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// formatNumber renders v with at most precision fractional digits,
// stripping trailing zeros and a trailing decimal point.
func formatNumber(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
