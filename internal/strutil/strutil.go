// Package strutil contains string scanning and formatting helpers shared by the decoder and the encoder.
package strutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mu "github.com/avdva/ieee754/internal/mathutil"
)

const (
	delim = '.'

	// numbers in [minPlain, maxPlain) are printed without an exponent.
	minPlain = 1e-6
	maxPlain = 1e21
)

var (
	superscriptDigits = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}
)

// SyntaxError describes a malformed decimal string.
// Pos is 1-based.
type SyntaxError struct {
	Pos int
	Msg string
}

func newSyntaxError(msg string, pos int) *SyntaxError {
	return &SyntaxError{Msg: msg, Pos: pos + 1}
}

func (se SyntaxError) Error() string {
	return se.Msg + fmt.Sprintf(" at pos %d", se.Pos)
}

// ScanDecimal checks that s matches -?\d+(\.\d*)?([Ee][+-]?\d+)?
func ScanDecimal(s string) error {
	if len(s) == 0 {
		return newSyntaxError("empty input", -1)
	}
	i := 0
	if s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return unexpected(s, i, "digit")
	}
	if i < len(s) && s[i] == delim {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return unexpected(s, i, "exponent digit")
		}
	}
	if i != len(s) {
		return newSyntaxError(fmt.Sprintf("unexpected symbol %q", s[i]), i)
	}
	return nil
}

func unexpected(s string, i int, what string) error {
	if i >= len(s) {
		return newSyntaxError("unexpected end of input, want "+what, i)
	}
	return newSyntaxError(fmt.Sprintf("unexpected symbol %q, want %s", s[i], what), i)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// FormatNumber prints f the way JavaScript's Number.prototype.toString does:
// the shortest digit string that round-trips, with an exponent only outside of [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0: // -0 included
		return "0"
	}
	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
		f = -f
	}
	digits, n := shortestDigits(f)
	k := len(digits)
	switch {
	case f >= minPlain && f < maxPlain && n >= k:
		b.WriteString(digits)
		b.WriteString(zeroStr(n - k))
	case f >= minPlain && f < maxPlain && n > 0:
		b.WriteString(digits[:n])
		b.WriteByte(delim)
		b.WriteString(digits[n:])
	case f >= minPlain && f < maxPlain:
		b.WriteString("0.")
		b.WriteString(zeroStr(-n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte(delim)
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(mu.AbsInt(n - 1)))
	}
	return b.String()
}

// shortestDigits returns such (digits, n), that f == 0.digits * 10^n,
// and digits is the shortest string that parses back into f.
func shortestDigits(f float64) (digits string, n int) {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	ePos := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[ePos+1:])
	mantissa := s[:ePos]
	if len(mantissa) > 1 {
		digits = mantissa[:1] + mantissa[2:]
	} else {
		digits = mantissa
	}
	return digits, exp + 1
}

// TrimTrailingZeros removes trailing '0' characters, returning "0" if nothing remains.
func TrimTrailingZeros(s string) string {
	s = strings.TrimRight(s, "0")
	if len(s) == 0 {
		return "0"
	}
	return s
}

// Superscript renders n with unicode superscript digits, like 2⁻¹²⁶.
func Superscript(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteString("⁻")
	}
	for _, r := range strconv.Itoa(mu.AbsInt(n)) {
		b.WriteString(superscriptDigits[r-'0'])
	}
	return b.String()
}

func zeroStr(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat("0", count)
}
