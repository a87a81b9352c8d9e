package outline

import (
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// units are stripped from the end of a numeric token, longest first.
var units = []string{"em", "px", "cm", "mm", "in", "pt", "pc", "%"}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t'
}

// Tokenize splits a raw attribute string into numbers. Numbers may be separated by whitespace, commas or a minus sign that directly follows a digit, as in "10-5". Exponent signs ("1e-5") never split a number. A trailing unit in {em, px, %, cm, mm, in, pt, pc} is ignored.
// Tokenize never fails: a token that is not a number yields 0. Use ParsePath or Convert to receive a diagnostic for such tokens.
func Tokenize(raw string) []float64 {
	return tokenize(raw, nil)
}

// tokenize is Tokenize that reports malformed tokens to ds when not nil.
func tokenize(raw string, ds *diagnostics) []float64 {
	nums := []float64{}
	start := -1 // start of the current token
	flush := func(end int) {
		if start != -1 {
			if f, ok := parseToken(raw[start:end], ds); ok {
				nums = append(nums, f)
			}
			start = -1
		}
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isSeparator(c) {
			flush(i)
		} else if c == '-' && start != -1 && raw[i-1] != 'e' && raw[i-1] != 'E' {
			flush(i)
			start = i
		} else if start == -1 {
			start = i
		}
	}
	flush(len(raw))
	return nums
}

// parseToken converts a single token into a number, returning false for tokens that are empty once the unit is stripped.
func parseToken(tok string, ds *diagnostics) (float64, bool) {
	tok = stripUnit(strings.TrimSpace(tok))
	if tok == "" {
		return 0.0, false
	}
	f, n := strconv.ParseFloat([]byte(tok))
	if n == 0 || n != len(tok) {
		if ds != nil {
			ds.warn(MalformedNumber, "bad number %q, using 0", tok)
		}
		return 0.0, true
	} else if math.IsInf(f, 0) || math.IsNaN(f) {
		if ds != nil {
			ds.warn(MalformedNumber, "number %q out of range, using 0", tok)
		}
		return 0.0, true
	}
	return f, true
}

func stripUnit(tok string) string {
	for _, unit := range units {
		if len(unit) <= len(tok) && strings.EqualFold(tok[len(tok)-len(unit):], unit) {
			return tok[:len(tok)-len(unit)]
		}
	}
	return tok
}

// attrNumber returns the first number of an attribute. It returns false when the attribute is missing or holds no number.
func attrNumber(attrs map[string]string, name string, ds *diagnostics) (float64, bool) {
	v, ok := attrs[name]
	if !ok {
		return 0.0, false
	}
	nums := tokenize(v, ds)
	if len(nums) == 0 {
		return 0.0, false
	}
	return nums[0], true
}

// attrNumberOr returns the first number of an attribute or def when it is unset.
func attrNumberOr(attrs map[string]string, name string, def float64, ds *diagnostics) float64 {
	if f, ok := attrNumber(attrs, name, ds); ok {
		return f
	}
	return def
}
