// Package cellparse turns loosely formatted spreadsheet cells into typed
// values. Every function is total: malformed input yields the absent value
// (nil or false), never an error.
package cellparse

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/riskibarqy/football-stats/internal/platform/sheet"
)

// Number parses locale-formatted numbers such as "1.234,5" or " 0,37 ".
// A '.' followed by exactly three digits is a thousands separator, the first
// ',' is the decimal separator. Numeric cells pass through untouched.
func Number(v sheet.Value) *float64 {
	switch v.Kind {
	case sheet.KindNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return nil
		}
		n := v.Number
		return &n
	case sheet.KindText:
		return parseNumberText(v.Text)
	default:
		return nil
	}
}

// Int is Number rounded to the nearest integer, halves away from zero.
func Int(v sheet.Value) *int {
	n := Number(v)
	if n == nil {
		return nil
	}
	rounded := math.Round(*n)
	if rounded > math.MaxInt32 || rounded < math.MinInt32 {
		return nil
	}
	out := int(rounded)
	return &out
}

// Present reports whether the cell holds anything other than whitespace.
func Present(v sheet.Value) bool {
	if v.IsEmpty() {
		return false
	}
	return strings.TrimSpace(v.String()) != ""
}

// Text returns the trimmed cell text, or nil for empty cells.
func Text(v sheet.Value) *string {
	if !Present(v) {
		return nil
	}
	s := strings.TrimSpace(v.String())
	return &s
}

// String is Text without the pointer; empty cells give "".
func String(v sheet.Value) string {
	if s := Text(v); s != nil {
		return *s
	}
	return ""
}

func parseNumberText(raw string) *float64 {
	var compact strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		compact.WriteRune(r)
	}
	s := compact.String()
	if s == "" {
		return nil
	}

	s = dropThousandsDots(s)
	s = strings.Replace(s, ",", ".", 1)

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// dropThousandsDots removes every '.' that is followed by exactly three
// digits and then a non-word character or the end of input.
func dropThousandsDots(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '.' && i+3 < len(s) && isDigit(s[i+1]) && isDigit(s[i+2]) && isDigit(s[i+3]) &&
			(i+4 == len(s) || !isWordByte(s[i+4])) {
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return isDigit(b) || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
