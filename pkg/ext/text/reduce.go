package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/ib-77/extkit/pkg/ext"
)

// ReduceForDisplay shortens s to displayLength runes. displayLength includes
// the suffix, so it may not be smaller than the suffix itself. Inputs that
// already fit are returned as is, without the suffix. A blank suffix is not
// appended and does not shorten the cut.
func ReduceForDisplay(s string, displayLength int, suffix string) (string, error) {
	suffixLen := utf8.RuneCountInString(suffix)
	if displayLength < suffixLen {
		return "", ext.NewArgumentError("ReduceForDisplay", "displayLength", displayLength,
			"display length must include the suffix length")
	}

	runes := []rune(s)
	if displayLength >= len(runes) {
		return s, nil
	}

	if ext.IsBlank(suffix) {
		return string(runes[:displayLength]), nil
	}
	return string(runes[:displayLength-suffixLen]) + suffix, nil
}

// OnlyDigits keeps the decimal digits of s in their original order.
func OnlyDigits(s string) string {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	return string(digits)
}
