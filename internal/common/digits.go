// digits.go — Persian (Eastern Arabic) digit conversion for user-facing
// numbers and dates.
package common

import "strings"

var persianDigits = map[rune]rune{
	'0': '۰', '1': '۱', '2': '۲', '3': '۳', '4': '۴',
	'5': '۵', '6': '۶', '7': '۷', '8': '۸', '9': '۹',
}

// ToPersianDigits replaces every ASCII digit in s with its Persian form.
// Non-digit runes pass through unchanged.
func ToPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if p, ok := persianDigits[r]; ok {
			return p
		}
		return r
	}, s)
}
