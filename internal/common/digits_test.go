package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPersianDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0123456789", "۰۱۲۳۴۵۶۷۸۹"},
		{"1403/01/01", "۱۴۰۳/۰۱/۰۱"},
		{"ساعت 15:30", "ساعت ۱۵:۳۰"},
		{"no digits", "no digits"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPersianDigits(tt.in))
	}
}
