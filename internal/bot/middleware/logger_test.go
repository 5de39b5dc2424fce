package middleware

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, "سلام", truncate("سلام", 50))
		assert.Equal(t, "", truncate("", 50))
	})

	t.Run("exactly at the cap untouched", func(t *testing.T) {
		text := strings.Repeat("ب", 50)
		assert.Equal(t, text, truncate(text, 50))
	})

	t.Run("long Persian text stays valid UTF-8", func(t *testing.T) {
		// Each rune here is multi-byte; a byte-indexed cut would split one.
		text := strings.Repeat("لقب", 30)
		got := truncate(text, 50)

		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, 53, utf8.RuneCountInString(got)) // 50 runes + "..."
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		// 10 two-byte runes = 20 bytes, still under a 10-rune cap.
		text := strings.Repeat("ک", 10)
		assert.Equal(t, text, truncate(text, 10))
	})
}
