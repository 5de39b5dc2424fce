// detect.go — script-based source language detection. The bot only ever
// translates between Persian and English, so the presence of any
// Arabic-script rune decides the source.
package translate

import "unicode"

// Language codes used with the translation API.
const (
	LangPersian = "fa"
	LangEnglish = "en"
)

// DetectSource returns "fa" when the text contains Arabic-script runes
// (Persian is written in Arabic script), otherwise "en". The stdlib Arabic
// range table covers the base block plus the supplement and extended
// blocks.
func DetectSource(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return LangPersian
		}
	}
	return LangEnglish
}
