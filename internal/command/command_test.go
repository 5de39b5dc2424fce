package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExactPhrases(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind Kind
	}{
		{"list nicknames", "لیست لقب", KindListNicknames},
		{"delete nickname", "حذف لقب", KindDeleteNickname},
		{"capture original", "ثبت اصل", KindCaptureOriginal},
		{"replay original", "اصل", KindReplayOriginal},
		{"list originals", "لیست اصل", KindListOriginals},
		{"delete original", "حذف اصل", KindDeleteOriginal},
		{"set manager", "تنظیم مدیر", KindSetManager},
		{"translate fa", "ترجمه فارسی", KindTranslateFa},
		{"translate en", "ترجمه انگلیسی", KindTranslateEn},
		{"today", "امروز", KindCalendar},
		{"calendar", "تقویم", KindCalendar},
		{"tag", "تگ", KindTagManagers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Classify(tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, cmd.Kind)
			assert.Empty(t, cmd.Arg)
		})
	}
}

func TestClassifyBanAliases(t *testing.T) {
	for _, text := range []string{"سیک", "بن", "ban", "sik", "BAN", "Sik"} {
		cmd, ok := Classify(text)
		assert.True(t, ok, "alias %q", text)
		assert.Equal(t, KindBan, cmd.Kind, "alias %q", text)
	}

	// Only the ban aliases are case-insensitive; exact phrases with extra
	// words are not commands.
	_, ok := Classify("ban hammer")
	assert.False(t, ok)
}

func TestClassifyPrefixArgumentLaw(t *testing.T) {
	// Prefix alone: command with empty argument.
	cmd, ok := Classify("اکو")
	assert.True(t, ok)
	assert.Equal(t, KindEcho, cmd.Kind)
	assert.Equal(t, "", cmd.Arg)

	// Prefix plus space plus remainder: remainder is the argument.
	cmd, ok = Classify("اکو hello")
	assert.True(t, ok)
	assert.Equal(t, KindEcho, cmd.Kind)
	assert.Equal(t, "hello", cmd.Arg)

	// Glued remainder is not this command at all, not an empty argument.
	_, ok = Classify("اکوbad")
	assert.False(t, ok)

	// Prefix not at position 0 is not a command.
	_, ok = Classify("بگو اکو hello")
	assert.False(t, ok)
}

func TestClassifySetNicknameArgument(t *testing.T) {
	cmd, ok := Classify("تنظیم لقب کاپیتان")
	assert.True(t, ok)
	assert.Equal(t, KindSetNickname, cmd.Kind)
	assert.Equal(t, "کاپیتان", cmd.Arg)

	// Multi-word arguments survive with inner spacing normalized.
	cmd, ok = Classify("  تنظیم   لقب    ناخدای    بزرگ ")
	assert.True(t, ok)
	assert.Equal(t, KindSetNickname, cmd.Kind)
	assert.Equal(t, "ناخدای بزرگ", cmd.Arg)

	// Phrase alone: empty argument (the handler asks for the text).
	cmd, ok = Classify("تنظیم لقب")
	assert.True(t, ok)
	assert.Equal(t, KindSetNickname, cmd.Kind)
	assert.Equal(t, "", cmd.Arg)
}

func TestClassifyNormalizesWhitespace(t *testing.T) {
	cmd, ok := Classify("  لیست\t\tلقب \n")
	assert.True(t, ok)
	assert.Equal(t, KindListNicknames, cmd.Kind)
}

func TestClassifyNotACommand(t *testing.T) {
	for _, text := range []string{"", "   ", "سلام", "لیست", "اصل کاری", "تنظیم", "echo hi"} {
		_, ok := Classify(text)
		assert.False(t, ok, "text %q", text)
	}
}

// Classifying the same text twice always yields the same result — the
// classifier is a pure function of the text.
func TestClassifyIdempotent(t *testing.T) {
	for _, text := range []string{"اصل", "اکو سلام", "تنظیم لقب x", "سلام دنیا", "ban"} {
		first, okFirst := Classify(text)
		second, okSecond := Classify(text)
		assert.Equal(t, okFirst, okSecond)
		assert.Equal(t, first, second)
	}
}

// Every classifiable text must also satisfy IsCommand: the passive
// nickname notice is suppressed for any recognized command, with no
// separate list to drift out of sync.
func TestIsCommandMatchesClassify(t *testing.T) {
	texts := []string{
		"تنظیم لقب x", "تنظیم لقب", "لیست لقب", "حذف لقب",
		"ثبت اصل", "اصل", "لیست اصل", "حذف اصل",
		"اکو", "اکو متن", "سیک", "بن", "ban", "sik",
		"تنظیم مدیر", "ترجمه فارسی", "ترجمه انگلیسی",
		"امروز", "تقویم", "تگ",
		"not a command", "",
	}
	for _, text := range texts {
		_, ok := Classify(text)
		assert.Equal(t, ok, IsCommand(text), "text %q", text)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "a b c", Normalize(" a\t b \n c "))
}
