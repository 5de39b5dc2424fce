// Package command classifies raw message text against the fixed set of
// Persian bot commands.
//
// The command set is data, not control flow: a single ordered table of
// (matcher, kind) rules is evaluated once per message, so adding a command
// never touches the dispatch logic. The same table backs both Classify and
// the IsCommand predicate that suppresses the passive nickname notice —
// the two can never disagree.
package command

import "strings"

// Kind identifies one classified command.
type Kind int

const (
	KindNone Kind = iota
	KindSetNickname
	KindListNicknames
	KindDeleteNickname
	KindCaptureOriginal
	KindReplayOriginal
	KindListOriginals
	KindDeleteOriginal
	KindEcho
	KindBan
	KindSetManager
	KindTranslateFa
	KindTranslateEn
	KindCalendar
	KindTagManagers
)

// Command is the classification result. Arg is only meaningful for the
// prefix-shaped commands (set-nickname, echo) and may be empty.
type Command struct {
	Kind Kind
	Arg  string
}

// Command phrases. The ban aliases are the only case-insensitive ones.
const (
	PhraseSetNickname     = "تنظیم لقب"
	PhraseListNicknames   = "لیست لقب"
	PhraseDeleteNickname  = "حذف لقب"
	PhraseCaptureOriginal = "ثبت اصل"
	PhraseReplayOriginal  = "اصل"
	PhraseListOriginals   = "لیست اصل"
	PhraseDeleteOriginal  = "حذف اصل"
	PhraseEcho            = "اکو"
	PhraseSetManager      = "تنظیم مدیر"
	PhraseTranslateFa     = "ترجمه فارسی"
	PhraseTranslateEn     = "ترجمه انگلیسی"
	PhraseToday           = "امروز"
	PhraseCalendar        = "تقویم"
	PhraseTag             = "تگ"
)

var banAliases = []string{"سیک", "بن", "ban", "sik"}

// rule matches normalized text and, when it wins, produces a Command.
type rule struct {
	match func(text string) (arg string, ok bool)
	kind  Kind
}

func exact(phrase string) func(string) (string, bool) {
	return func(text string) (string, bool) {
		return "", text == phrase
	}
}

func exactFold(phrases ...string) func(string) (string, bool) {
	return func(text string) (string, bool) {
		for _, p := range phrases {
			if strings.EqualFold(text, p) {
				return "", true
			}
		}
		return "", false
	}
}

// prefix matches the phrase alone (empty argument) or the phrase followed
// by a single space and the argument. A glued remainder ("اکوxyz") or the
// phrase appearing mid-text is not a match at all.
func prefix(phrase string) func(string) (string, bool) {
	return func(text string) (string, bool) {
		if text == phrase {
			return "", true
		}
		if rest, found := strings.CutPrefix(text, phrase+" "); found {
			return strings.TrimSpace(rest), true
		}
		return "", false
	}
}

// rules is evaluated in order; the first match wins. Prefix rules come
// after every exact phrase they could shadow.
var rules = []rule{
	{exact(PhraseListNicknames), KindListNicknames},
	{exact(PhraseDeleteNickname), KindDeleteNickname},
	{prefix(PhraseSetNickname), KindSetNickname},
	{exact(PhraseCaptureOriginal), KindCaptureOriginal},
	{exact(PhraseListOriginals), KindListOriginals},
	{exact(PhraseDeleteOriginal), KindDeleteOriginal},
	{exact(PhraseReplayOriginal), KindReplayOriginal},
	{prefix(PhraseEcho), KindEcho},
	{exactFold(banAliases...), KindBan},
	{exact(PhraseSetManager), KindSetManager},
	{exact(PhraseTranslateFa), KindTranslateFa},
	{exact(PhraseTranslateEn), KindTranslateEn},
	{exact(PhraseToday), KindCalendar},
	{exact(PhraseCalendar), KindCalendar},
	{exact(PhraseTag), KindTagManagers},
}

// Normalize collapses whitespace runs to single spaces and trims. Every
// matcher sees normalized text only.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Classify returns the command the text encodes, or ok=false when the text
// is not a recognized command. Pure function of the text.
func Classify(text string) (Command, bool) {
	t := Normalize(text)
	if t == "" {
		return Command{}, false
	}
	for _, r := range rules {
		if arg, ok := r.match(t); ok {
			return Command{Kind: r.kind, Arg: arg}, true
		}
	}
	return Command{}, false
}

// IsCommand reports whether the text is any recognized command. Used to
// keep the passive nickname notice from firing on command messages.
func IsCommand(text string) bool {
	_, ok := Classify(text)
	return ok
}
