// messages.go collects the Persian reply strings that are reused by more
// than one feature. Feature-specific texts stay next to their handlers.
package common

const (
	// MsgMustReply — a command that needs a target was not sent as a reply.
	MsgMustReply = "این دستور باید روی پیام کاربر ریپلای شود."
	// MsgMustReplyMessage — variant for commands that target a message
	// rather than its author (translate).
	MsgMustReplyMessage = "این دستور باید روی پیام موردنظر ریپلای شود."
	// MsgUnknownUser — fallback display name when Telegram gives us nothing.
	MsgUnknownUser = "کاربر"
)
