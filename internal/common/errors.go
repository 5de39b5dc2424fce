// Package common holds the errors, reply texts and small helpers shared by
// every feature of the bot.
// errors.go defines sentinel errors so handlers can distinguish failure
// kinds with errors.Is and answer with the right reply.
package common

import "errors"

var (
	// ErrNotFound — the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnsupportedContent — the message carries a content kind the bot
	// cannot capture or re-emit.
	ErrUnsupportedContent = errors.New("unsupported content type")
)
