package command

import (
	"errors"

	"github.com/fernvale/parley/internal/core"
)

const (
	msgAuthError      = "The configured OpenAI API key was rejected. Please check the configuration."
	msgOverloaded     = "The model is currently overloaded. Please try again later."
	msgContentError   = "Could not extract any text from that link."
	msgStorageError   = "Something went wrong while saving your conversation. Please try again."
	msgSystemUpdated  = "System message updated."
	msgHistoryCleared = "Conversation history cleared."
	msgPromptRequired = "Please provide a prompt after the command."

	helpText = "Commands:\n\n" +
		"/system <prompt>\nSet the system message, e.g. ask the bot to act as a translator.\n\n" +
		"/clear\nForget the stored conversation history.\n\n" +
		"/image <prompt>\nGenerate an image from a text description.\n\n" +
		"/chat <prompt>\nChat with the model. Paste a page link or a YouTube video to get a summary instead.\n\n" +
		"Voice notes are transcribed and answered as a normal chat turn."
)

// replyForError maps a normalized error onto its user-facing message.
// Auth and overload failures get fixed localized texts; content and
// generic failures pass the capability message through.
func replyForError(err error) string {
	switch core.KindOf(err) {
	case core.ErrKindAuth:
		return msgAuthError
	case core.ErrKindOverloaded:
		return msgOverloaded
	case core.ErrKindContent:
		return msgContentError
	case core.ErrKindStorage:
		return msgStorageError
	default:
		var capErr *core.CapabilityError
		if errors.As(err, &capErr) {
			return capErr.Message
		}
		return err.Error()
	}
}
