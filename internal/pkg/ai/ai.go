package ai

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when the client has no API key.
var ErrNotConfigured = errors.New("ai: provider not configured")

// ErrEmptyCompletion is returned when the provider returns no choices.
var ErrEmptyCompletion = errors.New("ai: completion has no choices")

// Message is a single chat message.
type Message struct {
	// Role is one of "system", "user" or "assistant".
	Role string
	// Content is the message text.
	Content string
}

// Completer produces chat completions from a language model.
type Completer interface {
	// Complete sends the conversation and returns the assistant reply.
	Complete(ctx context.Context, msgs []Message) (string, error)
}
