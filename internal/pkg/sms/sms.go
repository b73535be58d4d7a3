package sms

import (
	"context"
	"errors"
	"io"
)

// ErrDeliveryFailed is returned when the provider rejects or fails to send a message.
var ErrDeliveryFailed = errors.New("sms: delivery failed")

// Message is a single outgoing SMS.
type Message struct {
	// To is the recipient phone number.
	To string
	// Body is the message text.
	Body string
}

// SMS sends text messages through a provider.
type SMS interface {
	io.Closer

	// Send delivers a message to the recipient.
	Send(ctx context.Context, msg Message) error
}
