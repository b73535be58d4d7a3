package sms

import (
	"context"
	"log/slog"
)

// Log is an SMS implementation that only logs messages.
//
// It is meant for local development and test environments where no real
// gateway is available.
type Log struct{}

// NewLog constructs a logging SMS sender.
func NewLog() *Log {
	return &Log{}
}

// Send logs the message instead of delivering it.
func (l *Log) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "sms message (log driver, not delivered)", "to", msg.To, "body", msg.Body)
	return nil
}

// Close implements io.Closer for interface compatibility.
func (l *Log) Close() error {
	return nil
}
