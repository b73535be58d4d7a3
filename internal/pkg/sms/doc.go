// Package sms defines the contracts for sending text messages.
//
// The main purpose is to keep the rest of the application independent from a
// specific SMS provider. Handlers and use cases work with the SMS interface
// and Message payload; the concrete delivery mechanism (REST gateway, log
// sink for development, etc) is implemented elsewhere in this package.
package sms
