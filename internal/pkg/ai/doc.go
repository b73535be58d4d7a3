// Package ai defines the contract for chat-completion providers.
//
// Use cases depend on the Completer interface; the concrete client (an
// OpenAI-compatible HTTP API) lives in this package so the provider can be
// swapped or faked in tests.
package ai
