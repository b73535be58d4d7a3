// Package hash provides helpers for hashing and verifying secrets.
//
// Typical usage is fingerprinting caller-supplied values (for example
// idempotency keys) so only the keyed hash is stored or used for lookups.
// Implementations live in this package behind a small interface.
package hash
