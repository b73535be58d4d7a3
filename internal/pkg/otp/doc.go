// Package otp provides helpers for generating one-time verification codes.
//
// This is typically used for phone sign-in flows: generate a short numeric
// code, deliver it out of band, then compare the user-provided code against
// the stored one.
package otp
