package otp

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// digits is the character set used for verification code generation.
const digits = "0123456789"

// Generator produces one-time verification codes.
type Generator interface {
	// Generate returns a new code or an error if the random source fails.
	Generate() (string, error)
}

// NumericCode generates cryptographically secure numeric codes.
//
// Codes are fixed-length strings of decimal digits. Leading zeros are
// allowed, so a 6-digit code like "012345" is valid.
type NumericCode struct {
	length int
}

// NewNumericCode returns a NumericCode generator for codes of the given
// length. A non-positive length falls back to 6 digits.
func NewNumericCode(length int) *NumericCode {
	if length < 1 {
		length = 6
	}

	return &NumericCode{length: length}
}

// Generate produces a new random code.
func (n *NumericCode) Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(n.length)

	for range n.length {
		idx, err := randIntStrict(len(digits))
		if err != nil {
			return "", err
		}
		sb.WriteByte(digits[idx])
	}

	return sb.String(), nil
}

func randIntStrict(max int) (int, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(num.Int64()), nil
}
