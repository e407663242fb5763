package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Generator produces one-time numeric codes for email challenges.
type Generator interface {
	// Generate returns a new random code.
	Generate() (string, error)
}

// Numeric generates fixed-length decimal codes from a cryptographic
// random source. A 6-digit generator draws uniformly from
// [100000, 999999], so codes never carry a leading zero.
type Numeric struct {
	min  int64
	span int64
}

// NewNumeric constructs a generator of the given length.
//
// If length is outside [4, 9], it falls back to the common 6 digits.
func NewNumeric(length int) *Numeric {
	if length < 4 || length > 9 {
		length = 6
	}

	min := int64(1)
	for i := 1; i < length; i++ {
		min *= 10
	}

	return &Numeric{min: min, span: min*10 - min}
}

// Generate returns a new random code.
func (n *Numeric) Generate() (string, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(n.span))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.min+v.Int64(), 10), nil
}
