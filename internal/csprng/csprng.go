// Package csprng provides the cryptographically secure randomness used by
// Shamir secret splitting and by any component that needs non-zero field
// elements or raw random bytes.
package csprng

import (
	"crypto/rand"
	"io"

	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

// Reader is the cryptographically secure random source. It wraps
// crypto/rand.Reader so tests can substitute a deterministic reader.
//
//nolint:gochecknoglobals // package-level RNG is required for testability
var Reader io.Reader = rand.Reader

// NextByte returns a single cryptographically secure random byte.
func NextByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(Reader, b[:]); err != nil {
		return 0, sherr.New(sherr.KindInvalidInput, err)
	}
	return b[0], nil
}

// NextBytes returns n cryptographically secure random bytes. n must be
// non-negative.
func NextBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, sherr.New(sherr.KindInvalidInput, errNegativeCount)
	}
	b := make([]byte, n)
	if n == 0 {
		return b, nil
	}
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, sherr.New(sherr.KindInvalidInput, err)
	}
	return b, nil
}

// NextFieldElement returns a uniformly random GF(256) element, including
// zero.
func NextFieldElement() (byte, error) {
	return NextByte()
}

// NextNonZeroFieldElement returns a uniformly random GF(256) element,
// resampling until a non-zero value is drawn. Unlike NextFieldElement it
// never returns zero.
func NextNonZeroFieldElement() (byte, error) {
	for {
		b, err := NextByte()
		if err != nil {
			return 0, err
		}
		if b != 0 {
			return b, nil
		}
	}
}
