package sss

import (
	"encoding/hex"
	"time"

	"github.com/mrz1836/gfshard/internal/csprng"
	"github.com/mrz1836/gfshard/internal/securemem"
)

// ShareMetadata describes a single split operation and travels unchanged
// with every share it produced. Two metadata values are compatible iff
// Threshold, TotalShares, SecretSize, SecretHash, and ShareSetID all
// match exactly.
type ShareMetadata struct {
	Threshold   int
	TotalShares int
	SecretSize  int
	SecretHash  [32]byte
	Timestamp   time.Time
	ShareSetID  string
}

// Compatible reports whether m and other describe the same split
// operation.
func (m ShareMetadata) Compatible(other ShareMetadata) bool {
	return m.Threshold == other.Threshold &&
		m.TotalShares == other.TotalShares &&
		m.SecretSize == other.SecretSize &&
		securemem.ConstantTimeEqual(m.SecretHash[:], other.SecretHash[:]) &&
		m.ShareSetID == other.ShareSetID
}

// newShareSetID generates a random, unique identifier binding all shares
// produced by one Split call.
func newShareSetID() (string, error) {
	raw, err := csprng.NextBytes(16)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
