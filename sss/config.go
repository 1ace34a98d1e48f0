package sss

import sherr "github.com/mrz1836/gfshard/pkg/errors"

// MaxTotalShares is the upper bound on SSSConfig.TotalShares.
const MaxTotalShares = 128

// MaxSecretSize is the upper bound, in bytes, on a secret split by Split.
const MaxSecretSize = 1024

// FieldSize is the fixed GF(256) field size this package operates over.
const FieldSize = 256

// Config describes a split operation: a Threshold-of-TotalShares scheme
// over secrets up to SecretMaxSize bytes.
type Config struct {
	Threshold       int
	TotalShares     int
	SecretMaxSize   int
	FieldSize       int
	UseSecureRandom bool
}

// DefaultConfig returns a Config with FieldSize fixed at 256,
// SecretMaxSize at MaxSecretSize, and UseSecureRandom enabled; callers
// still set Threshold and TotalShares.
func DefaultConfig(threshold, totalShares int) Config {
	return Config{
		Threshold:       threshold,
		TotalShares:     totalShares,
		SecretMaxSize:   MaxSecretSize,
		FieldSize:       FieldSize,
		UseSecureRandom: true,
	}
}

// Validate checks Config invariants: threshold >= 1, total shares >=
// threshold and <= MaxTotalShares, field size fixed at 256, and secret
// size ceiling within MaxSecretSize.
func (c Config) Validate() error {
	if c.Threshold < 1 {
		return sherr.New(sherr.KindInvalidConfig, errThresholdNonPositive)
	}
	if c.TotalShares < c.Threshold {
		return sherr.New(sherr.KindInvalidConfig, errTotalSharesBelowThreshold)
	}
	if c.TotalShares > MaxTotalShares {
		return sherr.New(sherr.KindInvalidConfig, errTotalSharesTooLarge)
	}
	if c.FieldSize != FieldSize {
		return sherr.New(sherr.KindInvalidConfig, errUnsupportedFieldSize)
	}
	if c.SecretMaxSize <= 0 || c.SecretMaxSize > MaxSecretSize {
		return sherr.New(sherr.KindInvalidConfig, errSecretMaxSizeOutOfRange)
	}
	return nil
}
