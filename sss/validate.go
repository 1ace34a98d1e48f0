package sss

import sherr "github.com/mrz1836/gfshard/pkg/errors"

// ValidateShares checks that shares form a valid, reconstructable
// collection: individually valid, no duplicate indices, identical
// metadata across every share, and at least Threshold shares present. If
// metadata is non-nil it is also checked for compatibility against the
// shares' own metadata.
func ValidateShares(shares []Share, metadata *ShareMetadata) error {
	_, err := validateSharesForReconstruction(shares, metadata)
	return err
}

// validateSharesForReconstruction runs the full collection validation
// and returns the metadata to reconstruct against.
func validateSharesForReconstruction(shares []Share, metadata *ShareMetadata) (ShareMetadata, error) {
	if len(shares) == 0 {
		return ShareMetadata{}, sherr.New(sherr.KindInsufficientShares, errNoShares)
	}

	reference := shares[0].Metadata
	if metadata != nil {
		reference = *metadata
	}

	seen := make(map[int]bool, len(shares))
	for _, s := range shares {
		if err := validateShare(s); err != nil {
			return ShareMetadata{}, err
		}
		if seen[s.Index] {
			return ShareMetadata{}, sherr.New(sherr.KindInvalidShare, errDuplicateShareIndex)
		}
		seen[s.Index] = true

		if !reference.Compatible(s.Metadata) {
			return ShareMetadata{}, sherr.New(sherr.KindIncompatibleShares, errIncompatibleMetadata)
		}
	}

	if len(shares) < reference.Threshold {
		return ShareMetadata{}, sherr.New(sherr.KindInsufficientShares, errInsufficientShares)
	}
	return reference, nil
}

// validateShare checks a single share's internal consistency: data
// length matches its own metadata's secret size, and the tamper-evidence
// hash verifies.
func validateShare(s Share) error {
	if len(s.Data) != s.Metadata.SecretSize {
		return sherr.New(sherr.KindInvalidShare, errShareDataLengthMismatch)
	}
	if s.Index < 1 || s.Index > MaxTotalShares {
		return sherr.New(sherr.KindInvalidShare, errShareIndexOutOfRange)
	}
	if !s.VerifyHash() {
		return sherr.New(sherr.KindInvalidShare, errShareHashMismatch)
	}
	return nil
}
