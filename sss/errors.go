package sss

import "errors"

var (
	errThresholdNonPositive       = errors.New("sss: threshold must be >= 1")
	errTotalSharesBelowThreshold  = errors.New("sss: total shares must be >= threshold")
	errTotalSharesTooLarge        = errors.New("sss: total shares exceed the supported limit")
	errUnsupportedFieldSize       = errors.New("sss: only GF(256) is supported")
	errSecretMaxSizeOutOfRange    = errors.New("sss: secret max size out of range")
	errEmptySecret                = errors.New("sss: secret must not be empty")
	errSecretTooLarge             = errors.New("sss: secret exceeds configured max size")
	errShareDataLengthMismatch    = errors.New("sss: share data length does not match metadata secret size")
	errShareHashMismatch          = errors.New("sss: share data hash does not match recomputed hash")
	errShareIndexOutOfRange       = errors.New("sss: share index out of range")
	errNoShares                   = errors.New("sss: no shares supplied")
	errDuplicateShareIndex        = errors.New("sss: duplicate share index")
	errIncompatibleMetadata       = errors.New("sss: shares carry mismatched metadata")
	errInsufficientShares         = errors.New("sss: fewer shares supplied than threshold")
	errReconstructionHashMismatch = errors.New("sss: reconstructed secret hash does not match metadata")
	errUnsupportedShareVersion    = errors.New("sss: unsupported share serialization version")
	errMalformedShareText         = errors.New("sss: malformed share text")
	errMalformedMetadataText      = errors.New("sss: malformed metadata text")
)
