package sss

import (
	"crypto/sha256"

	"github.com/mrz1836/gfshard/internal/gf256"
	"github.com/mrz1836/gfshard/internal/securemem"
	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

// Reconstruct recovers the original secret bytes from shares. metadata is
// optional; when supplied it is checked for compatibility against the
// shares' own metadata and used as the authoritative threshold/size/hash
// reference.
func Reconstruct(shares []Share, metadata *ShareMetadata) ([]byte, error) {
	meta, err := validateSharesForReconstruction(shares, metadata)
	if err != nil {
		return nil, err
	}

	k := meta.Threshold
	used := shares[:k]

	xs := make([]byte, k)
	for j, s := range used {
		xs[j] = byte(s.Index)
	}

	result := make([]byte, meta.SecretSize)
	ys := make([]byte, k)
	for i := 0; i < meta.SecretSize; i++ {
		for j, s := range used {
			ys[j] = s.Data[i]
		}
		result[i] = lagrangeAtZero(xs, ys)
	}
	securemem.Clear(ys)

	if sha256.Sum256(result) != meta.SecretHash {
		securemem.Clear(result)
		return nil, sherr.New(sherr.KindReconstructionFailed, errReconstructionHashMismatch)
	}
	return result, nil
}

// ReconstructString is Reconstruct followed by a UTF-8 string conversion,
// for secrets that were originally text.
func ReconstructString(shares []Share, metadata *ShareMetadata) (string, error) {
	b, err := Reconstruct(shares, metadata)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// lagrangeAtZero evaluates, at x=0, the unique degree-(k-1) polynomial
// passing through the points (xs[j], ys[j]), all arithmetic in GF(256).
// xs must contain distinct, non-zero values; the duplicate-index check in
// validateSharesForReconstruction and validateShare's index-range check
// uphold this before lagrangeAtZero is ever called.
func lagrangeAtZero(xs, ys []byte) byte {
	var result byte
	for j := range xs {
		term := ys[j]
		for l := range xs {
			if l == j {
				continue
			}
			den := gf256.Sub(xs[j], xs[l])
			frac, _ := gf256.Div(xs[l], den)
			term = gf256.Mul(term, frac)
		}
		result = gf256.Add(result, term)
	}
	return result
}
