package sss

import (
	"crypto/sha256"
	"time"

	"github.com/mrz1836/gfshard/internal/csprng"
	"github.com/mrz1836/gfshard/internal/gf256"
	"github.com/mrz1836/gfshard/internal/securemem"
	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

// Split divides secret into cfg.TotalShares shares under a
// cfg.Threshold-of-cfg.TotalShares scheme. Each byte of secret becomes the
// constant term of an independent random polynomial of degree
// cfg.Threshold-1, evaluated at x = 1..cfg.TotalShares.
func Split(secret []byte, cfg Config) ([]Share, ShareMetadata, error) {
	if err := cfg.Validate(); err != nil {
		return nil, ShareMetadata{}, err
	}
	if len(secret) == 0 {
		return nil, ShareMetadata{}, sherr.New(sherr.KindInvalidSecret, errEmptySecret)
	}
	if len(secret) > cfg.SecretMaxSize {
		return nil, ShareMetadata{}, sherr.New(sherr.KindInvalidSecret, errSecretTooLarge)
	}

	k := cfg.Threshold
	n := cfg.TotalShares

	shareData := make([][]byte, n)
	for x := range shareData {
		shareData[x] = make([]byte, len(secret))
	}

	for i, secretByte := range secret {
		poly, err := randomPolynomial(k, secretByte)
		if err != nil {
			return nil, ShareMetadata{}, err
		}
		for x := 1; x <= n; x++ {
			shareData[x-1][i] = poly.Eval(byte(x))
		}
		securemem.Clear(poly)
	}

	shareSetID, err := newShareSetID()
	if err != nil {
		return nil, ShareMetadata{}, err
	}

	meta := ShareMetadata{
		Threshold:   k,
		TotalShares: n,
		SecretSize:  len(secret),
		SecretHash:  sha256.Sum256(secret),
		Timestamp:   time.Now(),
		ShareSetID:  shareSetID,
	}

	shares := make([]Share, n)
	for x := 1; x <= n; x++ {
		data := shareData[x-1]
		shares[x-1] = Share{
			Index:    x,
			Data:     data,
			Metadata: meta,
			DataHash: computeDataHash(x, data, shareSetID),
		}
	}
	return shares, meta, nil
}

// randomPolynomial builds a degree-(k-1) polynomial with the given
// constant term and coefficients drawn uniformly from GF(256). When k > 1
// it resamples the non-constant coefficients until at least one is
// non-zero, since an all-zero coefficient set makes every evaluation
// equal the constant term and leaks the secret byte outright.
func randomPolynomial(k int, constant byte) (gf256.Poly, error) {
	poly := make(gf256.Poly, k)
	poly[0] = constant
	if k == 1 {
		return poly, nil
	}

	for {
		anyNonZero := false
		for i := 1; i < k; i++ {
			c, err := csprng.NextFieldElement()
			if err != nil {
				return nil, err
			}
			poly[i] = c
			if c != 0 {
				anyNonZero = true
			}
		}
		if anyNonZero {
			return poly, nil
		}
	}
}
