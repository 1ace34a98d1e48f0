package rs

import (
	"crypto/sha256"
	"sort"

	"github.com/mrz1836/gfshard/internal/gf256"
	"github.com/mrz1836/gfshard/internal/matrix"
	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

// decodeCache memoizes decoder-matrix inversions across Decode calls that
// happen to select the same surviving row set for the same (k, n).
var decodeCache = matrix.NewInversionCache(matrix.DefaultCacheSize)

// CacheStats reports cumulative hit and miss counts for the package-wide
// decoder-matrix inversion cache, for callers (such as the CLI) that want
// to surface cache effectiveness without reaching into internal/matrix
// directly.
func CacheStats() (hits, misses uint64) {
	return decodeCache.Stats()
}

// Decode reconstructs the original bytes from any cfg.DataShards of the
// shards produced by Encode.
func Decode(shards []Shard) ([]byte, error) {
	if err := validateShardsForDecode(shards); err != nil {
		return nil, err
	}

	cfg := shards[0].Metadata.Config
	k := cfg.DataShards
	n := cfg.TotalShards()
	originalSize := shards[0].Metadata.OriginalSize
	checksum := shards[0].Metadata.Checksum

	byIndex := make(map[int]Shard, len(shards))
	for _, s := range shards {
		byIndex[s.Index] = s
	}

	dataShards, err := recoverDataShards(byIndex, k, n, cfg.ShardSize)
	if err != nil {
		return nil, err
	}

	if err := verifyParity(dataShards, byIndex, k, n); err != nil {
		return nil, err
	}

	out := make([]byte, 0, k*cfg.ShardSize)
	for _, shard := range dataShards {
		out = append(out, shard...)
	}
	if originalSize > len(out) {
		return nil, sherr.New(sherr.KindCorruptedShards, errShardLengthMismatch)
	}
	out = out[:originalSize]

	if sha256.Sum256(out) != checksum {
		return nil, sherr.New(sherr.KindCorruptedShards, errInconsistentChecksum)
	}
	return out, nil
}

// recoverDataShards returns the k data shards, taking the fast path when
// all of them are present verbatim and falling back to matrix inversion
// over any k available shards otherwise.
func recoverDataShards(byIndex map[int]Shard, k, n, shardSize int) ([][]byte, error) {
	if fastPathComplete(byIndex, k) {
		out := make([][]byte, k)
		for i := 0; i < k; i++ {
			out[i] = byIndex[i].Data
		}
		return out, nil
	}
	return recoverByInversion(byIndex, k, n, shardSize)
}

func fastPathComplete(byIndex map[int]Shard, k int) bool {
	for i := 0; i < k; i++ {
		if _, ok := byIndex[i]; !ok {
			return false
		}
	}
	return true
}

// recoverByInversion selects the k lowest-indexed available shards,
// inverts the corresponding rows of the systematic generator matrix, and
// recovers each data byte column as M^-1 * y.
func recoverByInversion(byIndex map[int]Shard, k, n, shardSize int) ([][]byte, error) {
	available := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		available = append(available, idx)
	}
	sort.Ints(available)
	if len(available) < k {
		return nil, sherr.New(sherr.KindInsufficientShares, errTooFewShards)
	}
	selected := available[:k]

	key := matrix.Key(k, n, selected)
	inv, ok := decodeCache.Lookup(key)
	if !ok {
		g, err := matrix.SystematicGenerator(k, n)
		if err != nil {
			return nil, sherr.New(sherr.KindSingular, err)
		}
		sub, err := g.SelectRows(selected)
		if err != nil {
			return nil, sherr.New(sherr.KindSingular, err)
		}
		inv, err = sub.Invert()
		if err != nil {
			return nil, sherr.New(sherr.KindSingular, err)
		}
		decodeCache.Put(key, inv)
	}

	dataShards := make([][]byte, k)
	for i := range dataShards {
		dataShards[i] = make([]byte, shardSize)
	}

	column := make([]byte, k)
	for c := 0; c < shardSize; c++ {
		for row, idx := range selected {
			column[row] = byIndex[idx].Data[c]
		}
		for i := 0; i < k; i++ {
			var acc byte
			invRow := inv[i]
			for j := 0; j < k; j++ {
				acc = gf256.Add(acc, gf256.Mul(invRow[j], column[j]))
			}
			dataShards[i][c] = acc
		}
	}
	return dataShards, nil
}

// verifyParity recomputes every parity shard from the recovered data
// shards and compares it against whichever parity shards were actually
// supplied, reporting CorruptedShards on any mismatch.
func verifyParity(dataShards [][]byte, byIndex map[int]Shard, k, n int) error {
	present := false
	for idx := range byIndex {
		if idx >= k {
			present = true
			break
		}
	}
	if !present {
		return nil
	}

	parityRows, err := parityMatrix(k, n)
	if err != nil {
		return err
	}
	shardSize := len(dataShards[0])

	for j := 0; j < n-k; j++ {
		shard, ok := byIndex[k+j]
		if !ok {
			continue
		}
		row := parityRows[j]
		for c := 0; c < shardSize; c++ {
			var acc byte
			for i := 0; i < k; i++ {
				acc = gf256.Add(acc, gf256.Mul(row[i], dataShards[i][c]))
			}
			if acc != shard.Data[c] {
				return sherr.New(sherr.KindCorruptedShards, errParityMismatch)
			}
		}
	}
	return nil
}
