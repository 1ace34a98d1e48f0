package rs

import (
	"crypto/sha256"
	"time"

	"github.com/mrz1836/gfshard/internal/gf256"
	"github.com/mrz1836/gfshard/internal/matrix"
	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

// Encode splits data into cfg.DataShards data shards and cfg.ParityShards
// parity shards such that the original bytes are recoverable from any
// cfg.DataShards of the resulting shards.
func Encode(data []byte, cfg EncodingConfig) ([]Shard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, sherr.New(sherr.KindInvalidInput, errEmptyInput)
	}

	k := cfg.DataShards
	m := cfg.ParityShards
	n := k + m
	shardSize := cfg.ShardSize

	dataShards := partition(data, k, shardSize)

	parityRows, err := parityMatrix(k, n)
	if err != nil {
		return nil, err
	}

	parityShards := make([][]byte, m)
	for j := range parityShards {
		parityShards[j] = make([]byte, shardSize)
	}
	for c := 0; c < shardSize; c++ {
		column := make([]byte, k)
		for i := 0; i < k; i++ {
			column[i] = dataShards[i][c]
		}
		for j := 0; j < m; j++ {
			var acc byte
			row := parityRows[j]
			for i := 0; i < k; i++ {
				acc = gf256.Add(acc, gf256.Mul(row[i], column[i]))
			}
			parityShards[j][c] = acc
		}
	}

	checksum := sha256.Sum256(data)
	meta := ShardMetadata{
		OriginalSize: len(data),
		Config:       cfg,
		Checksum:     checksum,
		Timestamp:    time.Now(),
	}

	shards := make([]Shard, n)
	for i := 0; i < k; i++ {
		shards[i] = Shard{Index: i, Data: dataShards[i], Metadata: meta}
	}
	for j := 0; j < m; j++ {
		shards[k+j] = Shard{Index: k + j, Data: parityShards[j], Metadata: meta}
	}
	return shards, nil
}

// partition splits data into count shards of shardSize bytes each,
// zero-padding the final shard as needed.
func partition(data []byte, count, shardSize int) [][]byte {
	out := make([][]byte, count)
	for i := 0; i < count; i++ {
		shard := make([]byte, shardSize)
		start := i * shardSize
		if start < len(data) {
			end := start + shardSize
			if end > len(data) {
				end = len(data)
			}
			copy(shard, data[start:end])
		}
		out[i] = shard
	}
	return out
}

// parityMatrix returns the bottom m rows of the systematic generator
// matrix G(k, n), the rows that compute parity shards from data columns.
func parityMatrix(k, n int) (matrix.Matrix, error) {
	g, err := matrix.SystematicGenerator(k, n)
	if err != nil {
		return nil, sherr.New(sherr.KindSingular, err)
	}
	m := n - k
	parity, err := g.SubMatrix(k, 0, m, k)
	if err != nil {
		return nil, sherr.New(sherr.KindSingular, err)
	}
	return parity, nil
}
