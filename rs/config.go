package rs

import sherr "github.com/mrz1836/gfshard/pkg/errors"

// MaxTotalShards is the field-size limit on k+m: generator row i uses the
// evaluation point (i+1) mod 256, and GF(256) has only 256 distinct
// points, so no more than 256 distinct shard rows exist.
const MaxTotalShards = 256

// EncodingConfig describes the shape of an encode/decode operation:
// DataShards data shards, ParityShards parity shards, each ShardSize
// bytes wide (per chunk, for streaming).
type EncodingConfig struct {
	DataShards   int
	ParityShards int
	ShardSize    int
}

// TotalShards returns DataShards + ParityShards.
func (c EncodingConfig) TotalShards() int {
	return c.DataShards + c.ParityShards
}

// Validate checks EncodingConfig invariants: both shard counts positive,
// shard size positive, and total shards within the field-size limit.
func (c EncodingConfig) Validate() error {
	if c.DataShards < 1 {
		return sherr.New(sherr.KindInvalidConfig, errDataShardsNonPositive)
	}
	if c.ParityShards < 1 {
		return sherr.New(sherr.KindInvalidConfig, errParityShardsNonPositive)
	}
	if c.ShardSize < 1 {
		return sherr.New(sherr.KindInvalidConfig, errShardSizeNonPositive)
	}
	if c.TotalShards() > MaxTotalShards {
		return sherr.New(sherr.KindInvalidConfig, errTotalShardsTooLarge)
	}
	return nil
}
