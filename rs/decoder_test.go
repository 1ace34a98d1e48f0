package rs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/rs"
)

// S1 — RS 16 KiB 8+6 loss-of-4.
func TestDecodeScenarioS1(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 8, ParityShards: 6, ShardSize: 2048}
	data := randomBytes(t, 16384)

	shards, err := rs.Encode(data, cfg)
	require.NoError(t, err)
	require.Len(t, shards, 14)

	remaining := dropIndices(shards, 0, 3, 6, 13)
	require.Len(t, remaining, 10)

	decoded, err := rs.Decode(remaining)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestDecodeFastPathAllDataShardsPresent(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 4, ParityShards: 3, ShardSize: 64}
	data := randomBytes(t, 200)

	shards, err := rs.Encode(data, cfg)
	require.NoError(t, err)

	decoded, err := rs.Decode(shards[:4])
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

// Any k-subset of n shards must decode correctly (MDS property).
func TestDecodeAnyKSubset(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 5, ParityShards: 4, ShardSize: 32}
	data := randomBytes(t, 140)

	shards, err := rs.Encode(data, cfg)
	require.NoError(t, err)

	subsets := [][]int{
		{0, 1, 2, 3, 4},
		{4, 5, 6, 7, 8},
		{0, 2, 4, 6, 8},
		{1, 3, 5, 7, 8},
	}
	for _, idxs := range subsets {
		var subset []rs.Shard
		for _, i := range idxs {
			subset = append(subset, shards[i])
		}
		decoded, err := rs.Decode(subset)
		require.NoError(t, err, "idxs=%v", idxs)
		assert.Equal(t, data, decoded, "idxs=%v", idxs)
	}
}

func TestDecodeTooFewShardsFails(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 4, ParityShards: 3, ShardSize: 16}
	data := randomBytes(t, 60)

	shards, err := rs.Encode(data, cfg)
	require.NoError(t, err)

	_, err = rs.Decode(shards[:3])
	assert.Error(t, err)
}

func TestDecodeCorruptedParityDetected(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 4, ParityShards: 2, ShardSize: 16}
	data := randomBytes(t, 60)

	shards, err := rs.Encode(data, cfg)
	require.NoError(t, err)

	// Corrupt a parity shard's byte while leaving all data shards present.
	shards[4].Data[0] ^= 0xFF

	_, err = rs.Decode(shards)
	assert.Error(t, err)
}

func TestDecodeInconsistentConfigFails(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 4, ParityShards: 2, ShardSize: 16}
	data := randomBytes(t, 60)

	shards, err := rs.Encode(data, cfg)
	require.NoError(t, err)
	shards[1].Metadata.Config.ShardSize = 32

	_, err = rs.Decode(shards)
	assert.Error(t, err)
}

func dropIndices(shards []rs.Shard, drop ...int) []rs.Shard {
	dropSet := make(map[int]bool, len(drop))
	for _, d := range drop {
		dropSet[d] = true
	}
	out := make([]rs.Shard, 0, len(shards))
	for _, s := range shards {
		if !dropSet[s.Index] {
			out = append(out, s)
		}
	}
	return out
}
