package rs_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/rs"
)

func TestEncodeDecodeStreamRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 4, ParityShards: 2, ShardSize: 16}
	chunkSize := cfg.ShardSize * cfg.DataShards
	data := randomBytes(t, chunkSize*3+17) // three full chunks plus a partial one

	ctx := context.Background()
	shardBatches, encErrc := rs.EncodeStream(ctx, bytes.NewReader(data), cfg)

	decodeIn := make(chan []rs.Shard)
	go func() {
		defer close(decodeIn)
		for batch := range shardBatches {
			decodeIn <- batch
		}
	}()

	decoded, decErrc := rs.DecodeStream(ctx, decodeIn)

	var out bytes.Buffer
	for chunk := range decoded {
		out.Write(chunk)
	}

	require.NoError(t, <-encErrc)
	require.NoError(t, <-decErrc)
	assert.Equal(t, data, out.Bytes())
}

func TestEncodeStreamInvalidConfigFails(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 0, ParityShards: 2, ShardSize: 16}
	ctx := context.Background()
	_, errc := rs.EncodeStream(ctx, bytes.NewReader([]byte("x")), cfg)
	assert.Error(t, <-errc)
}

func TestDecodeStreamIncompleteFails(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 4, ParityShards: 2, ShardSize: 16}
	data := randomBytes(t, cfg.ShardSize*cfg.DataShards)

	shards, err := rs.Encode(data, cfg)
	require.NoError(t, err)
	idx := 0
	for i := range shards {
		shards[i].Metadata.ChunkIndex = &idx
	}

	ctx := context.Background()
	in := make(chan []rs.Shard, 1)
	in <- shards[:2] // far fewer than the 4 required
	close(in)

	decoded, errc := rs.DecodeStream(ctx, in)
	for range decoded {
		t.Fatal("expected no decoded output")
	}
	assert.Error(t, <-errc)
}

func TestDecodeStreamOrdersOutOfOrderBatches(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 2, ParityShards: 1, ShardSize: 8}
	chunkSize := cfg.ShardSize * cfg.DataShards
	data := randomBytes(t, chunkSize*3)

	ctx := context.Background()
	batches, encErrc := rs.EncodeStream(ctx, bytes.NewReader(data), cfg)

	var collected [][]rs.Shard
	for b := range batches {
		collected = append(collected, b)
	}
	require.NoError(t, <-encErrc)
	require.Len(t, collected, 3)

	// feed batches out of order: 2, 0, 1
	in := make(chan []rs.Shard, 3)
	in <- collected[2]
	in <- collected[0]
	in <- collected[1]
	close(in)

	decoded, decErrc := rs.DecodeStream(ctx, in)
	var out bytes.Buffer
	for chunk := range decoded {
		out.Write(chunk)
	}
	require.NoError(t, <-decErrc)
	assert.Equal(t, data, out.Bytes())
}
