package rs

import sherr "github.com/mrz1836/gfshard/pkg/errors"

// validateShardsForDecode enforces the consistency rules a shard set must
// satisfy before Decode attempts reconstruction: non-empty, enough shards
// to meet the configured threshold, no duplicate indices, indices within
// range, uniform shard length, and identical config/original-size/
// checksum/chunk-index across every shard.
func validateShardsForDecode(shards []Shard) error {
	if len(shards) == 0 {
		return sherr.New(sherr.KindInsufficientShares, errTooFewShards)
	}

	first := shards[0]
	cfg := first.Metadata.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	seen := make(map[int]bool, len(shards))
	for _, s := range shards {
		if seen[s.Index] {
			return sherr.New(sherr.KindIncompatibleShares, errDuplicateShardIndex)
		}
		seen[s.Index] = true

		if s.Index < 0 || s.Index >= cfg.TotalShards() {
			return sherr.New(sherr.KindInvalidShare, errShardIndexOutOfRange)
		}
		if len(s.Data) != cfg.ShardSize {
			return sherr.New(sherr.KindInvalidShare, errShardLengthMismatch)
		}
		if s.Metadata.Config != cfg {
			return sherr.New(sherr.KindIncompatibleShares, errInconsistentConfig)
		}
		if s.Metadata.OriginalSize != first.Metadata.OriginalSize {
			return sherr.New(sherr.KindIncompatibleShares, errInconsistentOriginal)
		}
		if s.Metadata.Checksum != first.Metadata.Checksum {
			return sherr.New(sherr.KindIncompatibleShares, errInconsistentChecksum)
		}
		if !chunkIndexEqual(s.Metadata.ChunkIndex, first.Metadata.ChunkIndex) {
			return sherr.New(sherr.KindIncompatibleShares, errInconsistentChunkIndex)
		}
	}

	if len(shards) < cfg.DataShards {
		return sherr.New(sherr.KindInsufficientShares, errTooFewShards)
	}
	return nil
}

func chunkIndexEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
