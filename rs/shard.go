package rs

import "time"

// ShardMetadata travels with every shard produced by a single Encode or
// EncodeStream chunk. All shards from the same operation carry identical
// metadata except ChunkIndex, which is set only by the streaming encoder.
type ShardMetadata struct {
	OriginalSize int
	Config       EncodingConfig
	Checksum     [32]byte
	Timestamp    time.Time
	ChunkIndex   *int
}

// Shard is a single piece of RS output: a data shard if Index < the
// config's DataShards, a parity shard otherwise.
type Shard struct {
	Index    int
	Data     []byte
	Metadata ShardMetadata
}

// IsDataShard reports whether s is one of the k verbatim data shards.
func (s Shard) IsDataShard() bool {
	return s.Index < s.Metadata.Config.DataShards
}
