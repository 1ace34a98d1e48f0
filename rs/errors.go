package rs

import "errors"

var (
	errDataShardsNonPositive   = errors.New("rs: data shard count must be >= 1")
	errParityShardsNonPositive = errors.New("rs: parity shard count must be >= 1")
	errShardSizeNonPositive    = errors.New("rs: shard size must be >= 1")
	errTotalShardsTooLarge     = errors.New("rs: data+parity shards exceed field-size limit")
	errEmptyInput              = errors.New("rs: input buffer must not be empty")
	errTooFewShards            = errors.New("rs: fewer shards supplied than data shard count")
	errInconsistentConfig      = errors.New("rs: shards carry inconsistent encoding config")
	errInconsistentOriginal    = errors.New("rs: shards carry inconsistent original size")
	errInconsistentChecksum    = errors.New("rs: shards carry inconsistent checksum")
	errInconsistentChunkIndex  = errors.New("rs: shards carry inconsistent or missing chunk index")
	errDuplicateShardIndex     = errors.New("rs: duplicate shard index in input set")
	errShardIndexOutOfRange    = errors.New("rs: shard index out of range for config")
	errShardLengthMismatch     = errors.New("rs: shard data length does not match config shard size")
	errParityMismatch          = errors.New("rs: recomputed parity does not match supplied parity shard")
	errIncompleteStream        = errors.New("rs: stream ended with incomplete chunks")
)
