// Package rs implements systematic Reed-Solomon erasure coding over
// GF(256): splitting a byte buffer into k data shards and m parity
// shards recoverable from any k of the n = k+m shards, plus a streaming
// variant that chunks an io.Reader and emits shard batches in order.
package rs
