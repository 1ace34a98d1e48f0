package rs

import (
	"context"
	"fmt"
	"io"
	"sort"

	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

// EncodeStream reads r in fixed-size chunks of cfg.ShardSize*cfg.DataShards
// bytes, encoding each chunk independently and sending its shard batch,
// tagged with a monotonically increasing ChunkIndex, on the returned
// channel. The error channel carries at most one error and is closed
// after the shard channel. Cancelling ctx stops the producer promptly.
func EncodeStream(ctx context.Context, r io.Reader, cfg EncodingConfig) (<-chan []Shard, <-chan error) {
	out := make(chan []Shard)
	errc := make(chan error, 1)

	if err := cfg.Validate(); err != nil {
		close(out)
		errc <- err
		close(errc)
		return out, errc
	}

	chunkSize := cfg.ShardSize * cfg.DataShards

	go func() {
		defer close(errc)
		defer close(out)

		buf := make([]byte, chunkSize)
		chunkIndex := 0
		for {
			n, readErr := io.ReadFull(r, buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])

				shards, encErr := Encode(chunk, cfg)
				if encErr != nil {
					errc <- encErr
					return
				}
				idx := chunkIndex
				for i := range shards {
					shards[i].Metadata.ChunkIndex = &idx
				}
				chunkIndex++

				select {
				case out <- shards:
				case <-ctx.Done():
					errc <- ctx.Err()
					return
				}
			}

			if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
				return
			}
			if readErr != nil {
				errc <- sherr.New(sherr.KindInvalidInput, readErr)
				return
			}
		}
	}()

	return out, errc
}

// DecodeStream consumes shard batches from in, decoding each chunk as
// soon as enough of its shards have arrived and emitting decoded bytes on
// the returned channel strictly in ascending ChunkIndex order, buffering
// any batches that complete out of order. If the input channel closes
// with an incomplete chunk pending, the error channel receives
// IncompleteStream naming the missing indices. Cancelling ctx stops the
// consumer promptly.
func DecodeStream(ctx context.Context, in <-chan []Shard) (<-chan []byte, <-chan error) {
	out := make(chan []byte)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		pending := make(map[int][]Shard)
		nextExpected := 0

		emitReady := func() bool {
			for {
				shards, ok := pending[nextExpected]
				if !ok || !chunkHasEnoughShards(shards) {
					return true
				}
				data, err := Decode(shards)
				if err != nil {
					errc <- err
					return false
				}
				delete(pending, nextExpected)
				select {
				case out <- data:
				case <-ctx.Done():
					errc <- ctx.Err()
					return false
				}
				nextExpected++
			}
		}

		for {
			select {
			case shards, ok := <-in:
				if !ok {
					if len(pending) > 0 {
						errc <- sherr.New(sherr.KindIncompleteStream, incompleteStreamErr(pending))
						return
					}
					return
				}
				if len(shards) == 0 {
					continue
				}
				idx := 0
				if shards[0].Metadata.ChunkIndex != nil {
					idx = *shards[0].Metadata.ChunkIndex
				}
				pending[idx] = mergeShards(pending[idx], shards)
				if !emitReady() {
					return
				}
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()

	return out, errc
}

// mergeShards folds incoming into existing, keyed by shard Index so that
// a shard delivered more than once for the same chunk is not counted
// twice when deciding whether enough shards have arrived.
func mergeShards(existing, incoming []Shard) []Shard {
	byIndex := make(map[int]Shard, len(existing)+len(incoming))
	for _, s := range existing {
		byIndex[s.Index] = s
	}
	for _, s := range incoming {
		byIndex[s.Index] = s
	}
	out := make([]Shard, 0, len(byIndex))
	for _, s := range byIndex {
		out = append(out, s)
	}
	return out
}

// chunkHasEnoughShards reports whether shards contains at least
// cfg.DataShards entries, the minimum needed to attempt a decode.
func chunkHasEnoughShards(shards []Shard) bool {
	if len(shards) == 0 {
		return false
	}
	return len(shards) >= shards[0].Metadata.Config.DataShards
}

func incompleteStreamErr(pending map[int][]Shard) error {
	missing := make([]int, 0, len(pending))
	for idx := range pending {
		missing = append(missing, idx)
	}
	sort.Ints(missing)
	return fmt.Errorf("%w: missing chunks %v", errIncompleteStream, missing)
}
