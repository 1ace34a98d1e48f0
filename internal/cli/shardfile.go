package cli

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mrz1836/gfshard/internal/fileutil"
	"github.com/mrz1836/gfshard/rs"
)

// shardFile is the on-disk JSON representation of a single rs.Shard,
// the file format the CLI boundary uses to persist shards between an
// encode and a later decode invocation. It is not part of the rs
// package's own wire contract.
type shardFile struct {
	Index        int    `json:"index"`
	Data         string `json:"data"`
	OriginalSize int    `json:"original_size"`
	Checksum     string `json:"checksum"`
	DataShards   int    `json:"data_shards"`
	ParityShards int    `json:"parity_shards"`
	ShardSize    int    `json:"shard_size"`
}

func shardToFile(s rs.Shard) shardFile {
	return shardFile{
		Index:        s.Index,
		Data:         base64.StdEncoding.EncodeToString(s.Data),
		OriginalSize: s.Metadata.OriginalSize,
		Checksum:     hex.EncodeToString(s.Metadata.Checksum[:]),
		DataShards:   s.Metadata.Config.DataShards,
		ParityShards: s.Metadata.Config.ParityShards,
		ShardSize:    s.Metadata.Config.ShardSize,
	}
}

func shardFromFile(f shardFile) (rs.Shard, error) {
	data, err := base64.StdEncoding.DecodeString(f.Data)
	if err != nil {
		return rs.Shard{}, fmt.Errorf("decoding shard data: %w", err)
	}
	checksum, err := hex.DecodeString(f.Checksum)
	if err != nil || len(checksum) != 32 {
		return rs.Shard{}, fmt.Errorf("decoding shard checksum: %w", err)
	}
	var sum [32]byte
	copy(sum[:], checksum)

	return rs.Shard{
		Index: f.Index,
		Data:  data,
		Metadata: rs.ShardMetadata{
			OriginalSize: f.OriginalSize,
			Checksum:     sum,
			Config: rs.EncodingConfig{
				DataShards:   f.DataShards,
				ParityShards: f.ParityShards,
				ShardSize:    f.ShardSize,
			},
		},
	}, nil
}

// writeShardFiles writes one JSON file per shard into dir, named
// shard-<index>.json, via fileutil.WriteAtomic.
func writeShardFiles(dir string, shards []rs.Shard) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating shard directory: %w", err)
	}
	for _, s := range shards {
		data, err := json.MarshalIndent(shardToFile(s), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling shard %d: %w", s.Index, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("shard-%03d.json", s.Index))
		if err := fileutil.WriteAtomic(path, data, 0o600); err != nil {
			return fmt.Errorf("writing shard %d: %w", s.Index, err)
		}
	}
	return nil
}

// readShardFiles reads every .json file in dir (whatever its name) and
// returns the decoded shards in ascending index order.
func readShardFiles(dir string) ([]rs.Shard, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading shard directory: %w", err)
	}

	shards := make([]rs.Shard, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// #nosec G304 -- path is derived from a caller-supplied directory listing
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		var f shardFile
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		shard, err := shardFromFile(f)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", entry.Name(), err)
		}
		shards = append(shards, shard)
	}

	sort.Slice(shards, func(i, j int) bool { return shards[i].Index < shards[j].Index })
	return shards, nil
}
