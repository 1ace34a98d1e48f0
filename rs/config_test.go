package rs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/rs"
)

func TestEncodingConfigValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     rs.EncodingConfig
		wantErr bool
	}{
		{"valid", rs.EncodingConfig{DataShards: 8, ParityShards: 6, ShardSize: 256}, false},
		{"zero data shards", rs.EncodingConfig{DataShards: 0, ParityShards: 1, ShardSize: 1}, true},
		{"zero parity shards", rs.EncodingConfig{DataShards: 1, ParityShards: 0, ShardSize: 1}, true},
		{"zero shard size", rs.EncodingConfig{DataShards: 1, ParityShards: 1, ShardSize: 0}, true},
		{"too many total shards", rs.EncodingConfig{DataShards: 200, ParityShards: 100, ShardSize: 1}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEncodingConfigTotalShards(t *testing.T) {
	t.Parallel()
	cfg := rs.EncodingConfig{DataShards: 8, ParityShards: 6, ShardSize: 64}
	assert.Equal(t, 14, cfg.TotalShards())
}
