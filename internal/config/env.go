package config

import (
	"strconv"
	"strings"

	"os"
)

// Environment variable names.
const (
	EnvHome         = "GFSHARD_HOME"
	EnvLogLevel     = "GFSHARD_LOG_LEVEL"
	EnvDataShards   = "GFSHARD_RS_DATA_SHARDS"
	EnvParityShards = "GFSHARD_RS_PARITY_SHARDS"
	EnvShardSize    = "GFSHARD_RS_SHARD_SIZE"
	EnvThreshold    = "GFSHARD_SSS_THRESHOLD"
	EnvTotalShares  = "GFSHARD_SSS_TOTAL_SHARES"
)

// ApplyEnvironment applies GFSHARD_* environment variable overrides to
// cfg. Malformed numeric values are silently ignored, leaving the prior
// value in place.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}

	applyPositiveInt(EnvDataShards, &cfg.RS.DataShards)
	applyPositiveInt(EnvParityShards, &cfg.RS.ParityShards)
	applyPositiveInt(EnvShardSize, &cfg.RS.ShardSize)
	applyPositiveInt(EnvThreshold, &cfg.SSS.Threshold)
	applyPositiveInt(EnvTotalShares, &cfg.SSS.TotalShares)
}

func applyPositiveInt(envVar string, dst *int) {
	v := os.Getenv(envVar)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}
