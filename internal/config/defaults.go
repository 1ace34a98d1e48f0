package config

// Defaults returns the default configuration: an 8-data/4-parity RS
// scheme with 64 KiB shards, a 3-of-5 SSS scheme, and error-level logging
// to the gfshard home directory.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.gfshard",
		RS: RSConfig{
			DataShards:   8,
			ParityShards: 4,
			ShardSize:    65536,
		},
		SSS: SSSConfig{
			Threshold:       3,
			TotalShares:     5,
			SecretMaxSize:   1024,
			UseSecureRandom: true,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.gfshard/gfshard.log",
		},
	}
}
