package sss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/sss"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     sss.Config
		wantErr bool
	}{
		{"valid", sss.DefaultConfig(3, 5), false},
		{"zero threshold", sss.Config{Threshold: 0, TotalShares: 5, SecretMaxSize: 1024, FieldSize: 256}, true},
		{"total below threshold", sss.Config{Threshold: 4, TotalShares: 3, SecretMaxSize: 1024, FieldSize: 256}, true},
		{"total too large", sss.Config{Threshold: 3, TotalShares: 129, SecretMaxSize: 1024, FieldSize: 256}, true},
		{"wrong field size", sss.Config{Threshold: 3, TotalShares: 5, SecretMaxSize: 1024, FieldSize: 2}, true},
		{"secret max too large", sss.Config{Threshold: 3, TotalShares: 5, SecretMaxSize: 2000, FieldSize: 256}, true},
		{"threshold one accepted", sss.DefaultConfig(1, 5), false},
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

func TestDefaultConfigFields(t *testing.T) {
	t.Parallel()
	cfg := sss.DefaultConfig(3, 5)
	assert.Equal(t, 3, cfg.Threshold)
	assert.Equal(t, 5, cfg.TotalShares)
	assert.Equal(t, sss.MaxSecretSize, cfg.SecretMaxSize)
	assert.Equal(t, sss.FieldSize, cfg.FieldSize)
	assert.True(t, cfg.UseSecureRandom)
}
