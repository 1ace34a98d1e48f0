package sss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/sss"
)

func TestSplitProducesNShares(t *testing.T) {
	t.Parallel()
	cfg := sss.DefaultConfig(3, 5)
	shares, meta, err := sss.Split([]byte("my secret value"), cfg)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	for i, s := range shares {
		assert.Equal(t, i+1, s.Index)
		assert.Len(t, s.Data, meta.SecretSize)
		assert.True(t, s.VerifyHash())
		assert.Equal(t, meta.ShareSetID, s.Metadata.ShareSetID)
	}
}

func TestSplitEmptySecretFails(t *testing.T) {
	t.Parallel()
	_, _, err := sss.Split(nil, sss.DefaultConfig(3, 5))
	assert.Error(t, err)
}

func TestSplitOversizeSecretFails(t *testing.T) {
	t.Parallel()
	cfg := sss.DefaultConfig(3, 5)
	_, _, err := sss.Split(make([]byte, sss.MaxSecretSize+1), cfg)
	assert.Error(t, err)
}

func TestSplitTwoOperationsProduceDifferentShareSetIDs(t *testing.T) {
	t.Parallel()
	cfg := sss.DefaultConfig(3, 5)
	_, metaA, err := sss.Split([]byte("same secret"), cfg)
	require.NoError(t, err)
	_, metaB, err := sss.Split([]byte("same secret"), cfg)
	require.NoError(t, err)

	assert.NotEqual(t, metaA.ShareSetID, metaB.ShareSetID)
}
