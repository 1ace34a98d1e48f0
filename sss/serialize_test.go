package sss_test

import (
	"encoding/base64"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/sss"
)

func TestSerializeShareRoundTripV2(t *testing.T) {
	t.Parallel()
	cfg := sss.DefaultConfig(3, 5)
	shares, _, err := sss.Split([]byte("round trip me"), cfg)
	require.NoError(t, err)
	original := shares[0]

	text := sss.SerializeShare(original)
	parsed, err := sss.ParseShare(text)
	require.NoError(t, err)

	assert.Equal(t, original.Index, parsed.Index)
	assert.Equal(t, original.Data, parsed.Data)
	assert.Equal(t, original.DataHash, parsed.DataHash)
	assert.True(t, parsed.Metadata.Compatible(original.Metadata))
	// The wire format carries millisecond precision, so compare timestamps
	// at that granularity rather than the in-memory nanosecond clock.
	assert.Equal(t, original.Metadata.Timestamp.UnixMilli(), parsed.Metadata.Timestamp.UnixMilli())
}

// S6 — legacy round-trip.
func TestLegacyShareRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := sss.DefaultConfig(3, 5)
	shares, _, err := sss.Split([]byte("legacy format secret"), cfg)
	require.NoError(t, err)
	original := shares[0]

	v1Text := legacySerialize(original)

	parsed, err := sss.ParseShare(v1Text)
	require.NoError(t, err)
	assert.True(t, parsed.VerifyHash())

	reserialized := sss.SerializeShare(parsed)
	roundTripped, err := sss.ParseShare(reserialized)
	require.NoError(t, err)
	assert.Equal(t, parsed, roundTripped)
}

func TestParseShareRejectsUnknownVersion(t *testing.T) {
	t.Parallel()
	_, err := sss.ParseShare("SSS_9.9_1_abc_def_ghi")
	assert.Error(t, err)
}

func TestParseShareRejectsMalformedText(t *testing.T) {
	t.Parallel()
	_, err := sss.ParseShare("not-a-share")
	assert.Error(t, err)
}

func TestMetadataRoundTrip(t *testing.T) {
	t.Parallel()
	cfg := sss.DefaultConfig(3, 5)
	_, meta, err := sss.Split([]byte("metadata round trip"), cfg)
	require.NoError(t, err)

	encoded := sss.SerializeMetadata(meta)
	decoded, err := sss.ParseMetadata(encoded)
	require.NoError(t, err)

	assert.Equal(t, meta.Threshold, decoded.Threshold)
	assert.Equal(t, meta.TotalShares, decoded.TotalShares)
	assert.Equal(t, meta.SecretSize, decoded.SecretSize)
	assert.Equal(t, meta.SecretHash, decoded.SecretHash)
	assert.Equal(t, meta.ShareSetID, decoded.ShareSetID)
}

// legacySerialize builds a v1.0 wire-format string (no data_hash field),
// mirroring what an older client would have produced.
func legacySerialize(s sss.Share) string {
	return "SSS_1.0_" +
		strconv.Itoa(s.Index) + "_" +
		sss.SerializeMetadata(s.Metadata) + "_" +
		base64.StdEncoding.EncodeToString(s.Data)
}
