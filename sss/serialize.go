package sss

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

const (
	versionV1 = "1.0"
	versionV2 = "2.0"

	sharePrefix    = "SSS"
	metadataFields = 6
	shareFieldsV1  = 5
	shareFieldsV2  = 6
)

// SerializeMetadata encodes metadata as the pipe-delimited wire fields
// threshold|total|size|b64(secret_hash)|epoch_ms|share_set_id, then
// base64-encodes the whole thing.
func SerializeMetadata(meta ShareMetadata) string {
	raw := strings.Join([]string{
		strconv.Itoa(meta.Threshold),
		strconv.Itoa(meta.TotalShares),
		strconv.Itoa(meta.SecretSize),
		base64.StdEncoding.EncodeToString(meta.SecretHash[:]),
		strconv.FormatInt(meta.Timestamp.UnixMilli(), 10),
		meta.ShareSetID,
	}, "|")
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// ParseMetadata decodes a string produced by SerializeMetadata.
func ParseMetadata(encoded string) (ShareMetadata, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ShareMetadata{}, sherr.New(sherr.KindInvalidShare, errMalformedMetadataText)
	}
	fields := strings.Split(string(raw), "|")
	if len(fields) != metadataFields {
		return ShareMetadata{}, sherr.New(sherr.KindInvalidShare, errMalformedMetadataText)
	}

	threshold, err := strconv.Atoi(fields[0])
	if err != nil {
		return ShareMetadata{}, sherr.New(sherr.KindInvalidShare, errMalformedMetadataText)
	}
	total, err := strconv.Atoi(fields[1])
	if err != nil {
		return ShareMetadata{}, sherr.New(sherr.KindInvalidShare, errMalformedMetadataText)
	}
	size, err := strconv.Atoi(fields[2])
	if err != nil {
		return ShareMetadata{}, sherr.New(sherr.KindInvalidShare, errMalformedMetadataText)
	}
	hashBytes, err := base64.StdEncoding.DecodeString(fields[3])
	if err != nil || len(hashBytes) != 32 {
		return ShareMetadata{}, sherr.New(sherr.KindInvalidShare, errMalformedMetadataText)
	}
	epochMS, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return ShareMetadata{}, sherr.New(sherr.KindInvalidShare, errMalformedMetadataText)
	}

	var hash [32]byte
	copy(hash[:], hashBytes)

	return ShareMetadata{
		Threshold:   threshold,
		TotalShares: total,
		SecretSize:  size,
		SecretHash:  hash,
		Timestamp:   time.UnixMilli(epochMS),
		ShareSetID:  fields[5],
	}, nil
}

// SerializeShare encodes s in the current (v2.0) wire format:
// SSS_2.0_{index}_{b64(metadata)}_{b64(data)}_{b64(data_hash)}.
func SerializeShare(s Share) string {
	return fmt.Sprintf("%s_%s_%d_%s_%s_%s",
		sharePrefix, versionV2, s.Index,
		SerializeMetadata(s.Metadata),
		base64.StdEncoding.EncodeToString(s.Data),
		base64.StdEncoding.EncodeToString(s.DataHash[:]),
	)
}

// ParseShare decodes a share produced by SerializeShare, or a legacy
// v1.0 share (which carries no data_hash field; it is recomputed locally
// from the parsed index, data, and metadata.ShareSetID). Unknown
// versions are rejected.
func ParseShare(text string) (Share, error) {
	parts := strings.Split(text, "_")
	if len(parts) < 3 || parts[0] != sharePrefix {
		return Share{}, sherr.New(sherr.KindInvalidShare, errMalformedShareText)
	}

	version := parts[1]
	index, err := strconv.Atoi(parts[2])
	if err != nil {
		return Share{}, sherr.New(sherr.KindInvalidShare, errMalformedShareText)
	}

	switch version {
	case versionV2:
		if len(parts) != shareFieldsV2 {
			return Share{}, sherr.New(sherr.KindInvalidShare, errMalformedShareText)
		}
		return parseShareV2(parts, index)
	case versionV1:
		if len(parts) != shareFieldsV1 {
			return Share{}, sherr.New(sherr.KindInvalidShare, errMalformedShareText)
		}
		return parseShareV1(parts, index)
	default:
		return Share{}, sherr.New(sherr.KindInvalidShare, errUnsupportedShareVersion)
	}
}

func parseShareV2(parts []string, index int) (Share, error) {
	meta, err := ParseMetadata(parts[3])
	if err != nil {
		return Share{}, err
	}
	data, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return Share{}, sherr.New(sherr.KindInvalidShare, errMalformedShareText)
	}
	hashBytes, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil || len(hashBytes) != 32 {
		return Share{}, sherr.New(sherr.KindInvalidShare, errMalformedShareText)
	}
	var hash [32]byte
	copy(hash[:], hashBytes)

	return Share{Index: index, Data: data, Metadata: meta, DataHash: hash}, nil
}

func parseShareV1(parts []string, index int) (Share, error) {
	meta, err := ParseMetadata(parts[3])
	if err != nil {
		return Share{}, err
	}
	data, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return Share{}, sherr.New(sherr.KindInvalidShare, errMalformedShareText)
	}

	return Share{
		Index:    index,
		Data:     data,
		Metadata: meta,
		DataHash: computeDataHash(index, data, meta.ShareSetID),
	}, nil
}
