package sss

import (
	"crypto/sha256"
	"strconv"

	"github.com/mrz1836/gfshard/internal/securemem"
)

// Share is a single SSS output piece: the byte value of every secret
// polynomial evaluated at x = Index, plus the Metadata of the split that
// produced it and a tamper-evidence hash over Index, Data, and the
// operation's ShareSetID.
type Share struct {
	Index    int
	Data     []byte
	Metadata ShareMetadata
	DataHash [32]byte
}

// computeDataHash returns SHA256(decimalASCII(index) || data || shareSetID),
// the tamper-evidence binding described by the data model.
func computeDataHash(index int, data []byte, shareSetID string) [32]byte {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(index)))
	h.Write(data)
	h.Write([]byte(shareSetID))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// VerifyHash reports whether s.DataHash matches the hash recomputed from
// s's own Index, Data, and Metadata.ShareSetID.
func (s Share) VerifyHash() bool {
	want := computeDataHash(s.Index, s.Data, s.Metadata.ShareSetID)
	return securemem.ConstantTimeEqual(want[:], s.DataHash[:])
}
