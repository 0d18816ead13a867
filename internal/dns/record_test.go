package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRecordEncodeDecodeRoundTrip(t *testing.T) {
	r := RawRecord{
		Name:   "example.com",
		Type:   TypeA,
		Class:  ClassIN,
		TTL:    300,
		RDData: []byte{127, 0, 0, 1},
	}

	buf := NewWriteBuffer(64)
	require.NoError(t, r.Encode(buf))

	var decoded RawRecord
	require.NoError(t, decoded.Decode(NewBuffer(buf.Bytes())))
	assert.Equal(t, r, decoded)
}

func TestRawRecordPreservesUnknownType(t *testing.T) {
	r := RawRecord{
		Name:   "weird.example",
		Type:   QueryType(65399), // private-use range, unhandled by this resolver
		Class:  ClassIN,
		TTL:    60,
		RDData: []byte("opaque payload"),
	}

	buf := NewWriteBuffer(64)
	require.NoError(t, r.Encode(buf))

	var decoded RawRecord
	require.NoError(t, decoded.Decode(NewBuffer(buf.Bytes())))
	assert.Equal(t, r, decoded)
}
