package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleQuery(name string) *DnsPacket {
	return &DnsPacket{
		Header: Header{
			ID:               0x42,
			Type:             MessageTypeQuery,
			OpCode:           OpCodeQuery,
			RecursionDesired: true,
		},
		Questions: []Question{{Name: name, Type: TypeA, Class: ClassIN}},
	}
}

func TestPacketEncodeParseRoundTrip(t *testing.T) {
	p := buildSimpleQuery("example.com")

	buf := NewWriteBuffer(DefaultBufferSize)
	require.NoError(t, p.Encode(buf))

	decoded, err := ParsePacket(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, p.Header.ID, decoded.Header.ID)
	assert.Equal(t, p.Questions, decoded.Questions)
}

func TestPacketMinTTLAcrossSections(t *testing.T) {
	p := &DnsPacket{
		Answers:     []RawRecord{{TTL: 300}, {TTL: 50}},
		Authorities: []RawRecord{{TTL: 10}},
		Additionals: []RawRecord{{TTL: 900}},
	}
	min, ok := p.MinTTL()
	require.True(t, ok)
	assert.Equal(t, uint32(10), min)
}

func TestPacketMinTTLEmptyPacket(t *testing.T) {
	p := &DnsPacket{}
	_, ok := p.MinTTL()
	assert.False(t, ok)
}

func TestParsePacketTruncatedFails(t *testing.T) {
	p := buildSimpleQuery("example.com")
	buf := NewWriteBuffer(DefaultBufferSize)
	require.NoError(t, p.Encode(buf))

	_, err := ParsePacket(buf.Bytes()[:6]) // header alone, cut mid-counts
	require.Error(t, err)
}
