package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := Header{
		ID:                  0xBEEF,
		Type:                MessageTypeResponse,
		OpCode:              OpCodeQuery,
		AuthoritativeAnswer: false,
		Truncated:           false,
		RecursionDesired:    true,
		RecursionAvailable:  true,
		ResultCode:          ResultCodeNoError,
		QuestionCount:       1,
		AnswerCount:         2,
		AuthorityCount:      0,
		AdditionalCount:     0,
	}

	buf := NewWriteBuffer(12)
	require.NoError(t, h.Encode(buf))

	var decoded Header
	r := NewBuffer(buf.Bytes())
	require.NoError(t, decoded.Decode(r))
	assert.Equal(t, h, decoded)
}

func TestHeaderDecodeUnknownOpcodePreserved(t *testing.T) {
	// flags byte1: QR=1, opcode=15 (reserved), AA=0,TC=0,RD=0 -> 1 1111 000 = 0xF8
	raw := []byte{
		0, 1,
		0xF8, 0x00,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	var h Header
	require.NoError(t, h.Decode(NewBuffer(raw)))
	assert.Equal(t, OpCode(15), h.OpCode)
	assert.False(t, h.OpCode.IsKnown())
}

func TestHeaderDecodeUnknownResultCodeFails(t *testing.T) {
	raw := []byte{
		0, 1,
		0x00, 0x0F, // rcode nibble = 15, invalid
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	var h Header
	err := h.Decode(NewBuffer(raw))
	require.ErrorIs(t, err, ErrUnknownResultCode)
}
