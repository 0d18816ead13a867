package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResultCodeValidRange(t *testing.T) {
	for v := uint8(0); v <= 5; v++ {
		rc, err := ParseResultCode(v)
		require.NoError(t, err)
		assert.Equal(t, ResultCode(v), rc)
	}
}

func TestParseResultCodeRejectsOutOfRange(t *testing.T) {
	_, err := ParseResultCode(6)
	require.ErrorIs(t, err, ErrUnknownResultCode)
}

func TestOpCodeIsKnown(t *testing.T) {
	assert.True(t, OpCodeQuery.IsKnown())
	assert.True(t, OpCodeStatus.IsKnown())
	assert.False(t, OpCode(9).IsKnown())
}
