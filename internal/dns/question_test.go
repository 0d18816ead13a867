package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionEncodeDecodeRoundTrip(t *testing.T) {
	q := Question{Name: "example.com", Type: TypeA, Class: ClassIN}

	buf := NewWriteBuffer(32)
	require.NoError(t, q.Encode(buf))

	var decoded Question
	require.NoError(t, decoded.Decode(NewBuffer(buf.Bytes())))
	assert.Equal(t, q, decoded)
}
