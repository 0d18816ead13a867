package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacketBuilderMirrorsRequestIDAndRD(t *testing.T) {
	req := buildSimpleQuery("example.com")
	resp := NewResponseBuilder(req).
		WithRecursionAvailable(false).
		WithResultCode(ResultCodeNameError).
		Build()

	assert.Equal(t, req.Header.ID, resp.Header.ID)
	assert.Equal(t, req.Header.RecursionDesired, resp.Header.RecursionDesired)
	assert.Equal(t, MessageTypeResponse, resp.Header.Type)
	assert.Equal(t, OpCodeQuery, resp.Header.OpCode)
	assert.False(t, resp.Header.AuthoritativeAnswer)
	assert.False(t, resp.Header.Truncated)
	assert.Equal(t, ResultCodeNameError, resp.Header.ResultCode)
	assert.Equal(t, req.Questions, resp.Questions)
}

func TestPacketBuilderAnswersDefaultEmpty(t *testing.T) {
	req := buildSimpleQuery("example.com")
	resp := NewResponseBuilder(req).Build()
	assert.Empty(t, resp.Answers)
}
