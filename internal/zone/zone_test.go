package zone

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMatchesCaseInsensitively(t *testing.T) {
	text := "example.com IN A 1.2.3.4\n"
	recs, err := lookup(strings.NewReader(text), "EXAMPLE.COM.")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "example.com", recs[0].Name)
	assert.True(t, net.IPv4(1, 2, 3, 4).To4().Equal(recs[0].IP))
}

func TestLookupMultipleMatches(t *testing.T) {
	text := "example.com IN A 1.2.3.4\nexample.com IN A 5.6.7.8\nother.com IN A 9.9.9.9\n"
	recs, err := lookup(strings.NewReader(text), "example.com")
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestLookupNoMatchReturnsNilNoError(t *testing.T) {
	text := "example.com IN A 1.2.3.4\n"
	recs, err := lookup(strings.NewReader(text), "nowhere.com")
	require.NoError(t, err)
	assert.Nil(t, recs)
}

func TestLookupIgnoresCommentsAndBlankLines(t *testing.T) {
	text := "# a comment\n#another comment\n\nexample.com IN A 1.2.3.4\n"
	recs, err := lookup(strings.NewReader(text), "example.com")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestLookupWrongArityFails(t *testing.T) {
	text := "example.com IN A\n"
	_, err := lookup(strings.NewReader(text), "example.com")
	require.ErrorIs(t, err, ErrBrokenBindFile)
}

func TestLookupUnsupportedTypeFails(t *testing.T) {
	text := "example.com IN MX 1.2.3.4\n"
	_, err := lookup(strings.NewReader(text), "example.com")
	require.ErrorIs(t, err, ErrBrokenBindFile)
}

func TestLookupInvalidIPFails(t *testing.T) {
	text := "example.com IN A not-an-ip\n"
	_, err := lookup(strings.NewReader(text), "example.com")
	require.ErrorIs(t, err, ErrBrokenBindFile)
}
