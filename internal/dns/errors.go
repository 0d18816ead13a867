// Package dns implements the wire codec and message model for a caching
// DNS resolver: header, question, and resource-record decoding/encoding
// with RFC 1035 name-compression support (RFC 1035 Section 4.1.4).
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification
//
// Error Handling:
//
// All errors are wrapped with context using fmt.Errorf("...: %w", err),
// rooted at ErrDNSError so callers can test with errors.Is.
package dns

import "errors"

var (
	// ErrDNSError is the sentinel root for every wire-codec failure.
	ErrDNSError = errors.New("dns wire error")

	// ErrBufferOverflow is returned when a read or write would cross the
	// bounds of the underlying byte slice.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrNameLoop is returned when decoding a name follows more than 10
	// compression-pointer indirections.
	ErrNameLoop = errors.New("possibly loop in the question")

	// ErrLabelTooLong is returned when encoding a label longer than 63 bytes.
	ErrLabelTooLong = errors.New("length of label is greater than 63 bytes")

	// ErrUnknownResultCode is returned when a header's RCODE nibble holds a
	// value outside 0-5.
	ErrUnknownResultCode = errors.New("unsupported result code")
)
