package dns

import (
	"fmt"
	"strings"
)

// DefaultBufferSize is the capacity a Buffer allocates when none is given,
// large enough for any UDP query or non-EDNS response this resolver handles.
const DefaultBufferSize = 512

// maxNameJumps bounds how many compression pointers ReadName follows before
// giving up.
const maxNameJumps = 10

// Buffer is a positioned cursor over a fixed byte slice. It is built fresh
// in read mode over bytes received from the wire, or in write mode over a
// freshly allocated (or pooled) slice being built up for send. Every method
// advances pos and fails with ErrBufferOverflow rather than panicking.
type Buffer struct {
	buf []byte
	pos int
}

// NewBuffer wraps buf for reading, starting at offset 0.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// NewWriteBuffer allocates a zeroed buffer of size bytes for writing.
func NewWriteBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{buf: make([]byte, size)}
}

// Pos returns the current cursor offset.
func (b *Buffer) Pos() int { return b.pos }

// Seek moves the cursor to an absolute offset without bounds-checking it
// against content already written; callers seek within len(b.buf).
func (b *Buffer) Seek(pos int) error {
	if pos < 0 || pos > len(b.buf) {
		return fmt.Errorf("%w: %w: seek to %d", ErrDNSError, ErrBufferOverflow, pos)
	}
	b.pos = pos
	return nil
}

// Bytes returns the portion of the underlying buffer written so far.
func (b *Buffer) Bytes() []byte { return b.buf[:b.pos] }

// Len returns the capacity of the underlying buffer.
func (b *Buffer) Len() int { return len(b.buf) }

// ReadU8 reads a single byte and advances the cursor.
func (b *Buffer) ReadU8() (uint8, error) {
	if b.pos >= len(b.buf) {
		return 0, fmt.Errorf("%w: %w: read u8 at %d", ErrDNSError, ErrBufferOverflow, b.pos)
	}
	v := b.buf[b.pos]
	b.pos++
	return v, nil
}

// ReadU16 reads a big-endian 16-bit value.
func (b *Buffer) ReadU16() (uint16, error) {
	hi, err := b.ReadU8()
	if err != nil {
		return 0, err
	}
	lo, err := b.ReadU8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// ReadU32 reads a big-endian 32-bit value.
func (b *Buffer) ReadU32() (uint32, error) {
	hi, err := b.ReadU16()
	if err != nil {
		return 0, err
	}
	lo, err := b.ReadU16()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

// PeekU8 reads the byte at pos without advancing the cursor.
func (b *Buffer) PeekU8(pos int) (uint8, error) {
	if pos >= len(b.buf) {
		return 0, fmt.Errorf("%w: %w: peek u8 at %d", ErrDNSError, ErrBufferOverflow, pos)
	}
	return b.buf[pos], nil
}

// getSlice returns buf[start:start+length] using the strict boundary: it is
// overflow for start+length to reach (not just exceed) len(buf), because the
// caller is always about to read at least one more byte (a label length or
// pointer) immediately after. Used only from label-byte reads inside
// ReadName.
func (b *Buffer) getSlice(start, length int) ([]byte, error) {
	if start+length >= len(b.buf) {
		return nil, fmt.Errorf("%w: %w: slice [%d:%d) of %d", ErrDNSError, ErrBufferOverflow, start, start+length, len(b.buf))
	}
	return b.buf[start : start+length], nil
}

// ReadBytes reads length raw bytes starting at the cursor and advances past
// them. Used for record rdata and other opaque payloads; exactly filling the
// remainder of the buffer is legal here.
func (b *Buffer) ReadBytes(length int) ([]byte, error) {
	if b.pos+length > len(b.buf) {
		return nil, fmt.Errorf("%w: %w: read %d bytes at %d", ErrDNSError, ErrBufferOverflow, length, b.pos)
	}
	out := make([]byte, length)
	copy(out, b.buf[b.pos:b.pos+length])
	b.pos += length
	return out, nil
}

// WriteU8 writes a single byte.
func (b *Buffer) WriteU8(v uint8) error {
	if b.pos >= len(b.buf) {
		return fmt.Errorf("%w: %w: write u8 at %d", ErrDNSError, ErrBufferOverflow, b.pos)
	}
	b.buf[b.pos] = v
	b.pos++
	return nil
}

// WriteU16 writes a big-endian 16-bit value.
func (b *Buffer) WriteU16(v uint16) error {
	if err := b.WriteU8(uint8(v >> 8)); err != nil {
		return err
	}
	return b.WriteU8(uint8(v))
}

// WriteU32 writes a big-endian 32-bit value.
func (b *Buffer) WriteU32(v uint32) error {
	if err := b.WriteU16(uint16(v >> 16)); err != nil {
		return err
	}
	return b.WriteU16(uint16(v))
}

// WriteBytes writes raw bytes starting at the cursor.
func (b *Buffer) WriteBytes(data []byte) error {
	if b.pos+len(data) > len(b.buf) {
		return fmt.Errorf("%w: %w: write %d bytes at %d", ErrDNSError, ErrBufferOverflow, len(data), b.pos)
	}
	copy(b.buf[b.pos:], data)
	b.pos += len(data)
	return nil
}

// ReadName decodes a domain name starting at the cursor, following RFC 1035
// §4.1.4 compression pointers. Names are returned dot-joined, lower-cased,
// without a trailing dot, e.g. "example.com" for the wire form
// 07example03com00; the root name decodes to "". It follows at most
// maxNameJumps pointers before failing with ErrNameLoop, and advances the
// visible cursor only past the bytes of the first (non-pointer-followed)
// occurrence.
func (b *Buffer) ReadName() (string, error) {
	var labels []string
	pos := b.pos
	jumped := false
	endPos := pos
	jumps := 0

	for {
		if jumps > maxNameJumps {
			return "", fmt.Errorf("%w: %w", ErrDNSError, ErrNameLoop)
		}

		lenByte, err := b.PeekU8(pos)
		if err != nil {
			return "", err
		}

		if lenByte&0xC0 == 0xC0 {
			if !jumped {
				endPos = pos + 2
			}
			hi, err := b.PeekU8(pos)
			if err != nil {
				return "", err
			}
			lo, err := b.PeekU8(pos + 1)
			if err != nil {
				return "", err
			}
			offset := int(uint16(hi&0x3F)<<8 | uint16(lo))
			pos = offset
			jumped = true
			jumps++
			continue
		}

		if lenByte&0xC0 != 0 {
			return "", fmt.Errorf("%w: %w: reserved label length bits 0x%02x", ErrDNSError, ErrBufferOverflow, lenByte)
		}

		pos++
		if lenByte == 0 {
			if !jumped {
				endPos = pos
			}
			break
		}

		label, err := b.getSlice(pos, int(lenByte))
		if err != nil {
			return "", err
		}
		labels = append(labels, strings.ToLower(string(label)))
		pos += int(lenByte)
		if !jumped {
			endPos = pos
		}
	}

	b.pos = endPos
	return strings.Join(labels, "."), nil
}

// WriteName encodes name (dot-separated, optionally root-terminated) as a
// sequence of length-prefixed labels followed by a zero-length terminator.
// It never emits compression pointers: responses built by this resolver are
// small enough that compression is not worth the bookkeeping.
func (b *Buffer) WriteName(name string) error {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return b.WriteU8(0)
	}
	for _, label := range strings.Split(name, ".") {
		if len(label) > 63 {
			return fmt.Errorf("%w: %w: %q", ErrDNSError, ErrLabelTooLong, label)
		}
		if err := b.WriteU8(uint8(len(label))); err != nil {
			return err
		}
		if err := b.WriteBytes([]byte(label)); err != nil {
			return err
		}
	}
	return b.WriteU8(0)
}
