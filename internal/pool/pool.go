// Package pool provides a reusable pool of fixed-size packet buffers,
// cutting per-datagram allocations on the UDP hot path.
package pool

import "sync"

// Buffers hands out byte slices of a fixed length, recycling them between
// datagrams.
type Buffers struct {
	size     int
	internal sync.Pool
}

// NewBuffers creates a pool whose buffers are all size bytes long.
func NewBuffers(size int) *Buffers {
	return &Buffers{
		size: size,
		internal: sync.Pool{
			New: func() any {
				b := make([]byte, size)
				return &b
			},
		},
	}
}

// Get returns a buffer of the pool's fixed size. Contents are whatever the
// previous holder left behind; callers overwrite before reading.
func (p *Buffers) Get() *[]byte {
	return p.internal.Get().(*[]byte)
}

// Put recycles buf for a later Get. A buffer of the wrong length is dropped
// rather than poisoning the pool.
func (p *Buffers) Put(buf *[]byte) {
	if buf == nil || len(*buf) != p.size {
		return
	}
	p.internal.Put(buf)
}

// Size reports the fixed buffer length.
func (p *Buffers) Size() int { return p.size }
