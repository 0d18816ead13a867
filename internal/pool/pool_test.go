package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffersGetPut(t *testing.T) {
	p := NewBuffers(512)
	assert.Equal(t, 512, p.Size())

	buf := p.Get()
	require.NotNil(t, buf)
	assert.Len(t, *buf, 512)
	p.Put(buf)

	again := p.Get()
	require.NotNil(t, again)
	assert.Len(t, *again, 512)
}

func TestBuffersDropsWrongLength(t *testing.T) {
	p := NewBuffers(512)
	short := make([]byte, 16)
	p.Put(&short)

	buf := p.Get()
	assert.Len(t, *buf, 512, "a wrong-size buffer must never come back out")
}

func TestBuffersConcurrentAccess(t *testing.T) {
	p := NewBuffers(512)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf := p.Get()
				assert.Len(t, *buf, 512)
				(*buf)[0] = byte(j)
				p.Put(buf)
			}
		}()
	}
	wg.Wait()
}
