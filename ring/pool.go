package ring

import (
	"fmt"

	"github.com/joshbeal/SEAL/utils/structs"
)

// BufferPool hands out scratch []uint64 buffers of at most Size() words.
// Requests for larger buffers are served by a fresh allocation that is dropped on release.
// A nil *BufferPool is valid and always allocates.
// Buffers are not zeroed. A BufferPool is safe for concurrent use.
type BufferPool struct {
	size       int
	bufferPool structs.BufferPool[*[]uint64]
}

// NewBufferPool returns a new pool of buffers of size words, optionally drawing
// the backing arrays from the given pool.
func NewBufferPool(size int, pools ...structs.BufferPool[*[]uint64]) *BufferPool {
	p := &BufferPool{size: size}
	switch lenPool := len(pools); lenPool {
	case 0:
		p.bufferPool = structs.NewSyncPoolUint64(size)
	case 1:
		p.bufferPool = pools[0]
	default:
		panic(fmt.Errorf("the method takes at most 1 pool but %d were given", lenPool))
	}
	return p
}

// Size returns the size of the pooled buffers.
func (p *BufferPool) Size() int {
	if p == nil {
		return 0
	}
	return p.size
}

// GetBuffUint64 returns a buffer of n words.
// After use, the buffer should be handed back with [BufferPool.RecycleBuffUint64].
func (p *BufferPool) GetBuffUint64(n int) *[]uint64 {
	if p == nil || n > p.size {
		buff := make([]uint64, n)
		return &buff
	}
	buff := p.bufferPool.Get()
	*buff = (*buff)[:n]
	return buff
}

// RecycleBuffUint64 returns a buffer obtained from [BufferPool.GetBuffUint64] to the pool.
// The buffer must not be used afterwards.
func (p *BufferPool) RecycleBuffUint64(buff *[]uint64) {
	if p == nil || cap(*buff) != p.size {
		return
	}
	*buff = (*buff)[:p.size]
	p.bufferPool.Put(buff)
}
