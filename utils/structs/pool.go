// Package structs implements generic pools of reusable buffers.
package structs

import "sync"

// BufferPool is an interface for pools of reusable objects.
// An object obtained with Get must be handed back with Put once the caller is done with it.
type BufferPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool is a [BufferPool] backed by a [sync.Pool] that avoids type assertions at call sites.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool.
// f is used to create new objects when none is available in the pool.
func NewSyncPool[T any](f func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{
			New: func() any {
				return f()
			},
		},
	}
}

// Get returns an object from the pool.
func (p *SyncPool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put returns obj to the pool.
func (p *SyncPool[T]) Put(obj T) {
	p.pool.Put(obj)
}

// NewSyncPoolUint64 returns a pool of *[]uint64 of the given length.
// The returned buffers are not zeroed.
func NewSyncPoolUint64(size int) *SyncPool[*[]uint64] {
	return NewSyncPool(func() *[]uint64 {
		buff := make([]uint64, size)
		return &buff
	})
}
