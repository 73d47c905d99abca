// Package memory provides the transient buffer allocator used by the fill
// engine for coverage, intersection and color rows.
package memory

import (
	"errors"
	"sync"

	"github.com/gogpu/fill/pixel"
)

// Common errors for buffer allocation.
var (
	// ErrCapacityExceeded is returned when a request is larger than the
	// allocator is configured to hand out.
	ErrCapacityExceeded = errors.New("memory: allocation exceeds capacity")

	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("memory: invalid buffer length")
)

// Allocator hands out zeroed transient buffers.
//
// Implementations must be safe for concurrent use: the fill engine allocates
// from several row workers at once.
type Allocator interface {
	AllocateFloat32(length int) (*Buffer[float32], error)
	AllocateVector4(length int) (*Buffer[pixel.Vector4], error)
}

// Buffer is a scoped allocation. Call Release exactly when the owner is done;
// further calls are no-ops.
type Buffer[T any] struct {
	data    []T
	release func([]T)
	once    sync.Once
}

// NewBuffer wraps data in a Buffer. release may be nil.
func NewBuffer[T any](data []T, release func([]T)) *Buffer[T] {
	return &Buffer[T]{data: data, release: release}
}

// Slice returns the buffer contents. It must not be used after Release.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Len returns the buffer length.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Release returns the buffer to its allocator.
func (b *Buffer[T]) Release() {
	b.once.Do(func() {
		if b.release != nil {
			b.release(b.data)
		}
		b.data = nil
	})
}

// Pool is a thread-safe allocator that reuses buffers of identical length.
//
// Pool groups buffers by element type and length. Buffers are cleared before
// they are handed out again.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	floats  map[int][][]float32
	vectors map[int][][]pixel.Vector4
	maxSize int // max buffers per bucket
	maxLen  int // max elements per request, 0 means unlimited
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithMaxLength limits the number of elements a single request may ask for.
// Larger requests fail with ErrCapacityExceeded.
func WithMaxLength(n int) PoolOption {
	return func(p *Pool) {
		p.maxLen = n
	}
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// type and length. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int, opts ...PoolOption) *Pool {
	p := &Pool{
		floats:  make(map[int][][]float32),
		vectors: make(map[int][][]pixel.Vector4),
		maxSize: maxPerBucket,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AllocateFloat32 implements Allocator.
func (p *Pool) AllocateFloat32(length int) (*Buffer[float32], error) {
	return allocate(p, p.floats, length)
}

// AllocateVector4 implements Allocator.
func (p *Pool) AllocateVector4(length int) (*Buffer[pixel.Vector4], error) {
	return allocate(p, p.vectors, length)
}

// Retained reports how many buffers the pool currently holds.
func (p *Pool) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.floats {
		n += len(b)
	}
	for _, b := range p.vectors {
		n += len(b)
	}
	return n
}

func allocate[T any](p *Pool, buckets map[int][][]T, length int) (*Buffer[T], error) {
	if length < 0 {
		return nil, ErrInvalidLength
	}
	if p.maxLen > 0 && length > p.maxLen {
		return nil, ErrCapacityExceeded
	}

	p.mu.Lock()
	bucket := buckets[length]
	var data []T
	if len(bucket) > 0 {
		// Pop from pool
		data = bucket[len(bucket)-1]
		buckets[length] = bucket[:len(bucket)-1]
	}
	p.mu.Unlock()

	if data == nil {
		data = make([]T, length)
	} else {
		clear(data)
	}

	return NewBuffer(data, func(d []T) { put(p, buckets, d) }), nil
}

func put[T any](p *Pool, buckets map[int][][]T, data []T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := buckets[len(data)]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		// Bucket full, discard buffer (GC will clean up)
		return
	}
	buckets[len(data)] = append(bucket, data)
}

// defaultPool is the package-level pool used when no allocator is configured.
var defaultPool = NewPool(64)

// Default returns the shared package-level pool.
func Default() *Pool {
	return defaultPool
}
