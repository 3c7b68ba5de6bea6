package pool

import (
	"strings"
	"sync"
)

// BytePool hands out byte slices for packed dictionary keys and read chunks.
type BytePool struct {
	pool sync.Pool
}

// NewBytePool creates a pool whose fresh buffers hold size bytes.
func NewBytePool(size int) *BytePool {
	return &BytePool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
	}
}

// Get retrieves an empty buffer from the pool.
func (kp *BytePool) Get() *[]byte {
	return kp.pool.Get().(*[]byte)
}

// Put returns a buffer for reuse, keeping its capacity.
func (kp *BytePool) Put(buffer *[]byte) {
	*buffer = (*buffer)[:0]
	kp.pool.Put(buffer)
}

// UnitPool hands out UTF-16 code unit slices.
type UnitPool struct {
	pool sync.Pool
}

// NewUnitPool creates a pool whose fresh buffers hold size units.
func NewUnitPool(size int) *UnitPool {
	return &UnitPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]uint16, 0, size)
				return &buffer
			},
		},
	}
}

// Get retrieves an empty unit buffer.
func (up *UnitPool) Get() *[]uint16 {
	return up.pool.Get().(*[]uint16)
}

// Put returns a unit buffer for reuse.
func (up *UnitPool) Put(buffer *[]uint16) {
	*buffer = (*buffer)[:0]
	up.pool.Put(buffer)
}

// BuilderPool implements a pool of strings.Builder for converted output.
type BuilderPool struct {
	pool sync.Pool
}

// NewBuilderPool creates a new strings.Builder pool.
func NewBuilderPool() *BuilderPool {
	return &BuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(strings.Builder)
			},
		},
	}
}

// Get retrieves a reset builder.
func (bp *BuilderPool) Get() *strings.Builder {
	return bp.pool.Get().(*strings.Builder)
}

// Put resets sb and returns it to the pool.
func (bp *BuilderPool) Put(sb *strings.Builder) {
	sb.Reset()
	bp.pool.Put(sb)
}
