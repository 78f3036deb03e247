package tensormedia

import "sync/atomic"

/*
A MemoryBlock represents a read-only byte buffer that may be accessed
concurrently from multiple goroutines. When a MemoryBlock is passed to a
consumer function, the consumer should process the bytes and Release() the
block as quickly as possible. If the bytes cannot be processed quickly, the
consumer should make a copy, Release(), then continue with its local copy.

Sharing is managed by reference counting. Hold() increments the reference
count by 1, Release() decrements it by 1. The done function is called when
the count reaches 0.

The goal is to avoid extraneous allocations/copies when a potentially large
encoded-media buffer needs to be consumed by multiple pipeline stages.
*/
type MemoryBlock struct {
	data []byte

	count int32
	done  func()
}

// NewMemoryBlock wraps data in a block with an initial hold count of 1. The
// done function, if non-nil, is called when the count reaches zero.
func NewMemoryBlock(data []byte, done func()) *MemoryBlock {
	return &MemoryBlock{data, 1, done}
}

// Bytes returns the underlying byte buffer. Callers must not mutate it.
func (b *MemoryBlock) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes in the block.
func (b *MemoryBlock) Len() int {
	return len(b.data)
}

// Empty reports whether the block has zero length.
func (b *MemoryBlock) Empty() bool {
	return len(b.data) == 0
}

// Hold increments the hold count.
func (b *MemoryBlock) Hold() {
	atomic.AddInt32(&b.count, 1)
}

// Release decrements the hold count. When the hold count reaches zero, the
// underlying byte buffer is released.
func (b *MemoryBlock) Release() {
	if b == nil {
		return
	}
	newCount := atomic.AddInt32(&b.count, -1)
	if newCount == 0 && b.done != nil {
		b.done()
	}
}
