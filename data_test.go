package tensormedia

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataKinds(t *testing.T) {
	var none Data
	assert.Equal(t, KindNone, none.Kind())
	assert.False(t, none.IsMemoryBlock())
	assert.False(t, none.IsTensor())

	block := BlockData(NewMemoryBlock([]byte{1, 2, 3}, nil))
	assert.Equal(t, KindMemoryBlock, block.Kind())
	assert.True(t, block.IsMemoryBlock())
	assert.Equal(t, 3, block.MemoryBlock().Len())

	tensor := TensorData(&Tensor{dtype: Uint8})
	assert.Equal(t, KindTensor, tensor.Kind())
	assert.True(t, tensor.IsTensor())
}

func TestDataKindStrings(t *testing.T) {
	assert.Equal(t, "memory_block", KindMemoryBlock.String())
	assert.Equal(t, "tensor", KindTensor.String())
	assert.Equal(t, "none", KindNone.String())
}

func TestMemoryBlockRelease(t *testing.T) {
	released := 0
	b := NewMemoryBlock([]byte("payload"), func() { released++ })

	b.Hold()
	b.Release()
	assert.Equal(t, 0, released)

	b.Release()
	assert.Equal(t, 1, released)
}

func TestMemoryBlockReleaseNil(t *testing.T) {
	var b *MemoryBlock
	assert.NotPanics(t, func() { b.Release() })
}

func TestMemoryBlockConcurrentRelease(t *testing.T) {
	const holders = 32

	released := 0
	b := NewMemoryBlock([]byte("payload"), func() { released++ })
	for i := 0; i < holders; i++ {
		b.Hold()
	}

	var wg sync.WaitGroup
	wg.Add(holders)
	for i := 0; i < holders; i++ {
		go func() {
			defer wg.Done()
			b.Release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, released)
	b.Release()
	assert.Equal(t, 1, released)
}

func TestMemoryBlockEmpty(t *testing.T) {
	assert.True(t, NewMemoryBlock(nil, nil).Empty())
	assert.False(t, NewMemoryBlock([]byte{0}, nil).Empty())
}
