package tensormedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTensorSizing(t *testing.T) {
	tensor, err := newTensor([]int{2, 3, 4}, Float32, CPU(), false)
	require.NoError(t, err)
	defer tensor.Close()

	assert.Equal(t, 24, tensor.NumElems())
	assert.Equal(t, 24*4, len(tensor.Bytes()))
	assert.Equal(t, []int{2, 3, 4}, tensor.Shape())
}

func TestNewTensorEmptyShape(t *testing.T) {
	tensor, err := newTensor([]int{0, 4, 4, 3}, Int16, CPU(), false)
	require.NoError(t, err)
	defer tensor.Close()

	assert.Equal(t, 0, tensor.NumElems())
	assert.Equal(t, 0, len(tensor.Bytes()))
}

func TestTensorShapeIsACopy(t *testing.T) {
	tensor, err := newTensor([]int{1, 2}, Uint8, CPU(), false)
	require.NoError(t, err)
	defer tensor.Close()

	shape := tensor.Shape()
	shape[0] = 99
	assert.Equal(t, []int{1, 2}, tensor.Shape())
}

func TestTensorTypedViews(t *testing.T) {
	tensor, err := newTensor([]int{4}, Float32, CPU(), false)
	require.NoError(t, err)
	defer tensor.Close()

	view := tensor.Float32s()
	require.Len(t, view, 4)
	view[2] = 1.5

	again := tensor.Float32s()
	assert.Equal(t, float32(1.5), again[2])
}

func TestTensorViewPanicsOnWrongType(t *testing.T) {
	tensor, err := newTensor([]int{4}, Int32, CPU(), false)
	require.NoError(t, err)
	defer tensor.Close()

	assert.Panics(t, func() { tensor.Float32s() })
	assert.NotPanics(t, func() { tensor.Int32s() })
}

func TestTensorHoldDefersRelease(t *testing.T) {
	tensor, err := newTensor([]int{2}, Uint8, CPU(), false)
	require.NoError(t, err)

	tensor.Hold()
	require.NoError(t, tensor.Close())
	assert.NotNil(t, tensor.Bytes())

	require.NoError(t, tensor.Close())
	assert.Nil(t, tensor.Bytes())
}

func TestTensorPinnedAllocation(t *testing.T) {
	tensor, err := newTensor([]int{16, 16, 3}, Uint8, CPU(), true)
	if err != nil {
		// Locked-page limits vary by environment; nothing to verify here.
		t.Skipf("pinned allocation unavailable: %v", err)
	}
	defer tensor.Close()

	assert.True(t, tensor.Pinned())

	buf := tensor.Uint8s()
	for i := range buf {
		buf[i] = uint8(i)
	}
	assert.Equal(t, uint8(255), buf[255])
}

func TestDTypeSizes(t *testing.T) {
	assert.Equal(t, 1, Uint8.Size())
	assert.Equal(t, 2, Uint16.Size())
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
}

func TestParseDType(t *testing.T) {
	dt, ok := ParseDType("float32")
	require.True(t, ok)
	assert.Equal(t, Float32, dt)

	_, ok = ParseDType("complex64")
	assert.False(t, ok)
}
