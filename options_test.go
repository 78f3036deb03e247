package tensormedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGOptionsWithMethodsArePure(t *testing.T) {
	base := PNGDecoderOptions{}

	derived := base.WithDevice(GPU(1)).WithPinMemory(true)

	// The base configuration must be untouched, so it can be shared.
	_, ok := base.Device()
	assert.False(t, ok)
	assert.False(t, base.PinMemory())

	dev, ok := derived.Device()
	require.True(t, ok)
	assert.Equal(t, GPU(1), dev)
	assert.True(t, derived.PinMemory())
}

func TestVideoOptionsWithMethodsArePure(t *testing.T) {
	base := VideoDecoderOptions{}.WithDevice(CPU())

	derived := base.WithDType(Int16).WithPinMemory(true)

	_, ok := base.DType()
	assert.False(t, ok)
	assert.False(t, base.PinMemory())

	dt, ok := derived.DType()
	require.True(t, ok)
	assert.Equal(t, Int16, dt)

	// Settings are order-insensitive and independent.
	dev, ok := derived.Device()
	require.True(t, ok)
	assert.Equal(t, CPU(), dev)
}

func TestVideoOptionsSharedBaseConfiguration(t *testing.T) {
	base := VideoDecoderOptions{}.WithPinMemory(true)

	a := base.WithDType(Float32)
	b := base.WithDType(Int32)

	dtA, _ := a.DType()
	dtB, _ := b.DType()
	assert.Equal(t, Float32, dtA)
	assert.Equal(t, Int32, dtB)
	assert.True(t, a.PinMemory())
	assert.True(t, b.PinMemory())
}
