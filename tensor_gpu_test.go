package tensormedia

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visiona/tensormedia/internal/gpu"
)

func TestPNGDecodeAcceleratorPlacement(t *testing.T) {
	if _, err := gpu.Acquire(); err != nil {
		t.Skipf("no accelerator available: %v", err)
	}

	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}

	dec := NewPNGDecoder(PNGDecoderOptions{}.WithDevice(GPU(0)).WithPinMemory(true))
	out, err := dec.Decode(blockOf(encodePNG(t, img)))
	require.NoError(t, err)

	tensor := out.Tensor()
	defer tensor.Close()

	assert.Equal(t, GPU(0), tensor.Device())
	// The host mirror remains readable after the device upload.
	assert.Equal(t, img.Pix, tensor.Uint8s())
}
