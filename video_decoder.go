//////////////////////////////////////////////////////////////////////////////
//
// Video decoder: encoded container block in, stacked frame tensor out
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package tensormedia

import (
	"image"
	"image/color"
)

// VideoDecoder decodes an encoded MP4 byte buffer into a single stacked
// tensor of shape (frames, height, width, 3) with channel-last RGB layout.
// The output element type is resolved at construction and is one of
// float32, int32 or int16; anything else fails immediately rather than on
// first use.
//
// A decoder holds no per-call state. Each Decode creates its own demuxer
// and codec context, so concurrent calls on independent inputs are safe.
type VideoDecoder struct {
	opts  VideoDecoderOptions
	dtype DType
	pin   bool
}

// NewVideoDecoder validates the resolved output element type and returns a
// decoder. The default element type is float32.
func NewVideoDecoder(opts VideoDecoderOptions, pinMemory bool) (*VideoDecoder, error) {
	dtype, ok := opts.DType()
	if !ok {
		dtype = Float32
	}

	switch dtype {
	case Float32, Int32, Int16:
	default:
		return nil, &NotSupportedError{
			Reason: "video decoder supports only float32, int32, and int16 element types",
		}
	}

	return &VideoDecoder{
		opts:  opts,
		dtype: dtype,
		pin:   pinMemory || opts.PinMemory(),
	}, nil
}

// Decode demuxes and decodes every frame in d, stacking them along the
// leading dimension. A non-empty input that yields zero decodable frames
// produces an empty tensor (frame dimension 0), not an error. A corrupt
// packet mid-stream aborts the whole call; there is no partial result.
func (dec *VideoDecoder) Decode(d Data) (Data, error) {
	if !d.IsMemoryBlock() {
		return Data{}, &InvalidInputTypeError{Kind: d.Kind()}
	}

	block := d.MemoryBlock()
	if block.Empty() {
		return Data{}, &InvalidInputContentError{
			Reason: "input memory block has zero length and cannot be decoded",
		}
	}

	ctx, err := openVideoContext(block.Bytes())
	if err != nil {
		return Data{}, err
	}
	defer ctx.close()

	frames, err := ctx.readFrames()
	if err != nil {
		return Data{}, err
	}

	// Frame geometry comes from the first decoded frame; with no frames,
	// fall back to the container's declared dimensions.
	var h, w int
	if len(frames) > 0 {
		r := frames[0].Image.Rect
		h, w = r.Dy(), r.Dx()
	} else {
		h, w = ctx.info.Height(), ctx.info.Width()
	}

	dev, _ := dec.opts.Device()

	t, err := newTensor([]int{len(frames), h, w, 3}, dec.dtype, dev, dec.pin)
	if err != nil {
		return Data{}, err
	}

	for i, frame := range frames {
		r := frame.Image.Rect
		if r.Dy() != h || r.Dx() != w {
			t.Close()
			return Data{}, &DecodeError{
				Op:  "frame decode",
				Err: errFrameGeometryChanged,
			}
		}
		dec.writeFrame(t, i, &frame.Image)
	}

	if err := t.commit("video tensor"); err != nil {
		t.Close()
		return Data{}, err
	}

	log.Debug("Decoded %d frames of %dx%d video to %v tensor on %v",
		len(frames), w, h, t.dtype, t.dev)

	return TensorData(t), nil
}

// writeFrame converts one decoded YCbCr frame to RGB and stores it at frame
// index n.
func (dec *VideoDecoder) writeFrame(t *Tensor, n int, im *image.YCbCr) {
	r := im.Rect
	elems := r.Dy() * r.Dx() * 3
	base := n * elems

	switch dec.dtype {
	case Float32:
		fillFrame(t.Float32s()[base:base+elems], im)
	case Int32:
		fillFrame(t.Int32s()[base:base+elems], im)
	case Int16:
		fillFrame(t.Int16s()[base:base+elems], im)
	}
}

func fillFrame[E float32 | int32 | int16](dst []E, im *image.YCbCr) {
	bounds := im.Rect
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			luma := im.Y[im.YOffset(x, y)]
			ci := im.COffset(x, y)
			r, g, b := color.YCbCrToRGB(luma, im.Cb[ci], im.Cr[ci])
			dst[i] = E(r)
			dst[i+1] = E(g)
			dst[i+2] = E(b)
			i += 3
		}
	}
}
