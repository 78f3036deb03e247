//////////////////////////////////////////////////////////////////////////////
//
// PNG decoder: one encoded image block in, one (H, W, C) tensor out
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package tensormedia

import (
	"bytes"
	"image"
	"image/png"
)

// PNGDecoder decodes a single PNG memory block into a channel-last
// (height, width, channels) tensor. The element type is fixed by the image
// bit depth: 8-bit channels produce uint8, 16-bit channels produce uint16.
// There is no construction-time dtype check; the format decides, not the
// caller.
type PNGDecoder struct {
	opts PNGDecoderOptions
}

// NewPNGDecoder returns a decoder using the given options.
func NewPNGDecoder(opts PNGDecoderOptions) *PNGDecoder {
	return &PNGDecoder{opts: opts}
}

// Decode parses the PNG bitstream in d and returns a tensor data value
// placed on the configured device. The input block is not retained.
func (dec *PNGDecoder) Decode(d Data) (Data, error) {
	if !d.IsMemoryBlock() {
		return Data{}, &InvalidInputTypeError{Kind: d.Kind()}
	}

	block := d.MemoryBlock()
	if block.Empty() {
		return Data{}, &InvalidInputContentError{
			Reason: "input memory block has zero length and cannot be decoded",
		}
	}

	img, err := png.Decode(bytes.NewReader(block.Bytes()))
	if err != nil {
		if _, ok := err.(png.UnsupportedError); ok {
			return Data{}, &NotSupportedError{Reason: err.Error()}
		}
		return Data{}, &DecodeError{Op: "png decode", Err: err}
	}

	dev, _ := dec.opts.Device()
	pinned := dec.opts.PinMemory()

	var t *Tensor
	switch im := img.(type) {
	case *image.Gray:
		t, err = pixelsToTensor(im.Pix, im.Stride, im.Rect, 1, dev, pinned)
	case *image.NRGBA:
		t, err = pixelsToTensor(im.Pix, im.Stride, im.Rect, 4, dev, pinned)
	case *image.RGBA:
		t, err = pixelsToTensor(im.Pix, im.Stride, im.Rect, 4, dev, pinned)
	case *image.Gray16:
		t, err = pixels16ToTensor(im.Pix, im.Stride, im.Rect, 1, dev, pinned)
	case *image.NRGBA64:
		t, err = pixels16ToTensor(im.Pix, im.Stride, im.Rect, 4, dev, pinned)
	case *image.RGBA64:
		t, err = pixels16ToTensor(im.Pix, im.Stride, im.Rect, 4, dev, pinned)
	default:
		return Data{}, &NotSupportedError{
			Reason: "png color model is outside the supported grayscale/RGBA set",
		}
	}
	if err != nil {
		return Data{}, err
	}

	if err := t.commit("png tensor"); err != nil {
		t.Close()
		return Data{}, err
	}

	log.Debug("Decoded %dx%d png to %v tensor on %v", t.shape[1], t.shape[0], t.dtype, t.dev)

	return TensorData(t), nil
}

// pixelsToTensor packs 8-bit rows into a dense (h, w, c) uint8 tensor,
// dropping any per-row stride padding.
func pixelsToTensor(pix []byte, stride int, r image.Rectangle, channels int, dev Device, pinned bool) (*Tensor, error) {
	h, w := r.Dy(), r.Dx()

	t, err := newTensor([]int{h, w, channels}, Uint8, dev, pinned)
	if err != nil {
		return nil, err
	}

	rowLen := w * channels
	dst := t.raw
	for y := 0; y < h; y++ {
		copy(dst[y*rowLen:(y+1)*rowLen], pix[y*stride:y*stride+rowLen])
	}
	return t, nil
}

// pixels16ToTensor packs 16-bit rows into a dense (h, w, c) uint16 tensor.
// The standard decoder stores 16-bit channels big-endian; they are
// reinterpreted into host byte order here.
func pixels16ToTensor(pix []byte, stride int, r image.Rectangle, channels int, dev Device, pinned bool) (*Tensor, error) {
	h, w := r.Dy(), r.Dx()

	t, err := newTensor([]int{h, w, channels}, Uint16, dev, pinned)
	if err != nil {
		return nil, err
	}

	order := hostByteOrder()
	dst := t.raw
	rowLen := w * channels * 2
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+rowLen]
		out := dst[y*rowLen : (y+1)*rowLen]
		for i := 0; i < rowLen; i += 2 {
			v := uint16(row[i])<<8 | uint16(row[i+1])
			order.PutUint16(out[i:i+2], v)
		}
	}
	return t, nil
}
