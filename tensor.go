//////////////////////////////////////////////////////////////////////////////
//
// Tensor storage and materialization
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package tensormedia

import (
	"sync/atomic"
	"unsafe"

	"github.com/visiona/tensormedia/internal/gpu"
	"github.com/visiona/tensormedia/internal/pin"
)

// Tensor is a dense, contiguous, row-major array of fixed element type.
// Decoders fill the host buffer and, for accelerator placement, commit it to
// device memory before returning. A host mirror is always retained so the
// contents stay inspectable without a readback.
//
// Storage is shared by reference counting, like MemoryBlock: a tensor starts
// with one hold, Hold() adds one, and Close() removes one, freeing host and
// device storage when the count reaches zero.
type Tensor struct {
	shape  []int
	dtype  DType
	dev    Device
	pinned bool

	holds int32

	raw  []byte
	free func()

	devBuf *gpu.Buffer
}

// newTensor allocates storage for the given shape and dtype. Pinned
// allocation uses page-locked memory; plain allocation uses the heap.
func newTensor(shape []int, dtype DType, dev Device, pinned bool) (*Tensor, error) {
	n := dtype.Size()
	for _, dim := range shape {
		n *= dim
	}

	var raw []byte
	var free func()
	if pinned {
		var err error
		raw, free, err = pin.Alloc(n)
		if err != nil {
			return nil, err
		}
	} else {
		raw = make([]byte, n)
		free = func() {}
	}

	return &Tensor{
		shape:  append([]int(nil), shape...),
		dtype:  dtype,
		dev:    dev,
		pinned: pinned,
		holds:  1,
		raw:    raw,
		free:   free,
	}, nil
}

// commit finalizes placement. For accelerator devices the host buffer is
// uploaded synchronously; the tensor is fully populated when commit returns.
func (t *Tensor) commit(label string) error {
	if t.dev.Kind != DeviceGPU {
		return nil
	}
	ctx, err := gpu.Acquire()
	if err != nil {
		return &NotSupportedError{Reason: "accelerator device unavailable: " + err.Error()}
	}
	buf, err := ctx.Upload(label, t.raw)
	if err != nil {
		return &DecodeError{Op: "device transfer", Err: err}
	}
	t.devBuf = buf
	return nil
}

// Shape returns a copy of the tensor dimensions.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

func (t *Tensor) DType() DType { return t.dtype }

func (t *Tensor) Device() Device { return t.dev }

// Pinned reports whether the host storage is page-locked.
func (t *Tensor) Pinned() bool { return t.pinned }

// NumElems returns the product of the dimensions.
func (t *Tensor) NumElems() int {
	n := 1
	for _, dim := range t.shape {
		n *= dim
	}
	return n
}

// Bytes returns the host view of the tensor storage.
func (t *Tensor) Bytes() []byte { return t.raw }

// Hold increments the hold count. Each holder must balance it with Close.
func (t *Tensor) Hold() {
	atomic.AddInt32(&t.holds, 1)
}

// Close decrements the hold count. When the count reaches zero, host and
// device storage are released and the tensor must not be used afterwards.
func (t *Tensor) Close() error {
	if atomic.AddInt32(&t.holds, -1) != 0 {
		return nil
	}
	t.devBuf.Release()
	t.devBuf = nil
	if t.free != nil {
		t.free()
		t.free = nil
	}
	t.raw = nil
	return nil
}

// Typed views over the host storage. Each panics if the element type does
// not match, mirroring slice index misuse.

func (t *Tensor) Uint8s() []uint8 {
	t.mustBe(Uint8)
	return t.raw
}

func (t *Tensor) Uint16s() []uint16 {
	t.mustBe(Uint16)
	return sliceOf[uint16](t.raw)
}

func (t *Tensor) Int16s() []int16 {
	t.mustBe(Int16)
	return sliceOf[int16](t.raw)
}

func (t *Tensor) Int32s() []int32 {
	t.mustBe(Int32)
	return sliceOf[int32](t.raw)
}

func (t *Tensor) Float32s() []float32 {
	t.mustBe(Float32)
	return sliceOf[float32](t.raw)
}

func (t *Tensor) mustBe(dt DType) {
	if t.dtype != dt {
		panic("tensormedia: tensor element type is " + t.dtype.String() + ", not " + dt.String())
	}
}

func sliceOf[E uint16 | int16 | int32 | float32](raw []byte) []E {
	var e E
	n := len(raw) / int(unsafe.Sizeof(e))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(&raw[0])), n)
}
