// Package gpu owns the process-wide WebGPU context used for tensor
// placement. The instance, adapter and device are acquired once and shared;
// buffer uploads go through the device queue and are synchronized before
// they are considered complete.
package gpu

import (
	"sync"

	"github.com/openfluke/webgpu/wgpu"
	"github.com/pkg/errors"
)

// Context bundles the device and queue handles needed for uploads.
type Context struct {
	Device *wgpu.Device
	Queue  *wgpu.Queue

	release func()
}

var (
	acquireOnce sync.Once
	shared      *Context
	acquireErr  error
)

// Acquire returns the shared accelerator context, initializing it on first
// use. All callers see the same context; device memory allocators are
// assumed thread-safe.
func Acquire() (*Context, error) {
	acquireOnce.Do(func() {
		shared, acquireErr = open()
	})
	return shared, acquireErr
}

func open() (*Context, error) {
	inst := wgpu.CreateInstance(nil)
	if inst == nil {
		return nil, errors.New("webgpu: CreateInstance returned nil")
	}

	ad, err := inst.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		inst.Release()
		return nil, errors.Wrap(err, "webgpu: RequestAdapter failed")
	}
	if ad == nil {
		inst.Release()
		return nil, errors.New("webgpu: no suitable adapter")
	}

	dev, err := ad.RequestDevice(&wgpu.DeviceDescriptor{})
	if err != nil {
		ad.Release()
		inst.Release()
		return nil, errors.Wrap(err, "webgpu: RequestDevice failed")
	}
	if dev == nil {
		ad.Release()
		inst.Release()
		return nil, errors.New("webgpu: no device")
	}

	return &Context{
		Device: dev,
		Queue:  dev.GetQueue(),
		release: func() {
			dev.Release()
			ad.Release()
			inst.Release()
		},
	}, nil
}

// Buffer is a device-resident copy of a tensor's bytes.
type Buffer struct {
	Buf  *wgpu.Buffer
	Size uint64
}

// Upload copies p into a new device buffer. The queue write is asynchronous;
// Poll blocks until the submitted work completes, so the buffer is fully
// populated when Upload returns.
func (c *Context) Upload(label string, p []byte) (*Buffer, error) {
	size := uint64(len(p))
	if size == 0 {
		return &Buffer{}, nil
	}

	buf, err := c.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst | wgpu.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "webgpu: CreateBuffer failed")
	}

	c.Queue.WriteBuffer(buf, 0, p)
	c.Device.Poll(true, nil)

	return &Buffer{Buf: buf, Size: size}, nil
}

// Release frees the device buffer. Safe on the zero-size buffer.
func (b *Buffer) Release() {
	if b != nil && b.Buf != nil {
		b.Buf.Release()
	}
}
