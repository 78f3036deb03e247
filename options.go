//////////////////////////////////////////////////////////////////////////////
//
// Immutable decoder configuration
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package tensormedia

// PNGDecoderOptions configures a PNGDecoder. The zero value is a valid
// default (host device, unpinned). Each With method returns a modified copy
// and never mutates the receiver, so a base configuration can be shared
// across decoder instances without locking.
type PNGDecoderOptions struct {
	device    *Device
	pinMemory bool
}

// WithDevice sets the target device for decoded tensors.
func (o PNGDecoderOptions) WithDevice(d Device) PNGDecoderOptions {
	o.device = &d
	return o
}

// WithPinMemory requests page-locked host storage.
func (o PNGDecoderOptions) WithPinMemory(v bool) PNGDecoderOptions {
	o.pinMemory = v
	return o
}

// Device returns the configured device, or false if none was set.
func (o PNGDecoderOptions) Device() (Device, bool) {
	if o.device == nil {
		return Device{}, false
	}
	return *o.device, true
}

// PinMemory returns the pin-memory flag.
func (o PNGDecoderOptions) PinMemory() bool {
	return o.pinMemory
}

// VideoDecoderOptions configures a VideoDecoder. Same value semantics as
// PNGDecoderOptions, plus an optional output element type. Illegal dtype
// values are caught by the decoder constructor, not here.
type VideoDecoderOptions struct {
	device    *Device
	pinMemory bool
	dtype     *DType
}

// WithDevice sets the target device for decoded tensors.
func (o VideoDecoderOptions) WithDevice(d Device) VideoDecoderOptions {
	o.device = &d
	return o
}

// WithPinMemory requests page-locked host storage.
func (o VideoDecoderOptions) WithPinMemory(v bool) VideoDecoderOptions {
	o.pinMemory = v
	return o
}

// WithDType sets the output element type for decoded frames.
func (o VideoDecoderOptions) WithDType(dt DType) VideoDecoderOptions {
	o.dtype = &dt
	return o
}

// Device returns the configured device, or false if none was set.
func (o VideoDecoderOptions) Device() (Device, bool) {
	if o.device == nil {
		return Device{}, false
	}
	return *o.device, true
}

// PinMemory returns the pin-memory flag.
func (o VideoDecoderOptions) PinMemory() bool {
	return o.pinMemory
}

// DType returns the configured output element type, or false if none was
// set.
func (o VideoDecoderOptions) DType() (DType, bool) {
	if o.dtype == nil {
		return 0, false
	}
	return *o.dtype, true
}
