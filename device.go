package tensormedia

import "fmt"

// DeviceKind distinguishes host memory from accelerator memory.
type DeviceKind int

const (
	DeviceCPU DeviceKind = iota
	DeviceGPU
)

// Device identifies where a tensor's storage lives. The zero value is the
// host CPU.
type Device struct {
	Kind  DeviceKind
	Index int
}

// CPU returns the host device.
func CPU() Device {
	return Device{Kind: DeviceCPU}
}

// GPU returns the accelerator device with the given adapter index.
func GPU(index int) Device {
	return Device{Kind: DeviceGPU, Index: index}
}

func (d Device) String() string {
	switch d.Kind {
	case DeviceCPU:
		return "cpu"
	case DeviceGPU:
		return fmt.Sprintf("gpu:%d", d.Index)
	}
	return "unknown"
}
