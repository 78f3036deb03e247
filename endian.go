package tensormedia

import (
	"encoding/binary"
	"unsafe"
)

// hostLittleEndian detects the byte order of the machine we are running on.
// Deployment targets vary, so this is a runtime check rather than a build
// assumption.
func hostLittleEndian() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}

// hostByteOrder returns the binary.ByteOrder matching the host.
func hostByteOrder() binary.ByteOrder {
	if hostLittleEndian() {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
