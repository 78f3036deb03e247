//////////////////////////////////////////////////////////////////////////////
//
// Decoder error taxonomy
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package tensormedia

import "fmt"

// InvalidInputTypeError reports a data value that is not the memory-block
// variant. This is a caller bug and is never retried.
type InvalidInputTypeError struct {
	Kind DataKind
}

func (e *InvalidInputTypeError) Error() string {
	return fmt.Sprintf("input data must be of type memory_block, but is of type %s instead", e.Kind)
}

// InvalidInputContentError reports a memory block that is structurally
// unusable before format parsing begins (e.g. zero length).
type InvalidInputContentError struct {
	Reason string
}

func (e *InvalidInputContentError) Error() string {
	return e.Reason
}

// NotSupportedError reports a requested dtype, color depth or codec outside
// the decoder's declared capability.
type NotSupportedError struct {
	Reason string
}

func (e *NotSupportedError) Error() string {
	return e.Reason
}

// DecodeError reports a malformed bitstream or a codec failure mid-stream.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotSupported reports whether err is a NotSupportedError.
func IsNotSupported(err error) bool {
	_, ok := err.(*NotSupportedError)
	return ok
}

// IsDecodeError reports whether err is a DecodeError.
func IsDecodeError(err error) bool {
	_, ok := err.(*DecodeError)
	return ok
}
