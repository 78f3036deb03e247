//////////////////////////////////////////////////////////////////////////////
//
// Data is the tagged value passed between pipeline stages
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package tensormedia

// DataKind identifies which variant a Data value holds.
type DataKind int

const (
	KindNone DataKind = iota
	KindMemoryBlock
	KindTensor
)

func (k DataKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMemoryBlock:
		return "memory_block"
	case KindTensor:
		return "tensor"
	}
	return "unknown"
}

// Data is a closed tagged union carried through the pipeline. Decoders
// consume the memory-block variant and produce the tensor variant; every
// other variant is rejected explicitly.
type Data struct {
	kind   DataKind
	block  *MemoryBlock
	tensor *Tensor
}

// BlockData wraps an encoded byte block.
func BlockData(b *MemoryBlock) Data {
	return Data{kind: KindMemoryBlock, block: b}
}

// TensorData wraps a decoded tensor.
func TensorData(t *Tensor) Data {
	return Data{kind: KindTensor, tensor: t}
}

func (d Data) Kind() DataKind { return d.kind }

func (d Data) IsMemoryBlock() bool { return d.kind == KindMemoryBlock }

func (d Data) IsTensor() bool { return d.kind == KindTensor }

// MemoryBlock returns the block variant, or nil if d holds something else.
func (d Data) MemoryBlock() *MemoryBlock { return d.block }

// Tensor returns the tensor variant, or nil if d holds something else.
func (d Data) Tensor() *Tensor { return d.tensor }
