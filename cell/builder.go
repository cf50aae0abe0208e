// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cell

import (
	"golang.org/x/exp/constraints"
)

// Builder accumulates data bits and child references for a cell under
// construction. Appending past MaxBits bits or MaxRefs references fails with
// ErrCellOverflow. A builder is not safe for concurrent use.
type Builder struct {
	data []byte
	bits int
	refs []*Cell
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// IsEmpty reports whether the builder holds no bits and no references.
func (b *Builder) IsEmpty() bool {
	return b.bits == 0 && len(b.refs) == 0
}

// BitsUsed returns the number of bits appended so far.
func (b *Builder) BitsUsed() int {
	return b.bits
}

// BitsFree returns the number of bits that can still be appended.
func (b *Builder) BitsFree() int {
	return MaxBits - b.bits
}

// RefsUsed returns the number of references appended so far.
func (b *Builder) RefsUsed() int {
	return len(b.refs)
}

// RefsFree returns the number of references that can still be appended.
func (b *Builder) RefsFree() int {
	return MaxRefs - len(b.refs)
}

func (b *Builder) appendBit(set bool) {
	idx := b.bits >> 3
	if idx == len(b.data) {
		b.data = append(b.data, 0)
	}
	if set {
		b.data[idx] |= 0x80 >> (b.bits & 7)
	}
	b.bits++
}

// AppendBitBool appends a single bit.
func (b *Builder) AppendBitBool(bit bool) error {
	if b.bits+1 > MaxBits {
		return ErrCellOverflow
	}
	b.appendBit(bit)
	return nil
}

// AppendBits appends the low `width` bits of value, most significant bit
// first. Width must be between 0 and 64; higher bits of value are ignored.
func (b *Builder) AppendBits(value uint64, width int) error {
	if width < 0 || width > 64 {
		return ErrCellOverflow
	}
	if b.bits+width > MaxBits {
		return ErrCellOverflow
	}
	for i := width - 1; i >= 0; i-- {
		b.appendBit(value&(1<<uint(i)) != 0)
	}
	return nil
}

// AppendRaw appends the first bitLen bits of data, most significant bit of
// data[0] first.
func (b *Builder) AppendRaw(data []byte, bitLen int) error {
	if bitLen < 0 || bitLen > len(data)*8 {
		return ErrCellOverflow
	}
	if b.bits+bitLen > MaxBits {
		return ErrCellOverflow
	}
	for i := 0; i < bitLen; i++ {
		b.appendBit(data[i>>3]&(0x80>>(i&7)) != 0)
	}
	return nil
}

func appendUint[T constraints.Unsigned](b *Builder, value T, width int) error {
	return b.AppendBits(uint64(value), width)
}

// AppendU8 appends an 8-bit unsigned integer.
func (b *Builder) AppendU8(value uint8) error {
	return appendUint(b, value, 8)
}

// AppendU16 appends a 16-bit unsigned integer, most significant byte first.
func (b *Builder) AppendU16(value uint16) error {
	return appendUint(b, value, 16)
}

// AppendU32 appends a 32-bit unsigned integer, most significant byte first.
func (b *Builder) AppendU32(value uint32) error {
	return appendUint(b, value, 32)
}

// AppendU64 appends a 64-bit unsigned integer, most significant byte first.
func (b *Builder) AppendU64(value uint64) error {
	return appendUint(b, value, 64)
}

// AppendU128 appends a 128-bit unsigned integer given as its high and low
// 64-bit halves, most significant byte first.
func (b *Builder) AppendU128(hi, lo uint64) error {
	if b.bits+128 > MaxBits {
		return ErrCellOverflow
	}
	if err := b.AppendBits(hi, 64); err != nil {
		return err
	}
	return b.AppendBits(lo, 64)
}

// AppendI8 appends an 8-bit signed integer in two's complement.
func (b *Builder) AppendI8(value int8) error {
	return appendUint(b, uint8(value), 8)
}

// AppendI16 appends a 16-bit signed integer in two's complement.
func (b *Builder) AppendI16(value int16) error {
	return appendUint(b, uint16(value), 16)
}

// AppendI32 appends a 32-bit signed integer in two's complement.
func (b *Builder) AppendI32(value int32) error {
	return appendUint(b, uint32(value), 32)
}

// AppendI64 appends a 64-bit signed integer in two's complement.
func (b *Builder) AppendI64(value int64) error {
	return appendUint(b, uint64(value), 64)
}

// AppendReference appends a child reference.
func (b *Builder) AppendReference(c *Cell) error {
	if len(b.refs)+1 > MaxRefs {
		return ErrCellOverflow
	}
	b.refs = append(b.refs, c)
	return nil
}

// AppendBuilder appends all bits and references of another builder.
func (b *Builder) AppendBuilder(other *Builder) error {
	if b.bits+other.bits > MaxBits || len(b.refs)+len(other.refs) > MaxRefs {
		return ErrCellOverflow
	}
	if err := b.AppendRaw(other.data, other.bits); err != nil {
		return err
	}
	b.refs = append(b.refs, other.refs...)
	return nil
}

// CheckedAppendReferencesAndData appends all remaining bits and references
// of a slice, verifying capacity up front so that a failed append leaves the
// builder unchanged.
func (b *Builder) CheckedAppendReferencesAndData(s *Slice) error {
	if b.bits+s.RemainingBits() > MaxBits || len(b.refs)+s.RemainingRefs() > MaxRefs {
		return ErrCellOverflow
	}
	for i := 0; i < s.RemainingBits(); i++ {
		b.appendBit(s.bitAt(s.bitPos + i))
	}
	for i := s.refPos; i < len(s.cell.refs); i++ {
		b.refs = append(b.refs, s.cell.refs[i])
	}
	return nil
}

// ToCell finalizes the builder into an immutable ordinary cell. The builder
// must not be used afterwards.
func (b *Builder) ToCell() (*Cell, error) {
	return New(b.data, b.bits, b.refs)
}
