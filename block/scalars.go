// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package block

import (
	"github.com/tonlabs/ton-labs-block/cell"
)

// Named wrappers give the builtin scalar types the codec protocol once, so
// that any typed container can hold them. Each wrapper encodes to its exact
// bit width and round-trips losslessly.

// Bool is a single-bit boolean.
type Bool bool

func (v Bool) WriteTo(b *cell.Builder) error {
	return b.AppendBitBool(bool(v))
}

func (v *Bool) ReadFrom(s *cell.Slice) error {
	bit, err := s.GetNextBit()
	if err != nil {
		return err
	}
	*v = Bool(bit)
	return nil
}

// Uint8 is an 8-bit unsigned integer.
type Uint8 uint8

func (v Uint8) WriteTo(b *cell.Builder) error {
	return b.AppendU8(uint8(v))
}

func (v *Uint8) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextByte()
	if err != nil {
		return err
	}
	*v = Uint8(value)
	return nil
}

// Uint16 is a 16-bit unsigned integer.
type Uint16 uint16

func (v Uint16) WriteTo(b *cell.Builder) error {
	return b.AppendU16(uint16(v))
}

func (v *Uint16) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextU16()
	if err != nil {
		return err
	}
	*v = Uint16(value)
	return nil
}

// Uint32 is a 32-bit unsigned integer.
type Uint32 uint32

func (v Uint32) WriteTo(b *cell.Builder) error {
	return b.AppendU32(uint32(v))
}

func (v *Uint32) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextU32()
	if err != nil {
		return err
	}
	*v = Uint32(value)
	return nil
}

// Uint64 is a 64-bit unsigned integer.
type Uint64 uint64

func (v Uint64) WriteTo(b *cell.Builder) error {
	return b.AppendU64(uint64(v))
}

func (v *Uint64) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextU64()
	if err != nil {
		return err
	}
	*v = Uint64(value)
	return nil
}

// Uint128 is a 128-bit unsigned integer stored as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

func (v Uint128) WriteTo(b *cell.Builder) error {
	return b.AppendU128(v.Hi, v.Lo)
}

func (v *Uint128) ReadFrom(s *cell.Slice) error {
	hi, lo, err := s.GetNextU128()
	if err != nil {
		return err
	}
	v.Hi, v.Lo = hi, lo
	return nil
}

// Int8 is an 8-bit signed integer.
type Int8 int8

func (v Int8) WriteTo(b *cell.Builder) error {
	return b.AppendI8(int8(v))
}

func (v *Int8) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextI8()
	if err != nil {
		return err
	}
	*v = Int8(value)
	return nil
}

// Int16 is a 16-bit signed integer.
type Int16 int16

func (v Int16) WriteTo(b *cell.Builder) error {
	return b.AppendI16(int16(v))
}

func (v *Int16) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextI16()
	if err != nil {
		return err
	}
	*v = Int16(value)
	return nil
}

// Int32 is a 32-bit signed integer.
type Int32 int32

func (v Int32) WriteTo(b *cell.Builder) error {
	return b.AppendI32(int32(v))
}

func (v *Int32) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextI32()
	if err != nil {
		return err
	}
	*v = Int32(value)
	return nil
}

// Int64 is a 64-bit signed integer.
type Int64 int64

func (v Int64) WriteTo(b *cell.Builder) error {
	return b.AppendI64(int64(v))
}

func (v *Int64) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextI64()
	if err != nil {
		return err
	}
	*v = Int64(value)
	return nil
}
