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
	"fmt"

	"github.com/tonlabs/ton-labs-block/cell"
)

// BitWidth is the compile-time width marker of a Number instantiation,
// carrying the fixed bit count N of the family member.
type BitWidth interface {
	bitWidth() int
}

// Width markers for the Number instantiations used by the ledger schema.
type (
	Bits5  struct{}
	Bits8  struct{}
	Bits9  struct{}
	Bits12 struct{}
	Bits13 struct{}
	Bits16 struct{}
	Bits32 struct{}
)

func (Bits5) bitWidth() int  { return 5 }
func (Bits8) bitWidth() int  { return 8 }
func (Bits9) bitWidth() int  { return 9 }
func (Bits12) bitWidth() int { return 12 }
func (Bits13) bitWidth() int { return 13 }
func (Bits16) bitWidth() int { return 16 }
func (Bits32) bitWidth() int { return 32 }

func bitWidthOf[W BitWidth]() int {
	var w W
	return w.bitWidth()
}

// Number is a bounded unsigned integer stored in a constant number of bits,
// the bit count given by the width marker W. Construction enforces an
// explicit maximum; encoding always consumes exactly N bits. The zero value
// is a valid zero.
type Number[W BitWidth] struct {
	value uint32
}

// Number instantiations of the ledger schema.
type (
	Number5  = Number[Bits5]
	Number8  = Number[Bits8]
	Number9  = Number[Bits9]
	Number12 = Number[Bits12]
	Number13 = Number[Bits13]
	Number16 = Number[Bits16]
	Number32 = Number[Bits32]
)

// NewNumber creates a bounded integer, rejecting values above the given
// maximum.
func NewNumber[W BitWidth](value, maxValue uint32) (Number[W], error) {
	if value > maxValue {
		return Number[W]{}, fmt.Errorf("%w: value: %d must be <= %d", ErrInvalidArg, value, maxValue)
	}
	return Number[W]{value: value}, nil
}

// Value returns the stored integer.
func (n Number[W]) Value() uint32 {
	return n.value
}

// MaxLen returns the largest count value representable in this width,
// 2^N - 1. Callers use it as a capacity constant, for instance as the
// maximum depth of a dictionary keyed by this width.
func (n Number[W]) MaxLen() uint64 {
	return (uint64(1) << bitWidthOf[W]()) - 1
}

func (n Number[W]) WriteTo(b *cell.Builder) error {
	return b.AppendBits(uint64(n.value), bitWidthOf[W]())
}

func (n *Number[W]) ReadFrom(s *cell.Slice) error {
	value, err := s.GetNextInt(bitWidthOf[W]())
	if err != nil {
		return err
	}
	n.value = uint32(value)
	return nil
}

func (n Number[W]) String() string {
	return fmt.Sprintf("num%d[value = %d]", bitWidthOf[W](), n.value)
}
