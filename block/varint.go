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
	"math/bits"

	"github.com/holiman/uint256"

	"github.com/tonlabs/ton-labs-block/cell"
)

// MaxBytes is the compile-time width marker of a VarUInteger instantiation.
// The marker carries the maximum byte count N of the family member; it has
// no runtime representation beyond the method.
type MaxBytes interface {
	maxBytes() int
}

// Width markers for the VarUInteger instantiations used by the ledger
// schema.
type (
	Max3  struct{}
	Max7  struct{}
	Max16 struct{}
	Max32 struct{}
)

func (Max3) maxBytes() int  { return 3 }
func (Max7) maxBytes() int  { return 7 }
func (Max16) maxBytes() int { return 16 }
func (Max32) maxBytes() int { return 32 }

func maxBytesOf[M MaxBytes]() int {
	var m M
	return m.maxBytes()
}

// lenBits returns the width of the length field of a VarUInteger with the
// given maximum byte count: the number of bits needed to express n-1.
func lenBits(n int) int {
	return bits.Len(uint(n - 1))
}

// VarUInteger is a self-describing variable-length unsigned integer with at
// most N-1 bytes of big-endian magnitude, N given by the width marker M. The
// encoding stores the byte length of the magnitude in lenBits(N) bits,
// followed by exactly that many magnitude bytes; zero is a zero length field
// with no magnitude bytes.
//
// Equality, ordering and accumulation are defined on the magnitude alone,
// independent of the declared width. Accumulation via Add performs no
// overflow check; a running sum may exceed the encodable range until it is
// re-encoded, at which point WriteTo fails the range check. This two-phase
// behavior is deliberate.
//
// The zero value is a valid zero-magnitude integer.
type VarUInteger[M MaxBytes] struct {
	value uint256.Int
}

// VarUInteger instantiations of the ledger schema. Grams is the native
// currency amount: nanograms$_ amount:(VarUInteger 16) = Grams.
type (
	VarUInteger3  = VarUInteger[Max3]
	VarUInteger7  = VarUInteger[Max7]
	VarUInteger32 = VarUInteger[Max32]
	Grams         = VarUInteger[Max16]
)

// VarUIntegerFromUint64 creates a VarUInteger from a native integer. It
// panics if the value does not fit the declared width; use
// VarUIntegerFromUint256 for checked construction. This is the only
// intentional panic of the package, reserved for values already known to be
// in range.
func VarUIntegerFromUint64[M MaxBytes](value uint64) VarUInteger[M] {
	var v VarUInteger[M]
	v.value.SetUint64(value)
	if err := v.checkOverflow(); err != nil {
		panic(err)
	}
	return v
}

// VarUIntegerFromUint256 creates a VarUInteger from a 256-bit value,
// rejecting values that exceed the declared width.
func VarUIntegerFromUint256[M MaxBytes](value *uint256.Int) (VarUInteger[M], error) {
	var v VarUInteger[M]
	v.value.Set(value)
	if err := v.checkOverflow(); err != nil {
		return VarUInteger[M]{}, err
	}
	return v, nil
}

// NewGrams creates a currency amount from a native integer.
func NewGrams(value uint64) Grams {
	return VarUIntegerFromUint64[Max16](value)
}

func (v *VarUInteger[M]) checkOverflow() error {
	if length := v.byteLen(); length > maxBytesOf[M]() {
		return fmt.Errorf("%w: value is bigger than %d bytes", ErrInvalidArg, maxBytesOf[M]())
	}
	return nil
}

// byteLen returns the minimum number of bytes needed to hold the magnitude.
func (v *VarUInteger[M]) byteLen() int {
	return (v.value.BitLen() + 7) / 8
}

// Value returns the magnitude. The returned pointer aliases the receiver's
// storage; it must not be modified by readers.
func (v *VarUInteger[M]) Value() *uint256.Int {
	return &v.value
}

// IsZero reports whether the magnitude is zero.
func (v *VarUInteger[M]) IsZero() bool {
	return v.value.IsZero()
}

// Cmp compares the magnitudes, returning -1, 0 or +1.
func (v *VarUInteger[M]) Cmp(other *VarUInteger[M]) int {
	return v.value.Cmp(&other.value)
}

// Equal reports whether both magnitudes are equal.
func (v *VarUInteger[M]) Equal(other *VarUInteger[M]) bool {
	return v.value.Eq(&other.value)
}

// Add accumulates the other magnitude into the receiver. No overflow check
// is performed here; the sum is range checked when it is re-encoded.
func (v *VarUInteger[M]) Add(other *VarUInteger[M]) error {
	v.value.Add(&v.value, &other.value)
	return nil
}

// Sub subtracts the other magnitude from the receiver if the result is
// non-negative and reports whether the subtraction took place. A receiver
// smaller than the subtrahend is left unchanged.
func (v *VarUInteger[M]) Sub(other *VarUInteger[M]) bool {
	if v.value.Lt(&other.value) {
		return false
	}
	v.value.Sub(&v.value, &other.value)
	return true
}

// Calc folds the other value into the receiver; it makes every VarUInteger
// usable as the bottom-up augmentation of an augmented hashmap, keeping a
// running total over all leaves of a subtree.
func (v *VarUInteger[M]) Calc(other *VarUInteger[M]) error {
	return v.Add(other)
}

func (v *VarUInteger[M]) WriteTo(b *cell.Builder) error {
	n := maxBytesOf[M]()
	length := v.byteLen()
	if length >= n {
		return fmt.Errorf("%w: var integer length %d exceeds %d bytes", ErrRangeCheck, length, n-1)
	}
	if err := b.AppendBits(uint64(length), lenBits(n)); err != nil {
		return err
	}
	return b.AppendRaw(v.value.Bytes(), length*8)
}

func (v *VarUInteger[M]) ReadFrom(s *cell.Slice) error {
	n := maxBytesOf[M]()
	length, err := s.GetNextInt(lenBits(n))
	if err != nil {
		return err
	}
	if int(length) >= n {
		return fmt.Errorf("%w: var integer length %d exceeds %d bytes", ErrRangeCheck, length, n-1)
	}
	data, err := s.GetNextBytes(int(length))
	if err != nil {
		return err
	}
	v.value.SetBytes(data)
	return nil
}

func (v VarUInteger[M]) String() string {
	return fmt.Sprintf("vui%d[len = %d, value = %s]", maxBytesOf[M](), v.byteLen(), v.value.Dec())
}
