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

// Slice is a read cursor over the bits and references of a single cell.
// Reads consume from the front; reading past the end fails with
// ErrCellUnderflow. The backing cell is shared, not copied, so any number of
// slices may drain the same cell independently. A slice is not safe for
// concurrent use.
type Slice struct {
	cell   *Cell
	bitPos int
	refPos int
}

// FromCell creates a slice positioned at the start of the given cell.
func FromCell(c *Cell) *Slice {
	return &Slice{cell: c}
}

// Cell returns the backing cell of the slice.
func (s *Slice) Cell() *Cell {
	return s.cell
}

// IsFullCellSlice reports whether the slice still covers the whole backing
// cell, i.e. nothing has been consumed yet.
func (s *Slice) IsFullCellSlice() bool {
	return s.bitPos == 0 && s.refPos == 0
}

// IsEmpty reports whether no bits and no references are left to read.
func (s *Slice) IsEmpty() bool {
	return s.RemainingBits() == 0 && s.RemainingRefs() == 0
}

// RemainingBits returns the number of unread data bits.
func (s *Slice) RemainingBits() int {
	return s.cell.bits - s.bitPos
}

// RemainingRefs returns the number of undrained references.
func (s *Slice) RemainingRefs() int {
	return len(s.cell.refs) - s.refPos
}

func (s *Slice) bitAt(pos int) bool {
	return s.cell.data[pos>>3]&(0x80>>(pos&7)) != 0
}

// GetNextBit reads a single bit.
func (s *Slice) GetNextBit() (bool, error) {
	if s.RemainingBits() < 1 {
		return false, ErrCellUnderflow
	}
	bit := s.bitAt(s.bitPos)
	s.bitPos++
	return bit, nil
}

// GetNextInt reads `width` bits as an unsigned big-endian integer. Width
// must be between 0 and 64; reading zero bits yields zero.
func (s *Slice) GetNextInt(width int) (uint64, error) {
	if width < 0 || width > 64 {
		return 0, ErrCellUnderflow
	}
	if s.RemainingBits() < width {
		return 0, ErrCellUnderflow
	}
	var value uint64
	for i := 0; i < width; i++ {
		value <<= 1
		if s.bitAt(s.bitPos + i) {
			value |= 1
		}
	}
	s.bitPos += width
	return value, nil
}

// GetNextBytes reads n bytes.
func (s *Slice) GetNextBytes(n int) ([]byte, error) {
	if n < 0 || s.RemainingBits() < n*8 {
		return nil, ErrCellUnderflow
	}
	data := make([]byte, n)
	for i := range data {
		value, err := s.GetNextInt(8)
		if err != nil {
			return nil, err
		}
		data[i] = byte(value)
	}
	return data, nil
}

// GetNextByte reads a single byte.
func (s *Slice) GetNextByte() (byte, error) {
	value, err := s.GetNextInt(8)
	return byte(value), err
}

// GetNextU16 reads a 16-bit unsigned integer, most significant byte first.
func (s *Slice) GetNextU16() (uint16, error) {
	value, err := s.GetNextInt(16)
	return uint16(value), err
}

// GetNextU32 reads a 32-bit unsigned integer, most significant byte first.
func (s *Slice) GetNextU32() (uint32, error) {
	value, err := s.GetNextInt(32)
	return uint32(value), err
}

// GetNextU64 reads a 64-bit unsigned integer, most significant byte first.
func (s *Slice) GetNextU64() (uint64, error) {
	return s.GetNextInt(64)
}

// GetNextU128 reads a 128-bit unsigned integer as its high and low halves.
func (s *Slice) GetNextU128() (hi, lo uint64, err error) {
	if s.RemainingBits() < 128 {
		return 0, 0, ErrCellUnderflow
	}
	if hi, err = s.GetNextInt(64); err != nil {
		return 0, 0, err
	}
	lo, err = s.GetNextInt(64)
	return hi, lo, err
}

// GetNextI8 reads an 8-bit signed integer in two's complement.
func (s *Slice) GetNextI8() (int8, error) {
	value, err := s.GetNextInt(8)
	return int8(uint8(value)), err
}

// GetNextI16 reads a 16-bit signed integer in two's complement.
func (s *Slice) GetNextI16() (int16, error) {
	value, err := s.GetNextInt(16)
	return int16(uint16(value)), err
}

// GetNextI32 reads a 32-bit signed integer in two's complement.
func (s *Slice) GetNextI32() (int32, error) {
	value, err := s.GetNextInt(32)
	return int32(uint32(value)), err
}

// GetNextI64 reads a 64-bit signed integer in two's complement.
func (s *Slice) GetNextI64() (int64, error) {
	value, err := s.GetNextInt(64)
	return int64(value), err
}

// CheckedDrainReference consumes and returns the next child reference.
func (s *Slice) CheckedDrainReference() (*Cell, error) {
	if s.RemainingRefs() < 1 {
		return nil, ErrCellUnderflow
	}
	ref := s.cell.refs[s.refPos]
	s.refPos++
	return ref, nil
}
