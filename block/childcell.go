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

	"github.com/ethereum/go-ethereum/common"

	"github.com/tonlabs/ton-labs-block/cell"
)

// ChildCell is a content-addressed, lazily decoded handle to a cell holding
// a serialized value of type T. The held cell is shared: it lives as long as
// any holder retains it. Decoding happens on demand and is never cached;
// every ReadValue produces a fresh value. The type parameter carries the
// expected decoded type only, it has no runtime representation.
//
// The zero value holds no cell and must be filled by WriteValue or ReadFrom
// before use.
type ChildCell[T any, PT CodecPtr[T]] struct {
	cell *cell.Cell
}

// ChildCellWithValue constructs a child cell by immediately encoding the
// given value into a fresh cell.
func ChildCellWithValue[T any, PT CodecPtr[T]](value *T) (ChildCell[T, PT], error) {
	c, err := ToCell(PT(value))
	if err != nil {
		return ChildCell[T, PT]{}, err
	}
	return ChildCell[T, PT]{cell: c}, nil
}

// WriteValue replaces the held cell with a freshly encoded one.
func (c *ChildCell[T, PT]) WriteValue(value *T) error {
	encoded, err := ToCell(PT(value))
	if err != nil {
		return err
	}
	c.cell = encoded
	return nil
}

// ReadValue decodes the held cell as a value of type T. If the cell is a
// pruned-branch stub, decoding fails with PrunedCellAccessError naming the
// expected type instead of attempting to interpret hash bytes as structured
// data.
func (c *ChildCell[T, PT]) ReadValue() (T, error) {
	var zero T
	if c.cell.Kind() == cell.PrunedBranch {
		return zero, &PrunedCellAccessError{TypeName: fmt.Sprintf("%T", zero)}
	}
	return ConstructFromCell[T, PT](c.cell)
}

// Cell returns the held cell without decoding it, for callers that only
// pass it through, for instance to compute an outer hash.
func (c *ChildCell[T, PT]) Cell() *cell.Cell {
	return c.cell
}

// Hash returns the representation hash of the held cell.
func (c *ChildCell[T, PT]) Hash() (common.Hash, error) {
	return c.cell.Hash(), nil
}

// WriteTo encodes the held cell into the given builder, fully replacing the
// builder's content. The builder must be empty.
func (c *ChildCell[T, PT]) WriteTo(b *cell.Builder) error {
	if !b.IsEmpty() {
		return fmt.Errorf("%w: the builder must be empty", ErrInvalidArg)
	}
	return b.CheckedAppendReferencesAndData(cell.FromCell(c.cell))
}

// ReadFrom adopts the backing cell of the given slice without copying. The
// slice must be positioned at the start of a full, unconsumed cell.
func (c *ChildCell[T, PT]) ReadFrom(s *cell.Slice) error {
	if !s.IsFullCellSlice() {
		return fmt.Errorf("%w: the slice must have zero position", ErrInvalidArg)
	}
	c.cell = s.Cell()
	return nil
}
