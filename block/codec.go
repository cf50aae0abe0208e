// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package block implements the value-encoding core of the ledger model: a
// universal scalar codec over cell builders and slices, self-describing
// variable-length and fixed-width bounded integer families, typed wrappers
// over bit-keyed hashmap engines, lazily decoded child-cell references, and
// a memoized representation-hash identity capability.
//
// All operations are pure, synchronous transformations of their inputs.
// Mutating operations require exclusive access to the receiver; nothing in
// this package performs its own locking.
package block

import (
	"github.com/tonlabs/ton-labs-block/cell"
)

// Serializable is implemented by values that can append their canonical bit
// encoding to a cell builder. WriteTo advances the builder and reports
// capacity errors from the builder unchanged.
type Serializable interface {
	WriteTo(b *cell.Builder) error
}

// Deserializable is implemented by values that can read themselves from a
// cell slice, consuming exactly the bits a corresponding WriteTo produced.
// ReadFrom leaves the slice positioned after them and reports truncation as
// cell.ErrCellUnderflow.
type Deserializable interface {
	ReadFrom(s *cell.Slice) error
}

// CodecPtr constrains a pointer type implementing both directions of the
// codec protocol. It lets generic containers construct fresh values of their
// element type and decode into them.
type CodecPtr[T any] interface {
	*T
	Serializable
	Deserializable
}

// WriteToNewCell serializes a value into a fresh builder.
func WriteToNewCell(v Serializable) (*cell.Builder, error) {
	b := cell.NewBuilder()
	if err := v.WriteTo(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ToCell serializes a value into a finalized cell.
func ToCell(v Serializable) (*cell.Cell, error) {
	b, err := WriteToNewCell(v)
	if err != nil {
		return nil, err
	}
	return b.ToCell()
}

// ConstructFrom decodes a fresh value of type T from the slice.
func ConstructFrom[T any, PT CodecPtr[T]](s *cell.Slice) (T, error) {
	var v T
	err := PT(&v).ReadFrom(s)
	return v, err
}

// ConstructFromCell decodes a fresh value of type T from the start of the
// given cell.
func ConstructFromCell[T any, PT CodecPtr[T]](c *cell.Cell) (T, error) {
	return ConstructFrom[T, PT](cell.FromCell(c))
}
