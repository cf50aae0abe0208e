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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tonlabs/ton-labs-block/cell"
)

func TestChildCell_RoundTripThroughHeldCell(t *testing.T) {
	require := require.New(t)

	amount := NewGrams(98765)
	child, err := ChildCellWithValue[Grams, *Grams](&amount)
	require.NoError(err)

	got, err := child.ReadValue()
	require.NoError(err)
	require.True(got.Equal(&amount))

	// Every read decodes afresh from the same cell.
	again, err := child.ReadValue()
	require.NoError(err)
	require.True(again.Equal(&amount))
}

func TestChildCell_WriteValueReplacesTheCell(t *testing.T) {
	require := require.New(t)

	amount := NewGrams(1)
	child, err := ChildCellWithValue[Grams, *Grams](&amount)
	require.NoError(err)
	before := child.Cell().Hash()

	next := NewGrams(2)
	require.NoError(child.WriteValue(&next))
	require.NotEqual(before, child.Cell().Hash())

	got, err := child.ReadValue()
	require.NoError(err)
	require.True(got.Equal(&next))
}

func TestChildCell_ReadingPrunedCellFailsWithTypedError(t *testing.T) {
	require := require.New(t)

	amount := NewGrams(5)
	child, err := ChildCellWithValue[Grams, *Grams](&amount)
	require.NoError(err)

	pruned := ChildCell[Grams, *Grams]{}
	require.NoError(pruned.ReadFrom(cell.FromCell(cell.Prune(child.Cell()))))
	hash, err := pruned.Hash()
	require.NoError(err)
	require.Equal(child.Cell().Hash(), hash, "the stub keeps the original hash")

	_, err = pruned.ReadValue()
	var accessErr *PrunedCellAccessError
	require.ErrorAs(err, &accessErr)
	require.Contains(accessErr.TypeName, "VarUInteger")
	require.Contains(err.Error(), "attempt to access pruned cell data")
}

func TestChildCell_WriteToRequiresEmptyBuilder(t *testing.T) {
	require := require.New(t)

	amount := NewGrams(5)
	child, err := ChildCellWithValue[Grams, *Grams](&amount)
	require.NoError(err)

	b := cell.NewBuilder()
	require.NoError(b.AppendBitBool(true))
	require.ErrorIs(child.WriteTo(b), ErrInvalidArg)

	fresh := cell.NewBuilder()
	require.NoError(child.WriteTo(fresh))
	c, err := fresh.ToCell()
	require.NoError(err)
	require.True(c.Equal(child.Cell()), "the builder reproduces the held cell exactly")
}

func TestChildCell_ReadFromRequiresUnconsumedSlice(t *testing.T) {
	require := require.New(t)

	amount := NewGrams(5)
	c, err := ToCell(&amount)
	require.NoError(err)

	s := cell.FromCell(c)
	_, err = s.GetNextBit()
	require.NoError(err)

	var child ChildCell[Grams, *Grams]
	require.ErrorIs(child.ReadFrom(s), ErrInvalidArg)

	require.NoError(child.ReadFrom(cell.FromCell(c)))
	require.Same(c, child.Cell(), "the cell is adopted without copying")
}
