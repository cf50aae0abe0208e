// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package hashmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tonlabs/ton-labs-block/cell"
)

// sumU32 combines two 32-bit extras by adding them.
func sumU32(acc, other *cell.Slice) (*cell.Builder, error) {
	left, err := acc.GetNextU32()
	if err != nil {
		return nil, err
	}
	right, err := other.GetNextU32()
	if err != nil {
		return nil, err
	}
	b := cell.NewBuilder()
	if err := b.AppendU32(left + right); err != nil {
		return nil, err
	}
	return b, nil
}

func TestAugEngine_SetGetCarriesExtras(t *testing.T) {
	require := require.New(t)

	e := NewAug(32, sumU32)
	require.NoError(e.Set(u32Slice(t, 1), u32Slice(t, 100), u32Slice(t, 10)))

	value, extra, err := e.Get(u32Slice(t, 1))
	require.NoError(err)
	require.NotNil(value)
	require.Equal(uint32(100), readU32(t, value))
	require.Equal(uint32(10), readU32(t, extra))

	value, extra, err = e.Get(u32Slice(t, 2))
	require.NoError(err)
	require.Nil(value)
	require.Nil(extra)
}

func TestAugEngine_RootExtraFoldsAllLeaves(t *testing.T) {
	require := require.New(t)

	e := NewAug(32, sumU32)
	sum, err := e.RootExtra()
	require.NoError(err)
	require.Nil(sum, "an empty engine has no combined extra")

	total := uint32(0)
	for key, fee := range map[uint32]uint32{1: 10, 2: 25, 0x80000000: 7} {
		require.NoError(e.Set(u32Slice(t, key), u32Slice(t, key), u32Slice(t, fee)))
		total += fee
	}

	sum, err = e.RootExtra()
	require.NoError(err)
	require.Equal(total, readU32(t, sum))

	require.NoError(e.Remove(u32Slice(t, 2)))
	sum, err = e.RootExtra()
	require.NoError(err)
	require.Equal(total-25, readU32(t, sum))
}

func TestAugEngine_IterationFollowsBitPrefixOrder(t *testing.T) {
	require := require.New(t)

	e := NewAug(32, sumU32)
	for _, key := range []uint32{300, 1, 0xFFFFFFFF} {
		require.NoError(e.Set(u32Slice(t, key), u32Slice(t, key), u32Slice(t, 1)))
	}

	var keys []uint32
	completed, err := e.Iterate(func(key, value, extra *cell.Slice) (bool, error) {
		k := readU32(t, key)
		require.Equal(k, readU32(t, value))
		require.Equal(uint32(1), readU32(t, extra))
		keys = append(keys, k)
		return true, nil
	})
	require.NoError(err)
	require.True(completed)
	require.Equal([]uint32{1, 300, 0xFFFFFFFF}, keys)
}

func TestAugEngine_RootRoundTripPreservesEntriesAndSum(t *testing.T) {
	require := require.New(t)

	e := NewAug(32, sumU32)
	for key, fee := range map[uint32]uint32{1: 10, 2: 20, 0xF0000000: 30} {
		require.NoError(e.Set(u32Slice(t, key), u32Slice(t, key*2), u32Slice(t, fee)))
	}

	b := cell.NewBuilder()
	require.NoError(e.WriteRoot(b))
	root, err := b.ToCell()
	require.NoError(err)

	restored := NewAug(32, sumU32)
	require.NoError(restored.ReadRoot(cell.FromCell(root)))

	count, err := restored.Len()
	require.NoError(err)
	require.Equal(3, count)

	value, extra, err := restored.Get(u32Slice(t, 2))
	require.NoError(err)
	require.NotNil(value)
	require.Equal(uint32(4), readU32(t, value))
	require.Equal(uint32(20), readU32(t, extra))

	sum, err := restored.RootExtra()
	require.NoError(err)
	require.Equal(uint32(60), readU32(t, sum))
}

func TestAugEngine_MaybeEmptyFormRoundTrips(t *testing.T) {
	require := require.New(t)

	empty := NewAug(32, sumU32)
	b := cell.NewBuilder()
	require.NoError(empty.WriteTo(b))
	c, err := b.ToCell()
	require.NoError(err)

	restored := NewAug(32, sumU32)
	require.NoError(restored.ReadFrom(cell.FromCell(c)))
	require.True(restored.IsEmpty())

	filled := NewAug(32, sumU32)
	require.NoError(filled.Set(u32Slice(t, 9), u32Slice(t, 90), u32Slice(t, 9)))
	b = cell.NewBuilder()
	require.NoError(filled.WriteTo(b))
	c, err = b.ToCell()
	require.NoError(err)

	restored = NewAug(32, sumU32)
	require.NoError(restored.ReadFrom(cell.FromCell(c)))
	value, extra, err := restored.Get(u32Slice(t, 9))
	require.NoError(err)
	require.NotNil(value)
	require.Equal(uint32(90), readU32(t, value))
	require.Equal(uint32(9), readU32(t, extra))
}

func TestAugEngine_CombineFailuresPropagate(t *testing.T) {
	require := require.New(t)

	injected := fmt.Errorf("injected combine failure")
	failing := func(acc, other *cell.Slice) (*cell.Builder, error) {
		return nil, injected
	}

	e := NewAug(32, failing)
	require.NoError(e.Set(u32Slice(t, 1), u32Slice(t, 1), u32Slice(t, 1)))
	require.NoError(e.Set(u32Slice(t, 2), u32Slice(t, 2), u32Slice(t, 2)))

	_, err := e.RootExtra()
	require.ErrorIs(err, injected)
	require.ErrorIs(e.WriteRoot(cell.NewBuilder()), injected)
}

func TestAugEngine_KeyLengthIsEnforced(t *testing.T) {
	require := require.New(t)

	e := NewAug(32, sumU32)
	short := cell.NewBuilder()
	require.NoError(short.AppendU16(7))
	c, err := short.ToCell()
	require.NoError(err)

	require.ErrorIs(e.Set(cell.FromCell(c), u32Slice(t, 1), u32Slice(t, 1)), ErrKeyLength)
	_, _, err = e.Get(cell.FromCell(c))
	require.ErrorIs(err, ErrKeyLength)
}
