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
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tonlabs/ton-labs-block/cell"
	"github.com/tonlabs/ton-labs-block/hashmap"
)

func newGramsDict() *Dictionary[Uint32, *Uint32, Grams, *Grams] {
	return NewDictionary[Uint32, *Uint32, Grams, *Grams](hashmap.New(32))
}

func TestDictionary_SetGetRemove(t *testing.T) {
	require := require.New(t)

	dict := newGramsDict()
	require.NoError(dict.Set(17, NewGrams(100)))
	require.NoError(dict.Set(42, NewGrams(200)))

	got, err := dict.Get(17)
	require.NoError(err)
	require.NotNil(got)
	want := NewGrams(100)
	require.True(got.Equal(&want))

	missing, err := dict.Get(99)
	require.NoError(err)
	require.Nil(missing, "an absent key yields nil, not an error")

	require.NoError(dict.Remove(17))
	gone, err := dict.Get(17)
	require.NoError(err)
	require.Nil(gone)

	count, err := dict.Len()
	require.NoError(err)
	require.Equal(1, count)
}

func TestDictionary_SetReplacesExistingValue(t *testing.T) {
	require := require.New(t)

	dict := newGramsDict()
	require.NoError(dict.Set(1, NewGrams(100)))
	require.NoError(dict.Set(1, NewGrams(500)))

	got, err := dict.Get(1)
	require.NoError(err)
	want := NewGrams(500)
	require.True(got.Equal(&want))

	count, err := dict.Len()
	require.NoError(err)
	require.Equal(1, count)
}

func TestDictionary_SetRefStoresPrebuiltCell(t *testing.T) {
	require := require.New(t)

	amount := NewGrams(777)
	c, err := ToCell(&amount)
	require.NoError(err)

	dict := newGramsDict()
	require.NoError(dict.SetRef(5, c))

	got, err := dict.Get(5)
	require.NoError(err)
	require.True(got.Equal(&amount))
}

func TestDictionary_IterationFollowsKeyOrder(t *testing.T) {
	require := require.New(t)

	dict := newGramsDict()
	for _, key := range []Uint32{300, 1, 0xFFFFFFFF, 42} {
		require.NoError(dict.Set(key, NewGrams(uint64(key))))
	}

	var keys []Uint32
	completed, err := dict.IterateWithKeys(func(key Uint32, value Grams) (bool, error) {
		want := NewGrams(uint64(key))
		require.True(value.Equal(&want))
		keys = append(keys, key)
		return true, nil
	})
	require.NoError(err)
	require.True(completed)
	require.Equal([]Uint32{1, 42, 300, 0xFFFFFFFF}, keys)
}

func TestDictionary_IterationStopsEarly(t *testing.T) {
	require := require.New(t)

	dict := newGramsDict()
	for key := Uint32(0); key < 10; key++ {
		require.NoError(dict.Set(key, NewGrams(1)))
	}

	visited := 0
	completed, err := dict.Iterate(func(value Grams) (bool, error) {
		visited++
		return visited < 3, nil
	})
	require.NoError(err)
	require.False(completed)
	require.Equal(3, visited)
}

func TestDictionary_IterateKeysAndSlices(t *testing.T) {
	require := require.New(t)

	dict := newGramsDict()
	require.NoError(dict.Set(7, NewGrams(70)))
	require.NoError(dict.Set(3, NewGrams(30)))

	var keys []Uint32
	completed, err := dict.IterateKeys(func(key Uint32) (bool, error) {
		keys = append(keys, key)
		return true, nil
	})
	require.NoError(err)
	require.True(completed)
	require.Equal([]Uint32{3, 7}, keys)

	var raw []uint64
	completed, err = dict.IterateSlices(func(value *cell.Slice) (bool, error) {
		decoded, err := ConstructFrom[Grams, *Grams](value)
		if err != nil {
			return false, err
		}
		raw = append(raw, decoded.Value().Uint64())
		return true, nil
	})
	require.NoError(err)
	require.True(completed)
	require.Equal([]uint64{30, 70}, raw)
}

func TestDictionary_SerializedFormRoundTrips(t *testing.T) {
	require := require.New(t)

	dict := newGramsDict()
	for _, key := range []Uint32{1, 2, 0x80000000, 0xFFFF0000} {
		require.NoError(dict.Set(key, NewGrams(uint64(key)*10)))
	}

	c, err := ToCell(dict)
	require.NoError(err)

	restored := newGramsDict()
	require.NoError(restored.ReadFrom(cell.FromCell(c)))

	count, err := restored.Len()
	require.NoError(err)
	require.Equal(4, count)
	for _, key := range []Uint32{1, 2, 0x80000000, 0xFFFF0000} {
		got, err := restored.Get(key)
		require.NoError(err)
		require.NotNil(got)
		want := NewGrams(uint64(key) * 10)
		require.True(got.Equal(&want), "key %d", key)
	}
}

func TestDictionary_EmptySerializedFormIsASingleBit(t *testing.T) {
	require := require.New(t)

	dict := newGramsDict()
	c, err := ToCell(dict)
	require.NoError(err)
	require.Equal(1, c.BitLength())
	require.Zero(c.RefsCount())

	restored := newGramsDict()
	require.NoError(restored.ReadFrom(cell.FromCell(c)))
	require.True(restored.Engine().IsEmpty())
}

func TestDictionary_RootFormRoundTrips(t *testing.T) {
	require := require.New(t)

	dict := newGramsDict()
	require.NoError(dict.Set(11, NewGrams(110)))
	require.NoError(dict.Set(12, NewGrams(120)))

	b := cell.NewBuilder()
	require.NoError(dict.WriteHashmapRoot(b))
	c, err := b.ToCell()
	require.NoError(err)

	restored := newGramsDict()
	require.NoError(restored.ReadHashmapRoot(cell.FromCell(c)))
	got, err := restored.Get(12)
	require.NoError(err)
	require.NotNil(got)
	want := NewGrams(120)
	require.True(got.Equal(&want))
}

func TestDictionary_EngineErrorsPropagate(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	injected := fmt.Errorf("injected engine failure")
	engine := NewMockHashmap(ctrl)
	engine.EXPECT().Set(gomock.Any(), gomock.Any()).Return(injected)
	engine.EXPECT().Get(gomock.Any()).Return(nil, injected)
	engine.EXPECT().Remove(gomock.Any()).Return(injected)
	engine.EXPECT().Iterate(gomock.Any()).Return(false, injected)

	dict := NewDictionary[Uint32, *Uint32, Grams, *Grams](engine)
	require.ErrorIs(dict.Set(1, NewGrams(1)), injected)
	_, err := dict.Get(1)
	require.ErrorIs(err, injected)
	require.ErrorIs(dict.Remove(1), injected)
	_, err = dict.Iterate(func(Grams) (bool, error) { return true, nil })
	require.ErrorIs(err, injected)
}

func TestDictionary_DecodeFailuresSurfaceFromGet(t *testing.T) {
	require := require.New(t)

	// A value cell too short for the declared type fails decoding on access.
	dict := NewDictionary[Uint32, *Uint32, Uint64, *Uint64](hashmap.New(32))
	short, err := cell.NewBuilder().ToCell()
	require.NoError(err)
	require.NoError(dict.SetRef(9, short))

	_, err = dict.Get(9)
	require.ErrorIs(err, cell.ErrCellUnderflow)
}
