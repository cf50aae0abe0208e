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
	"github.com/tonlabs/ton-labs-block/hashmap"
)

func newBalanceDict() *AugDictionary[Uint64, *Uint64, Grams, *Grams] {
	engine := hashmap.NewAug(32, Combiner[Grams, *Grams]())
	return NewAugDictionary[Uint64, *Uint64, Grams, *Grams](engine)
}

func TestAugDictionary_SetGetCarriesExtras(t *testing.T) {
	require := require.New(t)

	dict := newBalanceDict()
	account := Uint64(1234)
	fee := NewGrams(10)
	require.NoError(dict.Set(Uint32(7), &account, &fee))

	value, extra, err := dict.Get(Uint32(7))
	require.NoError(err)
	require.NotNil(value)
	require.Equal(account, *value)
	require.True(extra.Equal(&fee))

	value, extra, err = dict.Get(Uint32(8))
	require.NoError(err)
	require.Nil(value)
	require.Nil(extra)
}

func TestAugDictionary_RootExtraSumsAllEntries(t *testing.T) {
	require := require.New(t)

	dict := newBalanceDict()
	total := uint64(0)
	for key, fee := range map[Uint32]uint64{1: 10, 2: 25, 3: 7} {
		account := Uint64(key)
		extra := NewGrams(fee)
		require.NoError(dict.Set(key, &account, &extra))
		total += fee
	}

	sum, err := dict.RootExtra()
	require.NoError(err)
	want := NewGrams(total)
	require.True(sum.Equal(&want))
}

func TestAugDictionary_RootExtraOfEmptyDictionaryIsZero(t *testing.T) {
	require := require.New(t)

	dict := newBalanceDict()
	sum, err := dict.RootExtra()
	require.NoError(err)
	require.True(sum.IsZero())
}

func TestAugDictionary_IterationDecodesValuesAndExtras(t *testing.T) {
	require := require.New(t)

	dict := newBalanceDict()
	for key, fee := range map[Uint32]uint64{5: 50, 6: 60} {
		account := Uint64(key)
		extra := NewGrams(fee)
		require.NoError(dict.Set(key, &account, &extra))
	}

	var accounts []Uint64
	var fees []uint64
	completed, err := dict.IterateWithExtras(func(key *cell.Slice, value Uint64, extra Grams) (bool, error) {
		require.Equal(32, key.RemainingBits())
		accounts = append(accounts, value)
		fees = append(fees, extra.Value().Uint64())
		return true, nil
	})
	require.NoError(err)
	require.True(completed)
	require.Equal([]Uint64{5, 6}, accounts)
	require.Equal([]uint64{50, 60}, fees)
}

func TestAugDictionary_RemoveShrinksTheSum(t *testing.T) {
	require := require.New(t)

	dict := newBalanceDict()
	for key, fee := range map[Uint32]uint64{1: 100, 2: 200} {
		account := Uint64(key)
		extra := NewGrams(fee)
		require.NoError(dict.Set(key, &account, &extra))
	}

	require.NoError(dict.Remove(Uint32(1)))
	count, err := dict.Len()
	require.NoError(err)
	require.Equal(1, count)

	sum, err := dict.RootExtra()
	require.NoError(err)
	want := NewGrams(200)
	require.True(sum.Equal(&want))
}

func TestAugDictionary_SerializedFormRoundTrips(t *testing.T) {
	require := require.New(t)

	dict := newBalanceDict()
	for key, fee := range map[Uint32]uint64{1: 10, 0x80000001: 20, 0xFFFFFFFF: 30} {
		account := Uint64(key) * 2
		extra := NewGrams(fee)
		require.NoError(dict.Set(key, &account, &extra))
	}

	c, err := ToCell(dict)
	require.NoError(err)

	restored := newBalanceDict()
	require.NoError(restored.ReadFrom(cell.FromCell(c)))

	count, err := restored.Len()
	require.NoError(err)
	require.Equal(3, count)

	value, extra, err := restored.Get(Uint32(0x80000001))
	require.NoError(err)
	require.NotNil(value)
	require.Equal(Uint64(0x80000001)*2, *value)
	wantExtra := NewGrams(20)
	require.True(extra.Equal(&wantExtra))

	sum, err := restored.RootExtra()
	require.NoError(err)
	wantSum := NewGrams(60)
	require.True(sum.Equal(&wantSum))
}
