// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/tonlabs/ton-labs-block/cell"
)

var storeFactories = map[string]func(t *testing.T) Store{
	"memory": func(t *testing.T) Store {
		return NewMemory()
	},
	"leveldb": func(t *testing.T) Store {
		s, err := NewLevelDBInMemory()
		require.NoError(t, err)
		return s
	},
}

func leafCell(t *testing.T, value uint32) *cell.Cell {
	t.Helper()
	b := cell.NewBuilder()
	require.NoError(t, b.AppendU32(value))
	c, err := b.ToCell()
	require.NoError(t, err)
	return c
}

// treeCell builds a small three-level tree with shared structure.
func treeCell(t *testing.T) *cell.Cell {
	t.Helper()
	left := leafCell(t, 1)
	right := leafCell(t, 2)

	mid := cell.NewBuilder()
	require.NoError(t, mid.AppendU8(0xAB))
	require.NoError(t, mid.AppendReference(left))
	require.NoError(t, mid.AppendReference(right))
	midCell, err := mid.ToCell()
	require.NoError(t, err)

	root := cell.NewBuilder()
	require.NoError(t, root.AppendU16(0xCDEF))
	require.NoError(t, root.AppendReference(midCell))
	require.NoError(t, root.AppendReference(left))
	rootCell, err := root.ToCell()
	require.NoError(t, err)
	return rootCell
}

func TestStore_TreeRoundTrip(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			s := factory(t)
			defer func() {
				require.NoError(s.Close())
			}()

			root := treeCell(t)
			hash, err := s.Put(root)
			require.NoError(err)
			require.Equal(root.Hash(), hash)

			loaded, err := s.Get(hash)
			require.NoError(err)
			require.True(root.Equal(loaded))
			require.Equal(root.BitLength(), loaded.BitLength())
			require.Equal(root.Data(), loaded.Data())
			require.Equal(2, loaded.RefsCount())
			require.True(root.Ref(0).Equal(loaded.Ref(0)))
			require.True(root.Ref(1).Equal(loaded.Ref(1)))
			require.Equal(uint32(1), mustReadU32(t, loaded.Ref(1)))
		})
	}
}

func TestStore_ChildrenAreIndividuallyAddressable(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			s := factory(t)
			defer func() {
				require.NoError(s.Close())
			}()

			root := treeCell(t)
			_, err := s.Put(root)
			require.NoError(err)

			// Every reachable cell is stored under its own hash.
			child, err := s.Get(root.Ref(0).Hash())
			require.NoError(err)
			require.True(root.Ref(0).Equal(child))

			leaf, err := s.Get(root.Ref(1).Hash())
			require.NoError(err)
			require.Equal(uint32(1), mustReadU32(t, leaf))
		})
	}
}

func TestStore_MissingHashYieldsNotFound(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			s := factory(t)
			defer func() {
				require.NoError(s.Close())
			}()

			_, err := s.Get(common.HexToHash("0xdeadbeef"))
			require.ErrorIs(err, ErrNotFound)

			ok, err := s.Has(common.HexToHash("0xdeadbeef"))
			require.NoError(err)
			require.False(ok)
		})
	}
}

func TestStore_PutIsIdempotent(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			s := factory(t)
			defer func() {
				require.NoError(s.Close())
			}()

			root := treeCell(t)
			first, err := s.Put(root)
			require.NoError(err)
			second, err := s.Put(root)
			require.NoError(err)
			require.Equal(first, second)

			ok, err := s.Has(first)
			require.NoError(err)
			require.True(ok)
		})
	}
}

func TestStore_PrunedBranchesRoundTripAsStubs(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			s := factory(t)
			defer func() {
				require.NoError(s.Close())
			}()

			elided := treeCell(t)
			b := cell.NewBuilder()
			require.NoError(b.AppendU8(0x01))
			require.NoError(b.AppendReference(cell.Prune(elided)))
			proof, err := b.ToCell()
			require.NoError(err)

			hash, err := s.Put(proof)
			require.NoError(err)

			loaded, err := s.Get(hash)
			require.NoError(err)
			require.True(proof.Equal(loaded))
			stub := loaded.Ref(0)
			require.Equal(cell.PrunedBranch, stub.Kind())
			require.Equal(elided.Hash(), stub.Hash())
			require.Zero(stub.BitLength(), "the elided subtree stays elided")
		})
	}
}

func TestStore_RejectsCorruptedRecords(t *testing.T) {
	require := require.New(t)

	m := NewMemory()
	root := leafCell(t, 42)
	hash, err := m.Put(root)
	require.NoError(err)

	// A record that no longer matches its key must not load.
	m.records[hash] = encodeRecord(leafCell(t, 43))
	_, err = m.Get(hash)
	require.Error(err)
	require.Contains(err.Error(), "loads with hash")
}

func mustReadU32(t *testing.T, c *cell.Cell) uint32 {
	t.Helper()
	value, err := cell.FromCell(c).GetNextU32()
	require.NoError(t, err)
	return value
}
