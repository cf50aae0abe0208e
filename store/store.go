// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package store persists cells by their representation hash. Cells are
// stored as flat records holding the cell's own bits plus the hashes of its
// children; child cells are stored alongside and resolved recursively on
// load, so a whole tree round-trips through a single root hash. Pruned
// branches persist as stubs and are restored as stubs.
package store

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tonlabs/ton-labs-block/cell"
)

// ErrNotFound is returned when no cell is stored under the requested hash.
var ErrNotFound = errors.New("cell not found")

// Store is a content-addressed cell store.
type Store interface {
	// Put stores the cell and all cells reachable from it, returning the
	// root's representation hash. Storing the same cell twice is a no-op.
	Put(c *cell.Cell) (common.Hash, error)
	// Get loads the cell stored under the given hash, resolving the whole
	// tree below it.
	Get(hash common.Hash) (*cell.Cell, error)
	// Has reports whether a cell is stored under the given hash.
	Has(hash common.Hash) (bool, error)
	// Close releases the underlying resources.
	Close() error
}

// record layout: kind byte, 2 bytes bit length (big endian), ceil(bits/8)
// data bytes, ref count byte, 32 bytes per child hash. Pruned stubs store
// their kind byte only; the stub's hash is the record key.
func encodeRecord(c *cell.Cell) []byte {
	if c.Kind() == cell.PrunedBranch {
		return []byte{byte(cell.PrunedBranch)}
	}
	bits := c.BitLength()
	record := make([]byte, 0, 4+len(c.Data())+c.RefsCount()*common.HashLength)
	record = append(record, byte(c.Kind()), byte(bits>>8), byte(bits))
	record = append(record, c.Data()...)
	record = append(record, byte(c.RefsCount()))
	for i := 0; i < c.RefsCount(); i++ {
		hash := c.Ref(i).Hash()
		record = append(record, hash[:]...)
	}
	return record
}

// decodeRecord rebuilds a cell from its record, loading children through
// the resolve callback.
func decodeRecord(hash common.Hash, record []byte, resolve func(common.Hash) (*cell.Cell, error)) (*cell.Cell, error) {
	if len(record) == 0 {
		return nil, fmt.Errorf("empty record for cell %x", hash)
	}
	if cell.Type(record[0]) == cell.PrunedBranch {
		return cell.NewPrunedBranch(hash), nil
	}
	if len(record) < 3 {
		return nil, fmt.Errorf("truncated record for cell %x", hash)
	}
	bits := int(record[1])<<8 | int(record[2])
	dataLen := (bits + 7) / 8
	if len(record) < 3+dataLen+1 {
		return nil, fmt.Errorf("truncated record for cell %x", hash)
	}
	data := make([]byte, dataLen)
	copy(data, record[3:3+dataLen])
	refsCount := int(record[3+dataLen])
	rest := record[3+dataLen+1:]
	if len(rest) != refsCount*common.HashLength {
		return nil, fmt.Errorf("truncated record for cell %x", hash)
	}
	refs := make([]*cell.Cell, refsCount)
	for i := range refs {
		var childHash common.Hash
		copy(childHash[:], rest[i*common.HashLength:])
		child, err := resolve(childHash)
		if err != nil {
			return nil, err
		}
		refs[i] = child
	}
	c, err := cell.New(data, bits, refs)
	if err != nil {
		return nil, err
	}
	if c.Hash() != hash {
		return nil, fmt.Errorf("cell %x loads with hash %x", hash, c.Hash())
	}
	return c, nil
}
