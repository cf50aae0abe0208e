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
	"github.com/ethereum/go-ethereum/common"

	"github.com/tonlabs/ton-labs-block/cell"
)

// Memory is an in-memory cell store.
type Memory struct {
	records map[common.Hash][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: map[common.Hash][]byte{}}
}

// Put stores the cell and all cells reachable from it.
func (m *Memory) Put(c *cell.Cell) (common.Hash, error) {
	hash := c.Hash()
	if _, ok := m.records[hash]; ok {
		return hash, nil
	}
	for i := 0; i < c.RefsCount(); i++ {
		if _, err := m.Put(c.Ref(i)); err != nil {
			return common.Hash{}, err
		}
	}
	m.records[hash] = encodeRecord(c)
	return hash, nil
}

// Get loads the cell stored under the given hash.
func (m *Memory) Get(hash common.Hash) (*cell.Cell, error) {
	record, ok := m.records[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return decodeRecord(hash, record, m.Get)
}

// Has reports whether a cell is stored under the given hash.
func (m *Memory) Has(hash common.Hash) (bool, error) {
	_, ok := m.records[hash]
	return ok, nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}
