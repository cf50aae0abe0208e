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
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/snappy"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/tonlabs/ton-labs-block/cell"
)

// LevelDB is a cell store persisted in a LevelDB database. Records are
// snappy-compressed; keys are the 32-byte representation hashes.
type LevelDB struct {
	db *leveldb.DB
}

// OpenLevelDB opens or creates a cell store in the given directory.
func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cell store in %s: %w", path, err)
	}
	return &LevelDB{db: db}, nil
}

// NewLevelDBInMemory creates a cell store backed by in-memory LevelDB
// storage, mainly for tests.
func NewLevelDBInMemory() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db}, nil
}

// Put stores the cell and all cells reachable from it.
func (l *LevelDB) Put(c *cell.Cell) (common.Hash, error) {
	hash := c.Hash()
	stored, err := l.Has(hash)
	if err != nil {
		return common.Hash{}, err
	}
	if stored {
		return hash, nil
	}
	for i := 0; i < c.RefsCount(); i++ {
		if _, err := l.Put(c.Ref(i)); err != nil {
			return common.Hash{}, err
		}
	}
	record := snappy.Encode(nil, encodeRecord(c))
	if err := l.db.Put(hash[:], record, nil); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

// Get loads the cell stored under the given hash.
func (l *LevelDB) Get(hash common.Hash) (*cell.Cell, error) {
	compressed, err := l.db.Get(hash[:], nil)
	if errors.Is(err, ldberrors.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	record, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("corrupted record for cell %x: %w", hash, err)
	}
	return decodeRecord(hash, record, l.Get)
}

// Has reports whether a cell is stored under the given hash.
func (l *LevelDB) Has(hash common.Hash) (bool, error) {
	return l.db.Has(hash[:], nil)
}

// Close closes the underlying database.
func (l *LevelDB) Close() error {
	return l.db.Close()
}
