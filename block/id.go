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
	"github.com/ethereum/go-ethereum/common"
)

// Hashable is implemented by structures that can compute their own
// representation hash, the content hash of their canonical encoding.
type Hashable interface {
	Hash() (common.Hash, error)
}

// Identified is implemented by structures that additionally memoize the
// representation hash. Embed IDCache to satisfy the cache accessor.
//
// The cache does not observe mutation: after changing an identified
// structure the caller is responsible for invalidating it.
type Identified interface {
	Hashable
	idCache() *IDCache
}

// IDCache holds the memoized representation hash of its embedding
// structure. The zero value is an empty cache. Mutating the cache requires
// exclusive access to the owning structure.
type IDCache struct {
	id *common.Hash
}

func (c *IDCache) idCache() *IDCache {
	return c
}

// Invalidate drops the memoized hash so the next ID call recomputes it.
func (c *IDCache) Invalidate() {
	c.id = nil
}

// ID returns the object's representation hash, computing and caching it on
// first use.
func ID(obj Identified) (common.Hash, error) {
	cache := obj.idCache()
	if cache.id != nil {
		return *cache.id, nil
	}
	hash, err := obj.Hash()
	if err != nil {
		return common.Hash{}, err
	}
	cache.id = &hash
	return hash, nil
}

// PrepareID forces the representation hash to be computed and cached
// without returning it.
func PrepareID(obj Identified) error {
	_, err := ID(obj)
	return err
}

// CalcID returns the object's representation hash without mutating the
// cache: the cached value is returned if present, otherwise the hash is
// computed and discarded.
func CalcID(obj Identified) (common.Hash, error) {
	if cache := obj.idCache(); cache.id != nil {
		return *cache.id, nil
	}
	return obj.Hash()
}

// RepresentationHash serializes the value into a fresh cell and returns the
// cell's hash. It is the common Hash implementation for structures whose
// identity is their canonical encoding.
func RepresentationHash(v Serializable) (common.Hash, error) {
	c, err := ToCell(v)
	if err != nil {
		return common.Hash{}, err
	}
	return c.Hash(), nil
}
