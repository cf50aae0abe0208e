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
	"github.com/tonlabs/ton-labs-block/cell"
)

//go:generate mockgen -source dictionary.go -destination hashmap_mocks.go -package block

// Hashmap is the contract of the untyped bit-keyed trie engine the typed
// dictionary delegates to. Keys are fixed-length bit strings handed over as
// slices; values are opaque slices. Iteration follows the engine's canonical
// bit-prefix order and stops early when the callback returns false. The
// engine's structural errors pass through the dictionary unchanged.
type Hashmap interface {
	// BitLen returns the fixed key bit length of the engine.
	BitLen() int
	// IsEmpty reports whether the engine holds no entries.
	IsEmpty() bool
	// Len returns the number of entries.
	Len() (int, error)
	// Get returns the value stored under the key, or nil if absent.
	Get(key *cell.Slice) (*cell.Slice, error)
	// Set stores the value under the key, replacing any previous value.
	Set(key, value *cell.Slice) error
	// SetRef stores a pre-built cell directly as the value under the key.
	SetRef(key *cell.Slice, value *cell.Cell) error
	// Remove deletes the entry under the key, if present.
	Remove(key *cell.Slice) error
	// Iterate visits all entries in canonical key order. The callback
	// returns whether to continue; Iterate reports whether the traversal
	// ran to completion.
	Iterate(fn func(key, value *cell.Slice) (bool, error)) (bool, error)
	// WriteRoot serializes the root node into the builder. Only valid for
	// non-empty engines.
	WriteRoot(b *cell.Builder) error
	// ReadRoot reads the root node from the slice. Only valid for non-empty
	// serialized roots.
	ReadRoot(s *cell.Slice) error
	// WriteTo serializes the maybe-empty form: a presence bit, followed by
	// a reference to the root cell when non-empty.
	WriteTo(b *cell.Builder) error
	// ReadFrom deserializes the maybe-empty form.
	ReadFrom(s *cell.Slice) error
}

// AugHashmap is the contract of an augmented engine: every entry carries an
// extra value, and every subtree is annotated with the bottom-up combination
// of the extras of its leaves.
type AugHashmap interface {
	BitLen() int
	IsEmpty() bool
	Len() (int, error)
	Get(key *cell.Slice) (value, extra *cell.Slice, err error)
	Set(key, value, extra *cell.Slice) error
	Remove(key *cell.Slice) error
	Iterate(fn func(key, value, extra *cell.Slice) (bool, error)) (bool, error)
	// RootExtra returns the combined extra over all entries.
	RootExtra() (*cell.Slice, error)
	WriteRoot(b *cell.Builder) error
	ReadRoot(s *cell.Slice) error
	WriteTo(b *cell.Builder) error
	ReadFrom(s *cell.Slice) error
}

// Dictionary is a typed, key- and value-aware wrapper over an untyped
// hashmap engine. Keys of type K are encoded to the engine's fixed-length
// bit string, values of type V to value cells, both through the codec
// protocol; all structural and codec errors propagate to the caller
// unchanged.
//
// A dictionary does not own the engine's concurrency story: like the rest
// of the package it requires single-writer discipline, and reentrant
// modification from an iteration callback is undefined.
type Dictionary[K any, PK CodecPtr[K], V any, PV CodecPtr[V]] struct {
	engine Hashmap
}

// NewDictionary wraps the given engine with typed operations.
func NewDictionary[K any, PK CodecPtr[K], V any, PV CodecPtr[V]](engine Hashmap) *Dictionary[K, PK, V, PV] {
	return &Dictionary[K, PK, V, PV]{engine: engine}
}

// Engine returns the wrapped untyped engine.
func (d *Dictionary[K, PK, V, PV]) Engine() Hashmap {
	return d.engine
}

func keySlice(key Serializable) (*cell.Slice, error) {
	b, err := WriteToNewCell(key)
	if err != nil {
		return nil, err
	}
	c, err := b.ToCell()
	if err != nil {
		return nil, err
	}
	return cell.FromCell(c), nil
}

func valueSlice(value Serializable) (*cell.Slice, error) {
	return keySlice(value)
}

// Set encodes key and value and stores them in the engine.
func (d *Dictionary[K, PK, V, PV]) Set(key K, value V) error {
	ks, err := keySlice(PK(&key))
	if err != nil {
		return err
	}
	vs, err := valueSlice(PV(&value))
	if err != nil {
		return err
	}
	return d.engine.Set(ks, vs)
}

// SetRef stores a pre-built cell directly as the value for the key, without
// decoding it. It serves callers that already hold a serialized child.
func (d *Dictionary[K, PK, V, PV]) SetRef(key K, value *cell.Cell) error {
	ks, err := keySlice(PK(&key))
	if err != nil {
		return err
	}
	return d.engine.SetRef(ks, value)
}

// Get returns the decoded value stored under the key, or nil if the key is
// absent.
func (d *Dictionary[K, PK, V, PV]) Get(key K) (*V, error) {
	ks, err := keySlice(PK(&key))
	if err != nil {
		return nil, err
	}
	raw, err := d.engine.Get(ks)
	if err != nil || raw == nil {
		return nil, err
	}
	value, err := ConstructFrom[V, PV](raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// Remove deletes the entry under the key, if present.
func (d *Dictionary[K, PK, V, PV]) Remove(key K) error {
	ks, err := keySlice(PK(&key))
	if err != nil {
		return err
	}
	return d.engine.Remove(ks)
}

// Len returns the number of entries.
func (d *Dictionary[K, PK, V, PV]) Len() (int, error) {
	return d.engine.Len()
}

// Iterate visits the decoded values in canonical key order. The callback
// returns whether to continue; the result reports whether the traversal ran
// to completion.
func (d *Dictionary[K, PK, V, PV]) Iterate(fn func(value V) (bool, error)) (bool, error) {
	return d.engine.Iterate(func(_, raw *cell.Slice) (bool, error) {
		value, err := ConstructFrom[V, PV](raw)
		if err != nil {
			return false, err
		}
		return fn(value)
	})
}

// IterateKeys visits the decoded keys in canonical order.
func (d *Dictionary[K, PK, V, PV]) IterateKeys(fn func(key K) (bool, error)) (bool, error) {
	return d.engine.Iterate(func(rawKey, _ *cell.Slice) (bool, error) {
		key, err := ConstructFrom[K, PK](rawKey)
		if err != nil {
			return false, err
		}
		return fn(key)
	})
}

// IterateWithKeys visits decoded key/value pairs in canonical order.
func (d *Dictionary[K, PK, V, PV]) IterateWithKeys(fn func(key K, value V) (bool, error)) (bool, error) {
	return d.engine.Iterate(func(rawKey, raw *cell.Slice) (bool, error) {
		key, err := ConstructFrom[K, PK](rawKey)
		if err != nil {
			return false, err
		}
		value, err := ConstructFrom[V, PV](raw)
		if err != nil {
			return false, err
		}
		return fn(key, value)
	})
}

// IterateSlices visits the raw value slices in canonical key order, without
// decoding them.
func (d *Dictionary[K, PK, V, PV]) IterateSlices(fn func(value *cell.Slice) (bool, error)) (bool, error) {
	return d.engine.Iterate(func(_, raw *cell.Slice) (bool, error) {
		return fn(raw)
	})
}

// WriteHashmapRoot serializes the root node into the builder. Only valid
// for non-empty dictionaries.
func (d *Dictionary[K, PK, V, PV]) WriteHashmapRoot(b *cell.Builder) error {
	return d.engine.WriteRoot(b)
}

// ReadHashmapRoot reads the root node from the slice. Only valid for
// non-empty serialized roots.
func (d *Dictionary[K, PK, V, PV]) ReadHashmapRoot(s *cell.Slice) error {
	return d.engine.ReadRoot(s)
}

func (d *Dictionary[K, PK, V, PV]) WriteTo(b *cell.Builder) error {
	return d.engine.WriteTo(b)
}

func (d *Dictionary[K, PK, V, PV]) ReadFrom(s *cell.Slice) error {
	return d.engine.ReadFrom(s)
}
