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

// AugPtr constrains the pointer type of an augmentation value: a codec type
// that can fold another value of its own kind into itself. Grams is the
// canonical instance, keeping a running currency total over a subtree.
type AugPtr[A any] interface {
	*A
	Serializable
	Deserializable
	Calc(other *A) error
}

// Combiner builds the slice-level combine function an augmented engine
// needs from a typed augmentation: both operands are decoded, folded with
// Calc, and re-encoded.
func Combiner[A any, PA AugPtr[A]]() func(acc, other *cell.Slice) (*cell.Builder, error) {
	return func(acc, other *cell.Slice) (*cell.Builder, error) {
		left, err := ConstructFrom[A, PA](acc)
		if err != nil {
			return nil, err
		}
		right, err := ConstructFrom[A, PA](other)
		if err != nil {
			return nil, err
		}
		if err := PA(&left).Calc(&right); err != nil {
			return nil, err
		}
		return WriteToNewCell(PA(&left))
	}
}

// AugDictionary is a typed wrapper over an augmented hashmap engine: every
// entry carries an extra of type A, and the engine keeps the bottom-up
// combination of extras per subtree. Keys are passed as any codec value and
// encoded to the engine's fixed bit length.
type AugDictionary[V any, PV CodecPtr[V], A any, PA AugPtr[A]] struct {
	engine AugHashmap
}

// NewAugDictionary wraps the given augmented engine with typed operations.
func NewAugDictionary[V any, PV CodecPtr[V], A any, PA AugPtr[A]](engine AugHashmap) *AugDictionary[V, PV, A, PA] {
	return &AugDictionary[V, PV, A, PA]{engine: engine}
}

// Engine returns the wrapped untyped engine.
func (d *AugDictionary[V, PV, A, PA]) Engine() AugHashmap {
	return d.engine
}

// Set encodes key, value and extra and stores them in the engine.
func (d *AugDictionary[V, PV, A, PA]) Set(key Serializable, value *V, extra *A) error {
	ks, err := keySlice(key)
	if err != nil {
		return err
	}
	vs, err := valueSlice(PV(value))
	if err != nil {
		return err
	}
	es, err := valueSlice(PA(extra))
	if err != nil {
		return err
	}
	return d.engine.Set(ks, vs, es)
}

// Get returns the decoded value and extra stored under the key, or nils if
// the key is absent.
func (d *AugDictionary[V, PV, A, PA]) Get(key Serializable) (*V, *A, error) {
	ks, err := keySlice(key)
	if err != nil {
		return nil, nil, err
	}
	rawValue, rawExtra, err := d.engine.Get(ks)
	if err != nil || rawValue == nil {
		return nil, nil, err
	}
	value, err := ConstructFrom[V, PV](rawValue)
	if err != nil {
		return nil, nil, err
	}
	extra, err := ConstructFrom[A, PA](rawExtra)
	if err != nil {
		return nil, nil, err
	}
	return &value, &extra, nil
}

// Remove deletes the entry under the key, if present.
func (d *AugDictionary[V, PV, A, PA]) Remove(key Serializable) error {
	ks, err := keySlice(key)
	if err != nil {
		return err
	}
	return d.engine.Remove(ks)
}

// Len returns the number of entries.
func (d *AugDictionary[V, PV, A, PA]) Len() (int, error) {
	return d.engine.Len()
}

// IterateWithExtras visits all entries in canonical key order, handing the
// raw key slice along with the decoded value and extra to the callback.
func (d *AugDictionary[V, PV, A, PA]) IterateWithExtras(fn func(key *cell.Slice, value V, extra A) (bool, error)) (bool, error) {
	return d.engine.Iterate(func(rawKey, rawValue, rawExtra *cell.Slice) (bool, error) {
		value, err := ConstructFrom[V, PV](rawValue)
		if err != nil {
			return false, err
		}
		extra, err := ConstructFrom[A, PA](rawExtra)
		if err != nil {
			return false, err
		}
		return fn(rawKey, value, extra)
	})
}

// RootExtra returns the combined extra over all entries. For an empty
// dictionary the zero value of A is returned.
func (d *AugDictionary[V, PV, A, PA]) RootExtra() (A, error) {
	var zero A
	raw, err := d.engine.RootExtra()
	if err != nil || raw == nil {
		return zero, err
	}
	return ConstructFrom[A, PA](raw)
}

func (d *AugDictionary[V, PV, A, PA]) WriteTo(b *cell.Builder) error {
	return d.engine.WriteTo(b)
}

func (d *AugDictionary[V, PV, A, PA]) ReadFrom(s *cell.Slice) error {
	return d.engine.ReadFrom(s)
}
