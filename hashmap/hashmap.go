// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package hashmap provides an all-in-memory reference implementation of the
// bit-keyed trie engine consumed by the typed dictionary wrappers: a map
// from fixed-length bit strings to opaque cell payloads with canonical
// ordered traversal and a Patricia-tree cell serialization of the root.
//
// This implementation favors clarity over performance and serves as the
// reference for the engine contract. It is not optimized for large maps and
// is not safe for concurrent use.
package hashmap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tonlabs/ton-labs-block/cell"
)

var (
	// ErrKeyLength is returned when a key slice does not hold exactly the
	// engine's fixed number of bits.
	ErrKeyLength = errors.New("key length mismatch")
	// ErrMalformedRoot is returned when a serialized root does not parse as
	// a canonical Patricia tree of the engine's key length.
	ErrMalformedRoot = errors.New("malformed hashmap root")
)

// labelLenBits is the width of the label-length field of a serialized node,
// sized for the largest key a single cell can express.
const labelLenBits = 10

// Engine is the in-memory bit-keyed map. Entries are held in a flat map and
// ordered on demand; the tree shape exists only in the serialized form,
// where the root is written as a label-compressed binary Patricia tree with
// leaf payloads held as child references.
type Engine struct {
	bitLen  int
	entries map[string]*cell.Cell
}

// New creates an empty engine for keys of the given fixed bit length.
func New(bitLen int) *Engine {
	return &Engine{bitLen: bitLen, entries: map[string]*cell.Cell{}}
}

// BitLen returns the fixed key bit length.
func (e *Engine) BitLen() int {
	return e.bitLen
}

// IsEmpty reports whether the engine holds no entries.
func (e *Engine) IsEmpty() bool {
	return len(e.entries) == 0
}

// Len returns the number of entries.
func (e *Engine) Len() (int, error) {
	return len(e.entries), nil
}

// packKey consumes exactly bitLen bits from the slice and packs them into a
// map key, most significant bit first, trailing pad bits zero.
func packKey(s *cell.Slice, bitLen int) (string, error) {
	if s.RemainingBits() != bitLen {
		return "", fmt.Errorf("%w: got %d bits, want %d", ErrKeyLength, s.RemainingBits(), bitLen)
	}
	data := make([]byte, (bitLen+7)/8)
	for i := 0; i < bitLen; i++ {
		bit, err := s.GetNextBit()
		if err != nil {
			return "", err
		}
		if bit {
			data[i>>3] |= 0x80 >> (i & 7)
		}
	}
	return string(data), nil
}

// keySlice rebuilds a packed key as a full-cell slice of bitLen bits.
func keySlice(packed string, bitLen int) (*cell.Slice, error) {
	b := cell.NewBuilder()
	if err := b.AppendRaw([]byte(packed), bitLen); err != nil {
		return nil, err
	}
	c, err := b.ToCell()
	if err != nil {
		return nil, err
	}
	return cell.FromCell(c), nil
}

// sliceToCell repacks the remaining bits and references of a slice into a
// fresh cell, leaving the slice position untouched.
func sliceToCell(s *cell.Slice) (*cell.Cell, error) {
	b := cell.NewBuilder()
	if err := b.CheckedAppendReferencesAndData(s); err != nil {
		return nil, err
	}
	return b.ToCell()
}

// Get returns the value stored under the key as a fresh slice, or nil if
// the key is absent.
func (e *Engine) Get(key *cell.Slice) (*cell.Slice, error) {
	k, err := packKey(key, e.bitLen)
	if err != nil {
		return nil, err
	}
	value, ok := e.entries[k]
	if !ok {
		return nil, nil
	}
	return cell.FromCell(value), nil
}

// Set stores the value under the key, replacing any previous value.
func (e *Engine) Set(key, value *cell.Slice) error {
	k, err := packKey(key, e.bitLen)
	if err != nil {
		return err
	}
	c, err := sliceToCell(value)
	if err != nil {
		return err
	}
	e.entries[k] = c
	return nil
}

// SetRef stores a pre-built cell directly as the value under the key.
func (e *Engine) SetRef(key *cell.Slice, value *cell.Cell) error {
	k, err := packKey(key, e.bitLen)
	if err != nil {
		return err
	}
	e.entries[k] = value
	return nil
}

// Remove deletes the entry under the key, if present.
func (e *Engine) Remove(key *cell.Slice) error {
	k, err := packKey(key, e.bitLen)
	if err != nil {
		return err
	}
	delete(e.entries, k)
	return nil
}

// sortedKeys returns all packed keys in canonical bit-prefix order. For
// fixed-length keys that is plain lexicographic order of the packed bytes.
func (e *Engine) sortedKeys() []string {
	keys := make([]string, 0, len(e.entries))
	for k := range e.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Iterate visits all entries in canonical key order. The callback returns
// whether to continue; the result reports whether the traversal ran to
// completion. The map must not be modified during iteration.
func (e *Engine) Iterate(fn func(key, value *cell.Slice) (bool, error)) (bool, error) {
	for _, k := range e.sortedKeys() {
		ks, err := keySlice(k, e.bitLen)
		if err != nil {
			return false, err
		}
		proceed, err := fn(ks, cell.FromCell(e.entries[k]))
		if err != nil {
			return false, err
		}
		if !proceed {
			return false, nil
		}
	}
	return true, nil
}

func bitOf(packed string, i int) bool {
	return packed[i>>3]&(0x80>>(i&7)) != 0
}

// commonPrefixLen returns the length of the longest common bit prefix of
// the given keys starting at depth. All keys are full; the maximum is
// bitLen-depth.
func commonPrefixLen(keys []string, depth, bitLen int) int {
	length := 0
	for depth+length < bitLen {
		bit := bitOf(keys[0], depth+length)
		for _, k := range keys[1:] {
			if bitOf(k, depth+length) != bit {
				return length
			}
		}
		length++
	}
	return length
}

// writeNode serializes the subtree covering the given sorted keys into the
// builder: the label length, the label bits, then for a leaf one reference
// to the value cell, for a fork one reference per child subtree.
func (e *Engine) writeNode(b *cell.Builder, keys []string, depth int) error {
	label := commonPrefixLen(keys, depth, e.bitLen)
	if err := b.AppendBits(uint64(label), labelLenBits); err != nil {
		return err
	}
	for i := 0; i < label; i++ {
		if err := b.AppendBitBool(bitOf(keys[0], depth+i)); err != nil {
			return err
		}
	}
	depth += label
	if depth == e.bitLen {
		// leaf
		return b.AppendReference(e.entries[keys[0]])
	}
	split := sort.Search(len(keys), func(i int) bool { return bitOf(keys[i], depth) })
	for _, child := range [][]string{keys[:split], keys[split:]} {
		inner := cell.NewBuilder()
		if err := e.writeNode(inner, child, depth+1); err != nil {
			return err
		}
		c, err := inner.ToCell()
		if err != nil {
			return err
		}
		if err := b.AppendReference(c); err != nil {
			return err
		}
	}
	return nil
}

// readNode parses a serialized subtree, restoring every full key reached
// under the given prefix.
func (e *Engine) readNode(s *cell.Slice, prefix []byte, depth int) error {
	label, err := s.GetNextInt(labelLenBits)
	if err != nil {
		return err
	}
	if depth+int(label) > e.bitLen {
		return fmt.Errorf("%w: label of %d bits at depth %d", ErrMalformedRoot, label, depth)
	}
	for i := 0; i < int(label); i++ {
		bit, err := s.GetNextBit()
		if err != nil {
			return err
		}
		if bit {
			prefix[(depth+i)>>3] |= 0x80 >> ((depth + i) & 7)
		} else {
			prefix[(depth+i)>>3] &^= 0x80 >> ((depth + i) & 7)
		}
	}
	depth += int(label)
	if depth == e.bitLen {
		value, err := s.CheckedDrainReference()
		if err != nil {
			return fmt.Errorf("%w: leaf without value: %v", ErrMalformedRoot, err)
		}
		e.entries[string(prefix)] = value
		return nil
	}
	for _, bit := range []bool{false, true} {
		ref, err := s.CheckedDrainReference()
		if err != nil {
			return fmt.Errorf("%w: fork without child: %v", ErrMalformedRoot, err)
		}
		if bit {
			prefix[depth>>3] |= 0x80 >> (depth & 7)
		} else {
			prefix[depth>>3] &^= 0x80 >> (depth & 7)
		}
		if err := e.readNode(cell.FromCell(ref), prefix, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// WriteRoot serializes the root node into the builder. Only valid for a
// non-empty engine.
func (e *Engine) WriteRoot(b *cell.Builder) error {
	if e.IsEmpty() {
		return fmt.Errorf("%w: cannot write root of an empty hashmap", ErrMalformedRoot)
	}
	return e.writeNode(b, e.sortedKeys(), 0)
}

// ReadRoot reads the root node from the slice, replacing the engine's
// content. Only valid for a non-empty serialized root.
func (e *Engine) ReadRoot(s *cell.Slice) error {
	e.entries = map[string]*cell.Cell{}
	prefix := make([]byte, (e.bitLen+7)/8)
	return e.readNode(s, prefix, 0)
}

// WriteTo serializes the maybe-empty form: a presence bit, followed by a
// reference to the root cell when non-empty.
func (e *Engine) WriteTo(b *cell.Builder) error {
	if e.IsEmpty() {
		return b.AppendBitBool(false)
	}
	if err := b.AppendBitBool(true); err != nil {
		return err
	}
	root := cell.NewBuilder()
	if err := e.WriteRoot(root); err != nil {
		return err
	}
	c, err := root.ToCell()
	if err != nil {
		return err
	}
	return b.AppendReference(c)
}

// ReadFrom deserializes the maybe-empty form.
func (e *Engine) ReadFrom(s *cell.Slice) error {
	present, err := s.GetNextBit()
	if err != nil {
		return err
	}
	if !present {
		e.entries = map[string]*cell.Cell{}
		return nil
	}
	root, err := s.CheckedDrainReference()
	if err != nil {
		return err
	}
	return e.ReadRoot(cell.FromCell(root))
}
