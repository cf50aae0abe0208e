// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package hashmap

import (
	"fmt"
	"sort"

	"github.com/tonlabs/ton-labs-block/cell"
)

// Combine merges two serialized augmentation values into their bottom-up
// combination. Typed callers derive it from their augmentation type; the
// engine itself treats extras as opaque.
type Combine func(acc, other *cell.Slice) (*cell.Builder, error)

type augEntry struct {
	value *cell.Cell
	extra *cell.Cell
}

// AugEngine is the augmented variant of Engine: every entry carries an
// extra value, and serialized nodes are annotated with the combination of
// the extras of all leaves below them. Augmentations are folded with the
// Combine function the engine was created with.
//
// Like Engine this is a reference implementation: node annotations are
// recomputed on demand rather than maintained incrementally.
type AugEngine struct {
	bitLen  int
	combine Combine
	entries map[string]augEntry
}

// NewAug creates an empty augmented engine for keys of the given fixed bit
// length, folding extras with the given combine function.
func NewAug(bitLen int, combine Combine) *AugEngine {
	return &AugEngine{bitLen: bitLen, combine: combine, entries: map[string]augEntry{}}
}

// BitLen returns the fixed key bit length.
func (e *AugEngine) BitLen() int {
	return e.bitLen
}

// IsEmpty reports whether the engine holds no entries.
func (e *AugEngine) IsEmpty() bool {
	return len(e.entries) == 0
}

// Len returns the number of entries.
func (e *AugEngine) Len() (int, error) {
	return len(e.entries), nil
}

// Get returns the value and extra stored under the key as fresh slices, or
// nils if the key is absent.
func (e *AugEngine) Get(key *cell.Slice) (value, extra *cell.Slice, err error) {
	k, err := packKey(key, e.bitLen)
	if err != nil {
		return nil, nil, err
	}
	entry, ok := e.entries[k]
	if !ok {
		return nil, nil, nil
	}
	return cell.FromCell(entry.value), cell.FromCell(entry.extra), nil
}

// Set stores the value and extra under the key, replacing any previous
// entry.
func (e *AugEngine) Set(key, value, extra *cell.Slice) error {
	k, err := packKey(key, e.bitLen)
	if err != nil {
		return err
	}
	valueCell, err := sliceToCell(value)
	if err != nil {
		return err
	}
	extraCell, err := sliceToCell(extra)
	if err != nil {
		return err
	}
	e.entries[k] = augEntry{value: valueCell, extra: extraCell}
	return nil
}

// Remove deletes the entry under the key, if present.
func (e *AugEngine) Remove(key *cell.Slice) error {
	k, err := packKey(key, e.bitLen)
	if err != nil {
		return err
	}
	delete(e.entries, k)
	return nil
}

func (e *AugEngine) sortedKeys() []string {
	keys := make([]string, 0, len(e.entries))
	for k := range e.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Iterate visits all entries in canonical key order. The callback returns
// whether to continue; the result reports whether the traversal ran to
// completion.
func (e *AugEngine) Iterate(fn func(key, value, extra *cell.Slice) (bool, error)) (bool, error) {
	for _, k := range e.sortedKeys() {
		ks, err := keySlice(k, e.bitLen)
		if err != nil {
			return false, err
		}
		entry := e.entries[k]
		proceed, err := fn(ks, cell.FromCell(entry.value), cell.FromCell(entry.extra))
		if err != nil {
			return false, err
		}
		if !proceed {
			return false, nil
		}
	}
	return true, nil
}

// foldExtras combines the extras of the given keys, left to right.
func (e *AugEngine) foldExtras(keys []string) (*cell.Cell, error) {
	acc := e.entries[keys[0]].extra
	for _, k := range keys[1:] {
		combined, err := e.combine(cell.FromCell(acc), cell.FromCell(e.entries[k].extra))
		if err != nil {
			return nil, err
		}
		if acc, err = combined.ToCell(); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// RootExtra returns the combined extra over all entries, or nil for an
// empty engine.
func (e *AugEngine) RootExtra() (*cell.Slice, error) {
	if e.IsEmpty() {
		return nil, nil
	}
	extra, err := e.foldExtras(e.sortedKeys())
	if err != nil {
		return nil, err
	}
	return cell.FromCell(extra), nil
}

// writeNode serializes the subtree covering the given sorted keys: the
// label, then for a leaf references to the value and extra cells, for a
// fork references to both child subtrees and the subtree's combined extra.
func (e *AugEngine) writeNode(b *cell.Builder, keys []string, depth int) error {
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
		entry := e.entries[keys[0]]
		if err := b.AppendReference(entry.value); err != nil {
			return err
		}
		return b.AppendReference(entry.extra)
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
	extra, err := e.foldExtras(keys)
	if err != nil {
		return err
	}
	return b.AppendReference(extra)
}

// readNode parses a serialized augmented subtree.
func (e *AugEngine) readNode(s *cell.Slice, prefix []byte, depth int) error {
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
		extra, err := s.CheckedDrainReference()
		if err != nil {
			return fmt.Errorf("%w: leaf without extra: %v", ErrMalformedRoot, err)
		}
		e.entries[string(prefix)] = augEntry{value: value, extra: extra}
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
	// the fork's own extra reference is annotation only, already implied by
	// the leaves below it
	if _, err := s.CheckedDrainReference(); err != nil {
		return fmt.Errorf("%w: fork without extra: %v", ErrMalformedRoot, err)
	}
	return nil
}

// WriteRoot serializes the root node into the builder. Only valid for a
// non-empty engine.
func (e *AugEngine) WriteRoot(b *cell.Builder) error {
	if e.IsEmpty() {
		return fmt.Errorf("%w: cannot write root of an empty hashmap", ErrMalformedRoot)
	}
	return e.writeNode(b, e.sortedKeys(), 0)
}

// ReadRoot reads the root node from the slice, replacing the engine's
// content. Only valid for a non-empty serialized root.
func (e *AugEngine) ReadRoot(s *cell.Slice) error {
	e.entries = map[string]augEntry{}
	prefix := make([]byte, (e.bitLen+7)/8)
	return e.readNode(s, prefix, 0)
}

// WriteTo serializes the maybe-empty form: a presence bit, followed by a
// reference to the root cell when non-empty.
func (e *AugEngine) WriteTo(b *cell.Builder) error {
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
func (e *AugEngine) ReadFrom(s *cell.Slice) error {
	present, err := s.GetNextBit()
	if err != nil {
		return err
	}
	if !present {
		e.entries = map[string]augEntry{}
		return nil
	}
	root, err := s.CheckedDrainReference()
	if err != nil {
		return err
	}
	return e.ReadRoot(cell.FromCell(root))
}
