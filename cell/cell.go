// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package cell provides the bounded bit-string storage primitive the block
// codec is built on: immutable cells holding up to MaxBits bits of data and
// up to MaxRefs references to child cells, a Builder for appending bits and
// references, and a Slice for draining them again. Cells are content
// addressed through a memoized representation hash.
package cell

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

const (
	// MaxBits is the maximum number of data bits a single cell can hold.
	MaxBits = 1023
	// MaxRefs is the maximum number of child references of a single cell.
	MaxRefs = 4
)

var (
	// ErrCellOverflow is returned when an append would exceed the capacity
	// of a builder, either in bits or in references.
	ErrCellOverflow = errors.New("cell overflow")
	// ErrCellUnderflow is returned when a read consumes more bits, bytes or
	// references than the slice has left.
	ErrCellUnderflow = errors.New("cell underflow")
)

// Type discriminates ordinary cells from exotic ones.
type Type byte

const (
	// Ordinary cells carry structured data produced by a builder.
	Ordinary Type = iota
	// PrunedBranch cells are proof stubs: the subtree they replace has been
	// elided and only its representation hash is retained.
	PrunedBranch
)

func (t Type) String() string {
	switch t {
	case Ordinary:
		return "ordinary"
	case PrunedBranch:
		return "pruned branch"
	}
	return "unknown"
}

// Cell is an immutable, bounded bit string with up to MaxRefs references to
// child cells. Once built, a cell never changes; multiple holders may share
// and read it without synchronization. The representation hash is computed
// once at construction time.
type Cell struct {
	kind Type
	bits int
	data []byte // ceil(bits/8) bytes, unused low bits zero
	refs []*Cell

	hash common.Hash
}

// New creates an ordinary cell from the given data bits and child
// references. The data slice is adopted, not copied; it must hold exactly
// ceil(bits/8) bytes and must not be modified afterwards.
func New(data []byte, bits int, refs []*Cell) (*Cell, error) {
	if bits < 0 || bits > MaxBits || len(refs) > MaxRefs {
		return nil, ErrCellOverflow
	}
	c := &Cell{kind: Ordinary, bits: bits, data: data, refs: refs}
	c.hash = c.computeHash()
	return c, nil
}

// NewPrunedBranch creates a proof stub standing in for a subtree with the
// given representation hash. The stub has no data bits and no references; its
// Hash reports the stored hash.
func NewPrunedBranch(hash common.Hash) *Cell {
	return &Cell{kind: PrunedBranch, hash: hash}
}

// Prune returns a pruned-branch stub replacing the given cell in a proof.
// The stub reports the same representation hash as the original.
func Prune(c *Cell) *Cell {
	return NewPrunedBranch(c.Hash())
}

// Kind returns the cell's type discriminator.
func (c *Cell) Kind() Type {
	return c.kind
}

// BitLength returns the number of data bits stored in the cell.
func (c *Cell) BitLength() int {
	return c.bits
}

// Data returns the cell's data bytes. The slice must not be modified.
func (c *Cell) Data() []byte {
	return c.data
}

// RefsCount returns the number of child references of the cell.
func (c *Cell) RefsCount() int {
	return len(c.refs)
}

// Ref returns the i-th child reference of the cell.
func (c *Cell) Ref(i int) *Cell {
	return c.refs[i]
}

// Hash returns the representation hash of the cell: a keccak256 digest over
// the cell's kind, reference count, bit length, data, and the hashes of all
// child cells, in this order. For pruned-branch stubs the stored hash of the
// elided subtree is returned instead.
func (c *Cell) Hash() common.Hash {
	return c.hash
}

func (c *Cell) computeHash() common.Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte{byte(c.kind), byte(len(c.refs))})
	hasher.Write([]byte{byte(c.bits >> 8), byte(c.bits)})
	hasher.Write(c.data)
	for _, ref := range c.refs {
		childHash := ref.Hash()
		hasher.Write(childHash[:])
	}
	var hash common.Hash
	hasher.Sum(hash[:0])
	return hash
}

// Equal reports whether two cells have the same representation hash.
func (c *Cell) Equal(other *Cell) bool {
	return c.Hash() == other.Hash()
}
