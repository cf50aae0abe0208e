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

// InRefValue stores its payload out of line: encoding moves the value into a
// fresh cell appended as a child reference, decoding drains exactly one
// reference and decodes its contents.
type InRefValue[T any, PT CodecPtr[T]] struct {
	Value T
}

func (v *InRefValue[T, PT]) WriteTo(b *cell.Builder) error {
	inner, err := ToCell(PT(&v.Value))
	if err != nil {
		return err
	}
	return b.AppendReference(inner)
}

func (v *InRefValue[T, PT]) ReadFrom(s *cell.Slice) error {
	ref, err := s.CheckedDrainReference()
	if err != nil {
		return err
	}
	return PT(&v.Value).ReadFrom(cell.FromCell(ref))
}

// Shared is a pass-through codec adapter for a shared, reference-counted
// payload. Serialization delegates to the pointee; deserialization decodes a
// fresh value and takes sole ownership of it. The adapter performs no
// deduplication and no cycle detection: two decodes of structurally
// identical cells yield independently owned values.
type Shared[T any, PT CodecPtr[T]] struct {
	ptr *T
}

// NewShared wraps an existing value for shared use.
func NewShared[T any, PT CodecPtr[T]](value *T) Shared[T, PT] {
	return Shared[T, PT]{ptr: value}
}

// Get returns the shared payload, or nil if nothing was decoded or wrapped.
func (v Shared[T, PT]) Get() *T {
	return v.ptr
}

func (v Shared[T, PT]) WriteTo(b *cell.Builder) error {
	return PT(v.ptr).WriteTo(b)
}

func (v *Shared[T, PT]) ReadFrom(s *cell.Slice) error {
	value := new(T)
	if err := PT(value).ReadFrom(s); err != nil {
		return err
	}
	v.ptr = value
	return nil
}
