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
	"errors"
	"fmt"
)

var (
	// ErrInvalidArg is returned when a constructor input or a structural
	// precondition is violated, for instance a value exceeding its declared
	// maximum, a non-empty destination builder, or a partially consumed
	// source slice.
	ErrInvalidArg = errors.New("invalid argument")

	// ErrRangeCheck is returned when an encoded length prefix would exceed
	// the nominal capacity of the type being encoded or decoded.
	ErrRangeCheck = errors.New("range check failed")
)

// PrunedCellAccessError reports an attempt to structurally decode a cell
// that a proof replaced by a hash-only stub. It carries the name of the type
// the caller expected to decode.
type PrunedCellAccessError struct {
	TypeName string
}

func (e *PrunedCellAccessError) Error() string {
	return fmt.Sprintf("attempt to access pruned cell data as %s", e.TypeName)
}
