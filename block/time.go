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
	"fmt"
	"time"

	"github.com/tonlabs/ton-labs-block/cell"
)

// Clock provides the current wall-clock time. It is an explicit dependency
// so that tests can substitute a fixed time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// UnixTime32 is a timestamp stored as 32-bit unix seconds.
type UnixTime32 uint32

// CurrentUnixTime32 reads the current time from the given clock.
func CurrentUnixTime32(clock Clock) UnixTime32 {
	return UnixTime32(clock.Now().Unix())
}

func (v UnixTime32) WriteTo(b *cell.Builder) error {
	return Uint32(v).WriteTo(b)
}

func (v *UnixTime32) ReadFrom(s *cell.Slice) error {
	return (*Uint32)(v).ReadFrom(s)
}

func (v UnixTime32) String() string {
	return fmt.Sprintf("%d", uint32(v))
}
