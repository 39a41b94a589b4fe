// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"fmt"

	"github.com/pkg/errors"
)

// Construction and access errors. Callers match with errors.Is; the
// wrapped messages carry the lump name, index or raw value involved.
var (
	// ErrHeaderCorrupted means the buffer is shorter than the header of
	// the selected version.
	ErrHeaderCorrupted = errors.New("header corrupted")
	// ErrEntryCorrupted means a lump's byte range escapes the buffer.
	ErrEntryCorrupted = errors.New("lump entry corrupted")
	// ErrInvalidEnum means a plane type, leaf type or contents value is
	// outside the known categories.
	ErrInvalidEnum = errors.New("invalid enum value")
	// ErrIndexOutOfRange means a cross reference points outside its
	// target lump.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrVisOverrun means the visibility decoder ran past the end of the
	// visibility lump.
	ErrVisOverrun = errors.New("visibility data overrun")
	// ErrTraverseDepth means a tree walk exceeded the node count, which
	// only happens when a corrupt map encodes a cycle.
	ErrTraverseDepth = errors.New("traversal depth exceeded")
	// ErrNoLump means the requested lump does not exist in the selected
	// version's layout.
	ErrNoLump = errors.New("lump not present in this version")
)

// VersionError is returned when the selected Version rejects the version
// field found in the file.
type VersionError struct {
	Observed uint32
	Want     Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("version mismatch: file has %#x, want %s", e.Observed, e.Want)
}
