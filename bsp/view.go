// SPDX-License-Identifier: GPL-2.0-or-later

// Package bsp decodes Quake family .bsp map files into queryable views:
// the spatial partition tree, planes, faces, edges, models and the
// run length encoded potential visibility lists. The package only
// consumes an already loaded byte buffer; reading or mapping the file is
// the caller's job.
package bsp

import (
	"bytes"
	"encoding/binary"
	"log/slog"

	"github.com/pkg/errors"
)

// View is an immutable, validated window over the raw bytes of a bsp
// file. All record access decodes little endian fields on read; nothing
// is materialized eagerly and nothing is ever written, so a View may be
// shared between goroutines without coordination.
type View struct {
	data    []byte
	version Version
	dirs    [lumpCount]directory
	present [lumpCount]bool
}

// New validates data against the selected version and returns a View
// over it. It checks that the buffer holds a full header, that the
// version field is acceptable, and that every lump's byte range lies
// inside the buffer. Lump contents are not inspected here; cross
// references are checked lazily where they are used.
func New(data []byte, version Version) (*View, error) {
	if len(data) < version.headerSize() {
		return nil, errors.Wrapf(ErrHeaderCorrupted,
			"%d bytes, %s header needs %d", len(data), version, version.headerSize())
	}
	observed := binary.LittleEndian.Uint32(data[version.magicSize():])
	if !version.accepts(observed) {
		return nil, &VersionError{Observed: observed, Want: version}
	}
	b := NewUnchecked(data, version)
	for _, l := range version.lumps() {
		d := b.dirs[l]
		if d.Offset < 0 || d.Size < 0 || int64(d.Offset)+int64(d.Size) > int64(len(data)) {
			return nil, errors.Wrapf(ErrEntryCorrupted,
				"%s at offset %d size %d, file has %d bytes", l, d.Offset, d.Size, len(data))
		}
	}
	slog.Debug("bsp view", "version", version, "fileVersion", observed, "bytes", len(data))
	return b, nil
}

// NewUnchecked skips all construction time validation. The caller
// guarantees that data is a well formed file of the given version;
// record access still refuses to read outside the buffer, so a broken
// guarantee surfaces as access errors instead of faults.
func NewUnchecked(data []byte, version Version) *View {
	b := &View{data: data, version: version}
	off := version.magicSize() + 4
	for _, l := range version.lumps() {
		b.dirs[l] = directory{
			Offset: int32(binary.LittleEndian.Uint32(data[off:])),
			Size:   int32(binary.LittleEndian.Uint32(data[off+4:])),
		}
		b.present[l] = true
		off += 8
	}
	return b
}

func (b *View) Version() Version {
	return b.version
}

// FileVersion is the raw version field of the header.
func (b *View) FileVersion() uint32 {
	return binary.LittleEndian.Uint32(b.data[b.version.magicSize():])
}

// lumpData returns the byte window of a lump, or nil if the lump is not
// part of the selected version's layout.
func (b *View) lumpData(l lump) []byte {
	if !b.present[l] {
		return nil
	}
	d := b.dirs[l]
	return b.data[d.Offset : int(d.Offset)+int(d.Size)]
}

// count is the number of complete records of the given size in a lump.
// A trailing partial record is ignored.
func (b *View) count(l lump, size int) int {
	return int(b.dirs[l].Size) / size
}

// record returns the byte window of record i in a lump.
func (b *View) record(l lump, size, i int) ([]byte, error) {
	if !b.present[l] {
		return nil, errors.Wrapf(ErrNoLump, "%s in %s", l, b.version)
	}
	n := b.count(l, size)
	if i < 0 || i >= n {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "%s record %d of %d", l, i, n)
	}
	off := int(b.dirs[l].Offset) + i*size
	// Only relevant for unchecked views, New already pinned the range.
	if off < 0 || off+size > len(b.data) {
		return nil, errors.Wrapf(ErrEntryCorrupted, "%s record %d at %d", l, i, off)
	}
	return b.data[off : off+size], nil
}

// readRecord decodes record i of a lump into the little endian mirror
// struct out. The window is exactly sized, decoding cannot fail once the
// window exists.
func (b *View) readRecord(l lump, size, i int, out any) error {
	w, err := b.record(l, size, i)
	if err != nil {
		return err
	}
	return binary.Read(bytes.NewReader(w), binary.LittleEndian, out)
}

func (b *View) NumPlanes() int    { return b.count(lumpPlanes, planeSize) }
func (b *View) NumNodes() int     { return b.count(lumpNodes, nodeSize) }
func (b *View) NumLeafs() int     { return b.count(lumpLeafs, leafSize) }
func (b *View) NumFaces() int     { return b.count(lumpFaces, faceSize) }
func (b *View) NumEdges() int     { return b.count(lumpEdges, edgeSize) }
func (b *View) NumVertexes() int  { return b.count(lumpVertexes, vertexSize) }
func (b *View) NumModels() int    { return b.count(lumpModels, modelSize) }
func (b *View) NumTexInfos() int  { return b.count(lumpTexInfo, texInfoSize) }
func (b *View) NumClipNodes() int { return b.count(lumpClipNodes, clipNodeSize) }

// visLeafCount is the highest leaf index the visibility data can name.
// Leaf 0 is the shared solid leaf and not part of any visibility set.
func (b *View) visLeafCount() int {
	n := b.NumLeafs() - 1
	if n < 0 {
		return 0
	}
	return n
}

// Lighting returns the raw light map lump. Decoding light maps is out of
// scope here, faces carry offsets into this window.
func (b *View) Lighting() []byte {
	return b.lumpData(lumpLighting)
}
