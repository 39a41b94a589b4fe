// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

// Version selects one of the known map format variants. The variant is
// chosen by the caller up front; construction fails if the file's version
// field is not acceptable for the chosen variant.
type Version int

const (
	// Quake1 covers the id releases up to bsp version 0x1d.
	Quake1 Version = iota
	// Goldsrc is bsp version 0x1e, same lump layout as Quake1.
	Goldsrc
	// Quake2 covers versions 0x1f through 0x26 and carries a 4 byte magic.
	Quake2
)

func (v Version) String() string {
	switch v {
	case Quake1:
		return "quake1"
	case Goldsrc:
		return "goldsrc"
	case Quake2:
		return "quake2"
	}
	return "unknown"
}

// accepts reports whether a file with the given version field may be
// parsed under this variant. The boundaries are exclusive per variant:
// 0x1d is Quake1 only, 0x1e is Goldsrc only, 0x1f-0x26 is Quake2 only.
func (v Version) accepts(version uint32) bool {
	switch v {
	case Quake1:
		return version <= 0x1d
	case Goldsrc:
		return version == 0x1e
	case Quake2:
		return version > 0x1e && version <= 0x26
	}
	return false
}

var quake1Lumps = []lump{
	lumpEntities, lumpPlanes, lumpTextures, lumpVertexes, lumpVisibility,
	lumpNodes, lumpTexInfo, lumpFaces, lumpLighting, lumpClipNodes,
	lumpLeafs, lumpMarkSurfaces, lumpEdges, lumpSurfaceEdges, lumpModels,
}

var quake2Lumps = []lump{
	lumpEntities, lumpPlanes, lumpVertexes, lumpVisibility, lumpNodes,
	lumpTexInfo, lumpFaces, lumpLighting, lumpLeafs, lumpMarkSurfaces,
	lumpLeafBrushes, lumpEdges, lumpSurfaceEdges, lumpModels, lumpBrushes,
	lumpBrushSides, lumpPop, lumpAreas, lumpAreaPortals,
}

// lumps returns the header's lump table order for this variant.
func (v Version) lumps() []lump {
	if v == Quake2 {
		return quake2Lumps
	}
	return quake1Lumps
}

// magicSize is the number of bytes before the version field.
func (v Version) magicSize() int {
	if v == Quake2 {
		return 4
	}
	return 0
}

// headerSize is magic + version + one directory entry per lump.
func (v Version) headerSize() int {
	return v.magicSize() + 4 + 8*len(v.lumps())
}
