// SPDX-License-Identifier: GPL-2.0-or-later
package bsp

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// fixture holds raw lump contents keyed by lump; build assembles them
// into a file image with a valid header for the given version.
type fixture map[lump][]byte

func (f fixture) build(t *testing.T, v Version, fileVersion uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	if v == Quake2 {
		buf.WriteString("IBSP")
	}
	if err := binary.Write(&buf, binary.LittleEndian, fileVersion); err != nil {
		t.Fatalf("encode version: %v", err)
	}
	off := v.headerSize()
	for _, l := range v.lumps() {
		d := directory{Offset: int32(off), Size: int32(len(f[l]))}
		if err := binary.Write(&buf, binary.LittleEndian, d); err != nil {
			t.Fatalf("encode directory: %v", err)
		}
		off += len(f[l])
	}
	for _, l := range v.lumps() {
		buf.Write(f[l])
	}
	return buf.Bytes()
}

func records(t *testing.T, rs ...any) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, r := range rs {
		if err := binary.Write(&buf, binary.LittleEndian, r); err != nil {
			t.Fatalf("encode record: %v", err)
		}
	}
	return buf.Bytes()
}

// testFixture is a small but complete Quake1 map.
//
// Node tree (hull 0 of model 0):
//
//	node 0: x = 0 plane; front -> node 1, back -> leaf 1
//	node 1: y = 0 plane; front -> leaf 4, back -> leaf 2
//	node 2: both children are invalid leafs (0 and 5)
//	node 3: both children are node 3, a deliberate cycle
//
// Leafs: 0 and 5 invalid, 2 carries the golden bounding box, 6 points
// its visibility run at a truncated skip count.
func testFixture(t *testing.T) fixture {
	t.Helper()
	planes := records(t,
		planeData{Normal: [3]float32{1, 0, 0}, Distance: 0, Type: 0},
		planeData{Normal: [3]float32{0, 1, 0}, Distance: 0, Type: 1},
		planeData{Normal: [3]float32{0, 0, 1}, Distance: 0, Type: 99}, // only read by the enum test
	)
	nodes := records(t,
		nodeData{PlaneID: 0, Children: [2]int16{1, -2}, FirstSurface: 0, SurfaceCount: 2},
		nodeData{PlaneID: 1, Children: [2]int16{-5, -3}},
		nodeData{PlaneID: 0, Children: [2]int16{-1, -6}},
		nodeData{PlaneID: 0, Children: [2]int16{3, 3}},
	)
	leafs := records(t,
		leafData{Type: -2, VisOfs: -1},
		leafData{Type: -1, VisOfs: 0},
		leafData{
			Type: -1, VisOfs: -1,
			Box:              [6]int16{544, 536, 0, 672, 800, 218},
			FirstMarkSurface: 0, MarkSurfaceCount: 2,
			Ambients: [4]byte{12, 0, 0, 0},
		},
		leafData{Type: -3, VisOfs: 1},
		leafData{Type: -6, VisOfs: 3},
		leafData{Type: -2, VisOfs: 0},
		leafData{Type: -1, VisOfs: 4},
	)
	vertexes := records(t,
		[3]float32{0, 0, 0},
		[3]float32{1, 0, 0},
		[3]float32{1, 1, 0},
		[3]float32{0, 1, 0},
	)
	edges := records(t,
		edgeData{}, // edge 0 is never used
		edgeData{0, 1},
		edgeData{1, 2},
		edgeData{2, 3},
		edgeData{3, 0},
		edgeData{99, 0}, // dangling vertex, only read by the range test
	)
	faces := records(t,
		faceData{
			PlaneID: 0, Side: 0, ListEdgeID: 0, ListEdgeNumber: 4,
			TexInfoID: 0, LightStyle: [4]uint8{0, 0xff, 0xff, 0xff}, LightMap: 0,
		},
		faceData{
			PlaneID: 0, Side: 1, ListEdgeID: 4, ListEdgeNumber: 1,
			TexInfoID: 0, LightStyle: [4]uint8{0xff, 0xff, 0xff, 0xff}, LightMap: -1,
		},
		faceData{PlaneID: 40}, // dangling plane, only read by the range test
	)
	texinfo := records(t, texInfoData{
		VectorS: [3]float32{1, 0, 0}, DistS: 8,
		VectorT: [3]float32{0, 1, 0}, DistT: -8,
		TextureID: 0, Animated: 1,
	})
	var wall [16]byte
	copy(wall[:], "wall")
	textures := records(t,
		int32(2), int32(12), int32(-1),
		mipTexData{Name: wall, Width: 64, Height: 64, Offset: [4]uint32{40, 0, 0, 0}},
	)
	clipnodes := records(t,
		clipNodeData{PlaneID: 0, Children: [2]int16{1, -2}},
		clipNodeData{PlaneID: 1, Children: [2]int16{-1, -3}},
	)
	models := records(t, modelData{
		BoundingBox:  [6]float32{-64, -64, -64, 1024, 1024, 512},
		HeadNode:     [4]int32{0, 0, 0, 0},
		VisLeafCount: 6,
		FirstFace:    0, FaceCount: 2,
	})
	entities := []byte("{\n\"classname\" \"worldspawn\"\n\"wad\" \"base.wad\"\n}\n" +
		"{\n\"classname\" \"info_player_start\"\n\"origin\" \"544 600 32\"\n}\n\x00")

	return fixture{
		lumpEntities:     entities,
		lumpPlanes:       planes,
		lumpTextures:     textures,
		lumpVertexes:     vertexes,
		lumpVisibility:   []byte{0x14, 0x00, 0x01, 0x24, 0x00},
		lumpNodes:        nodes,
		lumpTexInfo:      texinfo,
		lumpFaces:        faces,
		lumpLighting:     []byte{0xff, 0x80, 0x40},
		lumpClipNodes:    clipnodes,
		lumpLeafs:        leafs,
		lumpMarkSurfaces: records(t, uint16(0), uint16(1)),
		lumpEdges:        edges,
		lumpSurfaceEdges: records(t, int16(1), int16(2), int16(3), int16(4), int16(-1)),
		lumpModels:       models,
	}
}

func testView(t *testing.T) *View {
	t.Helper()
	b, err := New(testFixture(t).build(t, Quake1, 0x1d), Quake1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}
