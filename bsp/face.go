// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"

	"qbsp/math/vec"
)

// Face is a polygonal surface of the map.
type Face struct {
	bsp   *View
	index int
	data  faceData
}

// Edge is a face edge, resolved to its two end points.
type Edge struct {
	Start vec.Vec3
	End   vec.Vec3
}

// Face decodes face i.
func (b *View) Face(i int) (Face, error) {
	f := Face{bsp: b, index: i}
	if err := b.readRecord(lumpFaces, faceSize, i, &f.data); err != nil {
		return Face{}, err
	}
	return f, nil
}

// Vertex decodes vertex i.
func (b *View) Vertex(i int) (vec.Vec3, error) {
	var v [3]float32
	if err := b.readRecord(lumpVertexes, vertexSize, i, &v); err != nil {
		return vec.Vec3{}, err
	}
	return vec.VFromA(v), nil
}

// Edge resolves edge i to its start and end points through the vertex
// lump.
func (b *View) Edge(i int) (Edge, error) {
	var d edgeData
	if err := b.readRecord(lumpEdges, edgeSize, i, &d); err != nil {
		return Edge{}, err
	}
	start, err := b.Vertex(int(d.Vertex0))
	if err != nil {
		return Edge{}, errors.Wrapf(err, "edge %d start", i)
	}
	end, err := b.Vertex(int(d.Vertex1))
	if err != nil {
		return Edge{}, errors.Wrapf(err, "edge %d end", i)
	}
	return Edge{Start: start, End: end}, nil
}

func (f Face) Index() int {
	return f.index
}

// Plane is the plane the face lies in, oriented to the face's winding:
// a nonzero side flag flips normal and distance.
func (f Face) Plane() (Plane, error) {
	p, err := f.bsp.Plane(int(f.data.PlaneID))
	if err != nil {
		return Plane{}, errors.Wrapf(err, "face %d", f.index)
	}
	if f.data.Side != 0 {
		p.Normal = vec.Inverse(p.Normal)
		p.Dist = -p.Dist
	}
	return p, nil
}

// Edges resolves the face's surfedge range. A negative surfedge names
// the edge at its absolute value walked end to start, so consecutive
// edges chain into the face's winding.
func (f Face) Edges() ([]Edge, error) {
	first := int(f.data.ListEdgeID)
	count := int(f.data.ListEdgeNumber)
	edges := make([]Edge, 0, count)
	for i := first; i < first+count; i++ {
		var ref int16
		if err := f.bsp.readRecord(lumpSurfaceEdges, surfaceEdgeSize, i, &ref); err != nil {
			return nil, errors.Wrapf(err, "face %d", f.index)
		}
		id := int(ref)
		flip := false
		if id < 0 {
			id = -id
			flip = true
		}
		e, err := f.bsp.Edge(id)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d surfedge %d", f.index, i)
		}
		if flip {
			e.Start, e.End = e.End, e.Start
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// TexInfo is the texture projection of the face.
func (f Face) TexInfo() (TexInfo, error) {
	t, err := f.bsp.TexInfo(int(f.data.TexInfoID))
	return t, errors.Wrapf(err, "face %d", f.index)
}

// LightStyles returns the four light style slots of the face, 0xff
// marks an unused slot.
func (f Face) LightStyles() [4]byte {
	return f.data.LightStyle
}

// LightMapOfs is the byte offset of the face's samples in the lighting
// lump, -1 when the face is unlit.
func (f Face) LightMapOfs() int32 {
	return f.data.LightMap
}
