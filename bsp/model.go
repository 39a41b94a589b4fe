// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"

	"qbsp/math/vec"
)

const MaxMapHulls = 4

// Model is a self contained subtree of the map plus bounding geometry.
// Model 0 is the map itself, further models are doors, platforms and
// other movers.
type Model struct {
	bsp   *View
	index int
	data  modelData
}

// Model decodes model i.
func (b *View) Model(i int) (Model, error) {
	m := Model{bsp: b, index: i}
	if err := b.readRecord(lumpModels, modelSize, i, &m.data); err != nil {
		return Model{}, err
	}
	return m, nil
}

// MapModel is model 0, the map itself.
func (b *View) MapModel() (Model, error) {
	return b.Model(0)
}

func (m Model) Index() int {
	return m.index
}

// Bounds returns the float bounding box of the model.
func (m Model) Bounds() (mins, maxs vec.Vec3) {
	bb := m.data.BoundingBox
	return vec.Vec3{bb[0], bb[1], bb[2]}, vec.Vec3{bb[3], bb[4], bb[5]}
}

func (m Model) Origin() vec.Vec3 {
	return vec.VFromA(m.data.Origin)
}

// VisLeafCount is the model's leaf count, not including the solid leaf 0.
func (m Model) VisLeafCount() int {
	return int(m.data.VisLeafCount)
}

// HeadNode is the raw root id of the given hull. Hull 0 indexes the
// node tree, hulls 1 to 3 index the clipnode tree.
func (m Model) HeadNode(hull int) (int32, error) {
	if hull < 0 || hull >= MaxMapHulls {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "hull %d of %d", hull, MaxMapHulls)
	}
	return m.data.HeadNode[hull], nil
}

// Root resolves hull 0, the render and point query tree. It is nil for
// the degenerate case of a model rooted in an invalid leaf.
func (m Model) Root() (Node, error) {
	return m.bsp.node(m.data.HeadNode[0])
}

// Faces is the model's face range.
func (m Model) Faces() ([]Face, error) {
	first := int(m.data.FirstFace)
	count := int(m.data.FaceCount)
	faces := make([]Face, 0, count)
	for i := first; i < first+count; i++ {
		f, err := m.bsp.Face(i)
		if err != nil {
			return nil, errors.Wrapf(err, "model %d", m.index)
		}
		faces = append(faces, f)
	}
	return faces, nil
}

// clipNode decodes clipnode i. Quake2 layouts have no clipnode lump and
// fail with ErrNoLump.
func (b *View) clipNode(i int) (clipNodeData, error) {
	var d clipNodeData
	err := b.readRecord(lumpClipNodes, clipNodeSize, i, &d)
	return d, err
}

// HullPointContents walks the clipnode tree of the given hull (1 to 3)
// and returns the contents classification at p. The walk is bounded by
// the clipnode count; a corrupt map that cycles fails with
// ErrTraverseDepth instead of hanging.
func (m Model) HullPointContents(hull int, p vec.Vec3) (LeafType, error) {
	if hull < 1 || hull >= MaxMapHulls {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "hull %d, clip hulls are 1 to %d", hull, MaxMapHulls-1)
	}
	num := m.data.HeadNode[hull]
	for steps := m.bsp.NumClipNodes(); steps >= 0; steps-- {
		if num < 0 {
			c := LeafType(num)
			if c > LeafOrdinary || c < LeafSky {
				return 0, errors.Wrapf(ErrInvalidEnum, "hull %d contents %d", hull, num)
			}
			return c, nil
		}
		node, err := m.bsp.clipNode(int(num))
		if err != nil {
			return 0, errors.Wrapf(err, "hull %d", hull)
		}
		plane, err := m.bsp.Plane(int(node.PlaneID))
		if err != nil {
			return 0, errors.Wrapf(err, "hull %d clipnode %d", hull, num)
		}
		d := func() float32 {
			if plane.Axial() {
				return p[int(plane.Type)] - plane.Dist
			}
			return vec.DoublePrecDot(plane.Normal, p) - plane.Dist
		}()
		if d < 0 {
			num = int32(node.Children[1])
		} else {
			num = int32(node.Children[0])
		}
	}
	return 0, errors.Wrapf(ErrTraverseDepth, "hull %d after %d clipnodes", hull, m.bsp.NumClipNodes())
}
