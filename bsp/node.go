// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"
)

// LeafType is the contents classification of a leaf. The values match
// the negative contents constants of the file format.
type LeafType int32

const (
	LeafOrdinary LeafType = -1
	LeafInvalid  LeafType = -2 // solid, never surfaced by the navigator
	LeafWater    LeafType = -3
	LeafSlime    LeafType = -4
	LeafLava     LeafType = -5
	LeafSky      LeafType = -6
)

func (t LeafType) String() string {
	switch t {
	case LeafOrdinary:
		return "ordinary"
	case LeafInvalid:
		return "invalid"
	case LeafWater:
		return "water"
	case LeafSlime:
		return "slime"
	case LeafLava:
		return "lava"
	case LeafSky:
		return "sky"
	}
	return "unknown"
}

// Bounds is an integer bounding box as stored on nodes and leafs.
type Bounds struct {
	Min [3]int16
	Max [3]int16
}

func boundsFromBox(box [6]int16) Bounds {
	return Bounds{
		Min: [3]int16{box[0], box[1], box[2]},
		Max: [3]int16{box[3], box[4], box[5]},
	}
}

// Node is either a Branch or a Leaf of the partition tree.
type Node interface {
	node()
}

// Branch is an internal node of the partition tree. It is a plain index
// handle, copying it is free and does not touch the buffer.
type Branch struct {
	bsp   *View
	index int
	data  nodeData
}

// Leaf is a terminal convex region of the partition tree.
type Leaf struct {
	bsp   *View
	index int
	data  leafData
}

func (Branch) node() {}
func (Leaf) node()   {}

// Branch decodes internal node i.
func (b *View) Branch(i int) (Branch, error) {
	n := Branch{bsp: b, index: i}
	if err := b.readRecord(lumpNodes, nodeSize, i, &n.data); err != nil {
		return Branch{}, err
	}
	return n, nil
}

// Leaf decodes leaf i. The contents field is not inspected here, invalid
// leafs are filtered where signed ids are resolved.
func (b *View) Leaf(i int) (Leaf, error) {
	l := Leaf{bsp: b, index: i}
	if err := b.readRecord(lumpLeafs, leafSize, i, &l.data); err != nil {
		return Leaf{}, err
	}
	return l, nil
}

// node resolves a signed child id. Ids >= 0 name the branch at that
// index, negative ids name the leaf at -id-1. A leaf whose contents
// decode to LeafInvalid is a format artifact, not real space; it
// resolves to nil without error.
func (b *View) node(id int32) (Node, error) {
	if id >= 0 {
		n, err := b.Branch(int(id))
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	l, err := b.visibleLeaf(int(-id - 1))
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}
	return *l, nil
}

// visibleLeaf is leaf i, or nil if it is an invalid leaf.
func (b *View) visibleLeaf(i int) (*Leaf, error) {
	l, err := b.Leaf(i)
	if err != nil {
		return nil, err
	}
	t, err := l.Type()
	if err != nil {
		return nil, err
	}
	if t == LeafInvalid {
		return nil, nil
	}
	return &l, nil
}

func (n Branch) Index() int {
	return n.index
}

// Plane is the splitting plane of the branch.
func (n Branch) Plane() (Plane, error) {
	p, err := n.bsp.Plane(int(n.data.PlaneID))
	return p, errors.Wrapf(err, "node %d", n.index)
}

// Front is the child on the positive side of the plane, nil if the
// child id resolves to no node.
func (n Branch) Front() (Node, error) {
	return n.bsp.node(int32(n.data.Children[0]))
}

// Back is the child on the negative side of the plane.
func (n Branch) Back() (Node, error) {
	return n.bsp.node(int32(n.data.Children[1]))
}

func (n Branch) Bounds() Bounds {
	return boundsFromBox(n.data.Box)
}

// Faces are the faces split by this branch's plane.
func (n Branch) Faces() ([]Face, error) {
	first := int(n.data.FirstSurface)
	count := int(n.data.SurfaceCount)
	faces := make([]Face, 0, count)
	for i := first; i < first+count; i++ {
		f, err := n.bsp.Face(i)
		if err != nil {
			return nil, errors.Wrapf(err, "node %d", n.index)
		}
		faces = append(faces, f)
	}
	return faces, nil
}

func (l Leaf) Index() int {
	return l.index
}

// Type is the contents classification of the leaf. A contents value
// outside the known range fails with ErrInvalidEnum.
func (l Leaf) Type() (LeafType, error) {
	t := LeafType(l.data.Type)
	if t > LeafOrdinary || t < LeafSky {
		return 0, errors.Wrapf(ErrInvalidEnum, "leaf %d contents %d", l.index, l.data.Type)
	}
	return t, nil
}

func (l Leaf) Bounds() Bounds {
	return boundsFromBox(l.data.Box)
}

// VisIndex is the byte offset of this leaf's run in the visibility
// lump, negative when the leaf sees every leaf of the map.
func (l Leaf) VisIndex() int32 {
	return l.data.VisOfs
}

// AmbientSound returns the ambient sound levels: water, sky, slime, lava.
func (l Leaf) AmbientSound() [4]byte {
	return l.data.Ambients
}

// Faces resolves the leaf's marksurface range into faces.
func (l Leaf) Faces() ([]Face, error) {
	first := int(l.data.FirstMarkSurface)
	count := int(l.data.MarkSurfaceCount)
	faces := make([]Face, 0, count)
	for i := first; i < first+count; i++ {
		var ref uint16
		if err := l.bsp.readRecord(lumpMarkSurfaces, markSurfaceSize, i, &ref); err != nil {
			return nil, errors.Wrapf(err, "leaf %d", l.index)
		}
		f, err := l.bsp.Face(int(ref))
		if err != nil {
			return nil, errors.Wrapf(err, "leaf %d marksurface %d", l.index, i)
		}
		faces = append(faces, f)
	}
	return faces, nil
}
