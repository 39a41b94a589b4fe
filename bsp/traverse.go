// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"

	"qbsp/math/vec"
)

// Traverse descends the partition tree from this branch to the leaf
// containing p. At each branch the point goes to the front child when
// its signed distance to the splitting plane is >= 0, to the back child
// otherwise. It returns nil when the containing child resolves to no
// node. The tree is acyclic by construction, but a corrupt map can
// encode a cycle, so descent is bounded by the total branch count and
// fails with ErrTraverseDepth past it.
func (n Branch) Traverse(p vec.Vec3) (*Leaf, error) {
	cur := n
	for steps := n.bsp.NumNodes(); steps > 0; steps-- {
		plane, err := cur.Plane()
		if err != nil {
			return nil, err
		}
		d := vec.Dot(p, plane.Normal) - plane.Dist
		var child Node
		if d >= 0 {
			child, err = cur.Front()
		} else {
			child, err = cur.Back()
		}
		if err != nil {
			return nil, err
		}
		switch c := child.(type) {
		case Branch:
			cur = c
		case Leaf:
			return &c, nil
		case nil:
			return nil, nil
		}
	}
	return nil, errors.Wrapf(ErrTraverseDepth, "from node %d after %d steps", n.index, n.bsp.NumNodes())
}

// PointInLeaf classifies p against the model's primary hull and returns
// the containing leaf, or nil if the tree resolves to no node there.
func (m Model) PointInLeaf(p vec.Vec3) (*Leaf, error) {
	root, err := m.Root()
	if err != nil {
		return nil, err
	}
	switch r := root.(type) {
	case Branch:
		return r.Traverse(p)
	case Leaf:
		return &r, nil
	}
	return nil, nil
}
