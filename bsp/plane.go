// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"

	"qbsp/math/vec"
)

// PlaneType classifies a splitting plane by its normal. Axial planes
// have a unit normal along the named axis, non axial planes lean closest
// to it.
type PlaneType byte

const (
	PlaneAxialX PlaneType = iota
	PlaneAxialY
	PlaneAxialZ
	PlaneNonAxialX
	PlaneNonAxialY
	PlaneNonAxialZ
)

type Plane struct {
	Normal vec.Vec3
	Dist   float32
	Type   PlaneType
}

// Axial reports whether the plane is perpendicular to a coordinate axis,
// in which case Type doubles as the axis index.
func (p *Plane) Axial() bool {
	return p.Type <= PlaneAxialZ
}

// Plane decodes plane i. A type field outside the six known categories
// fails with ErrInvalidEnum, there is no seventh category.
func (b *View) Plane(i int) (Plane, error) {
	var d planeData
	if err := b.readRecord(lumpPlanes, planeSize, i, &d); err != nil {
		return Plane{}, err
	}
	if d.Type < int32(PlaneAxialX) || d.Type > int32(PlaneNonAxialZ) {
		return Plane{}, errors.Wrapf(ErrInvalidEnum, "plane %d type %d", i, d.Type)
	}
	return Plane{
		Normal: vec.VFromA(d.Normal),
		Dist:   d.Distance,
		Type:   PlaneType(d.Type),
	}, nil
}
