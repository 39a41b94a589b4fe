// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"qbsp/math/vec"
)

// TexCoord is one texture space axis: projection vector plus offset.
type TexCoord struct {
	Pos    vec.Vec3
	Offset float32
}

// TexInfo maps a face into texture space.
type TexInfo struct {
	S         TexCoord
	T         TexCoord
	TextureID uint32
	Animated  bool
}

// TexInfo decodes texinfo i.
func (b *View) TexInfo(i int) (TexInfo, error) {
	var d texInfoData
	if err := b.readRecord(lumpTexInfo, texInfoSize, i, &d); err != nil {
		return TexInfo{}, err
	}
	return TexInfo{
		S:         TexCoord{Pos: vec.VFromA(d.VectorS), Offset: d.DistS},
		T:         TexCoord{Pos: vec.VFromA(d.VectorT), Offset: d.DistT},
		TextureID: d.TextureID,
		Animated:  d.Animated != 0,
	}, nil
}
