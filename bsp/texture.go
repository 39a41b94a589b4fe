// SPDX-License-Identifier: GPL-2.0-or-later
package bsp

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// MipTexture is the header of one mip mapped texture in the textures
// lump. Only the metadata is decoded, pixel data stays raw.
type MipTexture struct {
	Name   string
	Width  uint32
	Height uint32
	// Offset holds the four mip level offsets, relative to the start of
	// this texture's header.
	Offset [4]uint32
}

// NumTextures is the number of directory slots in the textures lump.
// Quake2 layouts have no textures lump and fail with ErrNoLump.
func (b *View) NumTextures() (int, error) {
	d, err := b.textureDir()
	if err != nil {
		return 0, err
	}
	return len(d), nil
}

func (b *View) textureDir() ([]int32, error) {
	if !b.present[lumpTextures] {
		return nil, errors.Wrapf(ErrNoLump, "%s in %s", lumpTextures, b.version)
	}
	data := b.lumpData(lumpTextures)
	if len(data) < 4 {
		if len(data) == 0 {
			// maps without any texture carry an empty lump
			return nil, nil
		}
		return nil, errors.Wrap(ErrEntryCorrupted, "textures directory header")
	}
	n := int(int32(binary.LittleEndian.Uint32(data)))
	if n < 0 || 4+4*n > len(data) {
		return nil, errors.Wrapf(ErrEntryCorrupted, "textures directory claims %d entries in %d bytes", n, len(data))
	}
	dir := make([]int32, n)
	for i := range dir {
		dir[i] = int32(binary.LittleEndian.Uint32(data[4+4*i:]))
	}
	return dir, nil
}

// Texture decodes the header of texture i. Directory slots holding -1
// mark a texture the map references but does not embed; those resolve
// to nil without error.
func (b *View) Texture(i int) (*MipTexture, error) {
	dir, err := b.textureDir()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(dir) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "texture %d of %d", i, len(dir))
	}
	off := dir[i]
	if off == -1 {
		return nil, nil
	}
	data := b.lumpData(lumpTextures)
	if off < 0 || int(off)+mipTexSize > len(data) {
		return nil, errors.Wrapf(ErrEntryCorrupted, "texture %d at offset %d", i, off)
	}
	var d mipTexData
	if err := binary.Read(bytes.NewReader(data[off:off+mipTexSize]), binary.LittleEndian, &d); err != nil {
		return nil, err
	}
	name := d.Name[:]
	if n := bytes.IndexByte(name, 0); n != -1 {
		name = name[:n]
	}
	return &MipTexture{
		Name:   string(name),
		Width:  d.Width,
		Height: d.Height,
		Offset: d.Offset,
	}, nil
}
