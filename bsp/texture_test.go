// SPDX-License-Identifier: GPL-2.0-or-later
package bsp

import (
	"testing"

	"github.com/pkg/errors"
)

func TestTextures(t *testing.T) {
	b := testView(t)
	n, err := b.NumTextures()
	if err != nil {
		t.Fatalf("NumTextures: %v", err)
	}
	if n != 2 {
		t.Fatalf("NumTextures = %d, want 2", n)
	}
	tex, err := b.Texture(0)
	if err != nil {
		t.Fatalf("Texture(0): %v", err)
	}
	if tex == nil {
		t.Fatal("texture 0 is missing")
	}
	if tex.Name != "wall" || tex.Width != 64 || tex.Height != 64 {
		t.Errorf("texture 0 = %+v", tex)
	}
	if tex.Offset[0] != 40 {
		t.Errorf("mip level 0 offset = %d, want 40", tex.Offset[0])
	}
	// slot 1 holds -1: referenced but not embedded
	missing, err := b.Texture(1)
	if err != nil {
		t.Fatalf("Texture(1): %v", err)
	}
	if missing != nil {
		t.Errorf("missing texture slot resolved to %+v", missing)
	}
	if _, err := b.Texture(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Texture(2): got %v, want ErrIndexOutOfRange", err)
	}
}

func TestTexturesCorruptDirectory(t *testing.T) {
	f := testFixture(t)
	f[lumpTextures] = records(t, int32(1000))
	b, err := New(f.build(t, Quake1, 0x1d), Quake1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := b.NumTextures(); !errors.Is(err, ErrEntryCorrupted) {
		t.Errorf("oversized directory: got %v, want ErrEntryCorrupted", err)
	}

	f[lumpTextures] = nil
	b, err = New(f.build(t, Quake1, 0x1d), Quake1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n, err := b.NumTextures()
	if err != nil || n != 0 {
		t.Errorf("empty textures lump: %d, %v", n, err)
	}
}
