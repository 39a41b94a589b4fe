// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"
)

// VisIter decodes a leaf's potential visibility set lazily, one visible
// leaf per Next. The encoding is a run length bitstream: a zero byte is
// followed by a count of skipped 8 leaf blocks, a nonzero byte carries
// one leaf per bit. Iteration is single pass and forward only; to decode
// again start over with VisibleLeaves.
type VisIter struct {
	bsp      *View
	visList  []byte
	numLeafs int // highest leaf index the data can name
	index    int // byte cursor into visList
	other    int // leaf counter, starts at 1, leaf 0 is solid
	bit      int // bit cursor into visList[index], -1 when not mid byte
	all      bool
	cur      Leaf
	err      error
	done     bool
}

// VisibleLeaves returns an iterator over the leafs visible from this
// leaf. A negative VisIndex means the leaf sees the whole map; the
// iterator then walks every leaf index in ascending order. Invalid
// leafs are never emitted, in either mode.
func (l Leaf) VisibleLeaves() *VisIter {
	it := &VisIter{
		bsp:      l.bsp,
		visList:  l.bsp.lumpData(lumpVisibility),
		numLeafs: l.bsp.visLeafCount(),
		other:    1,
		bit:      -1,
	}
	if l.data.VisOfs < 0 {
		it.all = true
	} else {
		it.index = int(l.data.VisOfs)
	}
	return it
}

// Next advances to the next visible leaf. It returns false at the end
// of the set or on a decode error; the two are told apart with Err.
func (it *VisIter) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	for {
		if it.other > it.numLeafs {
			it.done = true
			return false
		}
		if it.all {
			l, err := it.bsp.visibleLeaf(it.other)
			it.other++
			if err != nil {
				it.err = err
				return false
			}
			if l != nil {
				it.cur = *l
				return true
			}
			continue
		}
		if it.bit >= 0 {
			if it.bit >= 8 {
				it.bit = -1
				it.index++
				continue
			}
			other := it.other
			it.other++
			mask := 2 << it.bit
			it.bit++
			if int(it.visList[it.index])&mask != 0 {
				l, err := it.bsp.visibleLeaf(other)
				if err != nil {
					it.err = err
					return false
				}
				if l != nil {
					it.cur = *l
					return true
				}
			}
			continue
		}
		if it.index >= len(it.visList) {
			it.err = errors.Wrapf(ErrVisOverrun,
				"cursor %d in %d bytes at leaf counter %d", it.index, len(it.visList), it.other)
			return false
		}
		if it.visList[it.index] == 0 {
			if it.index+1 >= len(it.visList) {
				it.err = errors.Wrapf(ErrVisOverrun,
					"skip count missing after byte %d", it.index)
				return false
			}
			// a zero byte is followed by a count of invisible 8 leaf blocks
			it.other += 8 * int(it.visList[it.index+1])
			it.index += 2
			continue
		}
		it.bit = 0
	}
}

// Leaf is the leaf the iterator currently points at. Only valid after a
// Next that returned true.
func (it *VisIter) Leaf() Leaf {
	return it.cur
}

func (it *VisIter) Err() error {
	return it.err
}
