// SPDX-License-Identifier: GPL-2.0-or-later
package bsp

import (
	"bytes"
)

// Entity is one key/value block of the entities lump.
type Entity struct {
	properties map[string]string
	src        []byte
}

// quoted returns the next double quoted token of l and the remainder
// after its closing quote, or ok == false if no token is left.
func quoted(l []byte) (tok, rest []byte, ok bool) {
	q := bytes.IndexByte(l, '"')
	if q == -1 {
		return nil, nil, false
	}
	l = l[q+1:]
	q = bytes.IndexByte(l, '"')
	if q == -1 {
		return nil, nil, false
	}
	return l[:q], l[q+1:], true
}

func newEntity(p []byte) *Entity {
	e := &Entity{properties: make(map[string]string), src: p}
	// each line is of the form
	// "key" "value"
	for _, l := range bytes.Split(p, []byte("\n")) {
		key, rest, ok := quoted(l)
		if !ok {
			continue
		}
		value, _, ok := quoted(rest)
		if !ok {
			continue
		}
		e.properties[string(key)] = string(value)
	}
	return e
}

func (e *Entity) Property(name string) (string, bool) {
	v, ok := e.properties[name]
	return v, ok
}

// Name is the entity's classname.
func (e *Entity) Name() (string, bool) {
	return e.Property("classname")
}

func (e *Entity) PropertyNames() []string {
	n := make([]string, 0, len(e.properties))
	for k := range e.properties {
		n = append(n, k)
	}
	return n
}

// Entities parses the entities lump. The lump is plain text, a sequence
// of brace delimited blocks:
//
//	{
//	  "classname" "worldspawn"
//	  "wad" "gfx/base.wad"
//	}
//
// Braces and quotes inside quoted strings do not nest blocks. A stray
// closing brace aborts the parse and returns nil.
func (b *View) Entities() []*Entity {
	return parseEntities(bytes.TrimRight(b.lumpData(lumpEntities), "\x00"))
}

func parseEntities(data []byte) []*Entity {
	var es []*Entity
	var ob, q int
	start := -1
	for i, c := range data {
		switch c {
		case '{':
			if q != 0 {
				break
			}
			if start == -1 {
				start = i
			} else {
				ob++
			}
		case '}':
			if q != 0 {
				break
			}
			if start == -1 {
				// Bad input
				return nil
			}
			if ob == 0 {
				es = append(es, newEntity(data[start:i+1]))
				start = -1
			} else {
				ob--
			}
		case '"':
			q ^= 1
		}
	}
	return es
}
