package gui

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// ID uniquely identifies a widget, area or any other piece of state that
// must survive across frames. IDs are stable: hashing the same source
// yields the same ID every frame.
//
// The zero ID is reserved as "no ID".
type ID uint64

// IDFromString generates a stable ID from a string label.
func IDFromString(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return nonZeroID(h.Sum64())
}

// IDFromInt generates a stable ID from an integer.
// Useful for items in arrays or slices.
func IDFromInt(n int) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	h := fnv.New64a()
	h.Write(buf[:])
	return nonZeroID(h.Sum64())
}

// With derives a child ID from a parent ID and a label, so that the same
// label used under different parents yields different IDs.
func (id ID) With(label string) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h := fnv.New64a()
	h.Write(buf[:])
	h.Write([]byte(label))
	return nonZeroID(h.Sum64())
}

// WithInt derives a child ID from a parent ID and an index.
func (id ID) WithInt(n int) ID {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(n))
	h := fnv.New64a()
	h.Write(buf[:])
	return nonZeroID(h.Sum64())
}

// String returns a short debug representation: the low 16 bits in hex.
// Collisions in the printed form are fine; it is for log messages only.
func (id ID) String() string {
	return fmt.Sprintf("%04X", uint64(id)&0xFFFF)
}

// nonZeroID remaps the (astronomically unlikely) zero hash, so that the
// zero value of ID can mean "none".
func nonZeroID(h uint64) ID {
	if h == 0 {
		return ID(1)
	}
	return ID(h)
}
