package Trees

import (
	"math/bits"
	"slices"
)

// colors is a growable bit set holding one color per arena slot. A set bit is red.
// The bit of slot 0 is never set, so the nil slot stays black.
type colors struct {
	bits []uint
}

func makeColors(size int) colors {
	return colors{bits: make([]uint, 0, size/bits.UintSize+1)}
}

func (u *colors) Len() int {
	return len(u.bits) * bits.UintSize
}

// grow so that slot i is addressable. New bits are black.
func (u *colors) grow(i int) {
	for i >= u.Len() {
		u.bits = append(u.bits, 0)
	}
}

func (u *colors) red(i int) bool {
	return i < u.Len() && (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u *colors) Up(i int) {
	u.grow(i)
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u *colors) Down(i int) {
	if i < u.Len() {
		u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
	}
}

// set slot i red if r, else black.
func (u *colors) set(i int, r bool) {
	if r {
		u.Up(i)
	} else {
		u.Down(i)
	}
}

func (u *colors) clone() colors {
	return colors{bits: slices.Clone(u.bits)}
}

func (u *colors) reset() {
	clear(u.bits)
}
