package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// RB is a red-black tree with no repeated values. The root is black, a red node only has
// black children, and every path from a node down to the nil slot passes the same number of
// black nodes. So the height D of the tree is at most 2*log2(n+1).
// The nil slot 0 doubles as the black sentinel leaf, and it's never written by the fixups.
// One bit per node is used for its color, so RB doesn't support Rank and Select.
type RB[T any, S constraints.Unsigned] struct {
	core[T, S]
	c colors
	n S
}

// NewRB returns an empty RB ordered by cmp.Compare. hint preallocates room for that many keys.
func NewRB[T cmp.Ordered, S constraints.Unsigned](hint S) *RB[T, S] {
	return NewRBFunc[T, S](hint, ordered[T]())
}

// NewRBFunc returns an empty RB ordered by c.
func NewRBFunc[T any, S constraints.Unsigned](hint S, c func(T, T) int) *RB[T, S] {
	b := makeBase[T, S](hint, c)
	return &RB[T, S]{core: core[T, S]{b: &b}, c: makeColors(int(hint) + 1)}
}

// Size [Tree.Size]
// Time: O(1)
func (u *RB[T, S]) Size() S {
	return u.n
}

func (u *RB[T, S]) red(i S) bool {
	return u.c.red(int(i))
}

func (u *RB[T, S]) paint(i S, red bool) {
	u.c.set(int(i), red)
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *RB[T, S]) Insert(v T) bool {
	found, p, c := u.b.locate(u.root, v)
	if found != 0 {
		return false
	}
	i, _ := u.b.alloc(v)
	u.paint(i, true)
	u.b.attach(&u.root, p, i, c)
	u.n++
	u.insertFix(i)
	return true
}

// insertFix restores the colors after red z was attached. A red uncle is recolored and the
// walk climbs to the grandparent, a black uncle ends it with at most two rotations.
func (u *RB[T, S]) insertFix(z S) {
	ifs := u.b.ifs
	for z != u.root && u.red(ifs[z].p) {
		p := ifs[z].p
		g := ifs[p].p
		if p == ifs[g].l {
			if y := ifs[g].r; u.red(y) {
				u.paint(p, false)
				u.paint(y, false)
				u.paint(g, true)
				z = g
			} else {
				if z == ifs[p].r {
					z = p
					u.b.rotateLeft(&u.root, z)
					p = ifs[z].p
				}
				u.paint(p, false)
				u.paint(g, true)
				u.b.rotateRight(&u.root, g)
			}
		} else {
			if y := ifs[g].l; u.red(y) {
				u.paint(p, false)
				u.paint(y, false)
				u.paint(g, true)
				z = g
			} else {
				if z == ifs[p].l {
					z = p
					u.b.rotateRight(&u.root, z)
					p = ifs[z].p
				}
				u.paint(p, false)
				u.paint(g, true)
				u.b.rotateLeft(&u.root, g)
			}
		}
	}
	u.paint(u.root, false)
}

// Delete [Tree.Delete]. A node with two children is replaced by its successor, which takes
// its color.
// Time: O(D)
func (u *RB[T, S]) Delete(v T) bool {
	z := u.b.search(u.root, v)
	if z == 0 {
		return false
	}
	ifs := u.b.ifs
	//x moves into the place of the node removed from its position; xp is its parent, tracked
	//here instead of on the sentinel.
	var x, xp S
	wasRed := u.red(z)
	if l, r := ifs[z].l, ifs[z].r; l == 0 {
		x, xp = r, ifs[z].p
		u.b.transplant(&u.root, z, r)
	} else if r == 0 {
		x, xp = l, ifs[z].p
		u.b.transplant(&u.root, z, l)
	} else {
		y := u.b.minimum(r)
		wasRed, x = u.red(y), ifs[y].r
		if xp = y; ifs[y].p != z {
			xp = ifs[y].p
			u.b.transplant(&u.root, y, x)
			ifs[y].r = r
			ifs[r].p = y
		}
		u.b.transplant(&u.root, z, y)
		ifs[y].l = l
		ifs[l].p = y
		u.paint(y, u.red(z))
	}
	u.paint(z, false)
	u.b.release(z)
	u.n--
	if !wasRed {
		u.deleteFix(x, xp)
	}
	return true
}

// deleteFix restores the black heights after a black node was removed above x, whose parent
// is p. x may be the nil slot.
func (u *RB[T, S]) deleteFix(x, p S) {
	ifs := u.b.ifs
	for x != u.root && !u.red(x) {
		if x == ifs[p].l {
			w := ifs[p].r
			if u.red(w) {
				u.paint(w, false)
				u.paint(p, true)
				u.b.rotateLeft(&u.root, p)
				w = ifs[p].r
			}
			if !u.red(ifs[w].l) && !u.red(ifs[w].r) {
				u.paint(w, true)
				x, p = p, ifs[p].p
				continue
			}
			if !u.red(ifs[w].r) {
				u.paint(ifs[w].l, false)
				u.paint(w, true)
				u.b.rotateRight(&u.root, w)
				w = ifs[p].r
			}
			u.paint(w, u.red(p))
			u.paint(p, false)
			u.paint(ifs[w].r, false)
			u.b.rotateLeft(&u.root, p)
		} else {
			w := ifs[p].l
			if u.red(w) {
				u.paint(w, false)
				u.paint(p, true)
				u.b.rotateRight(&u.root, p)
				w = ifs[p].l
			}
			if !u.red(ifs[w].l) && !u.red(ifs[w].r) {
				u.paint(w, true)
				x, p = p, ifs[p].p
				continue
			}
			if !u.red(ifs[w].l) {
				u.paint(ifs[w].r, false)
				u.paint(w, true)
				u.b.rotateLeft(&u.root, w)
				w = ifs[p].l
			}
			u.paint(w, u.red(p))
			u.paint(p, false)
			u.paint(ifs[w].l, false)
			u.b.rotateRight(&u.root, p)
		}
		x = u.root
	}
	u.paint(x, false)
}

// Clear [Tree.Clear]
// Time: O(n)
func (u *RB[T, S]) Clear() {
	u.b.reset()
	u.c.reset()
	u.root, u.n = 0, 0
}

// Clone returns a deep copy of u sharing only the comparator.
// Time: O(n)
func (u *RB[T, S]) Clone() *RB[T, S] {
	return &RB[T, S]{core: core[T, S]{u.b.clone(), u.root}, c: u.c.clone(), n: u.n}
}

// blackHeight of the subtree at i counting the nil slot, or -1 if it isn't uniform or a red
// node has a red child. Recursive.
func (u *RB[T, S]) blackHeight(i S) int {
	if i == 0 {
		return 1
	}
	l, r := u.b.ifs[i].l, u.b.ifs[i].r
	if u.red(i) && (u.red(l) || u.red(r)) {
		return -1
	}
	hl, hr := u.blackHeight(l), u.blackHeight(r)
	if hl < 0 || hl != hr {
		return -1
	}
	if u.red(i) {
		return hl
	}
	return hl + 1
}

// Corrupt [Tree.Corrupt] checks, on top of the binary search tree structure, the count, the
// sentinel, and the red-black properties.
// Time: O(n)
func (u *RB[T, S]) Corrupt() bool {
	n, bad := u.b.corrupt(u.root)
	return bad || S(n) != u.n || u.red(0) || u.b.ifs[0].p != 0 || u.red(u.root) || u.blackHeight(u.root) < 0
}
