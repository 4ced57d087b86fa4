package Trees

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// AVL is a height balanced binary search tree with no repeated values. The heights of the two
// subtrees of every node differ by at most 1, so the height D of the tree is less than
// 1.44*log2(n+2). It also keeps subtree sizes to answer Rank and Select.
// T is the type of values it holds, S is the type of the arena indexes and subtree sizes,
// which should be a wide upper bound for the size of the tree.
// Additional memory cost is size(S)+1 bytes per node on top of the links.
type AVL[T any, S constraints.Unsigned] struct {
	core[T, S]
	h  []uint8 //h[0]==0
	sz []S     //sz[0]==0
}

// NewAVL returns an empty AVL ordered by cmp.Compare. hint preallocates room for that many keys.
func NewAVL[T cmp.Ordered, S constraints.Unsigned](hint S) *AVL[T, S] {
	return NewAVLFunc[T, S](hint, ordered[T]())
}

// NewAVLFunc returns an empty AVL ordered by c, which returns a negative number when a<b, 0
// when a==b, and a positive number when a>b.
func NewAVLFunc[T any, S constraints.Unsigned](hint S, c func(T, T) int) *AVL[T, S] {
	b := makeBase[T, S](hint, c)
	u := &AVL[T, S]{core: core[T, S]{b: &b}, h: make([]uint8, 1, int(hint)+1), sz: make([]S, 1, int(hint)+1)}
	return u
}

// Size [Tree.Size]
// Time: O(1)
func (u *AVL[T, S]) Size() S {
	return u.sz[u.root]
}

func (u *AVL[T, S]) update(i S) {
	l, r := u.b.ifs[i].l, u.b.ifs[i].r
	u.h[i] = 1 + max(u.h[l], u.h[r])
	u.sz[i] = 1 + u.sz[l] + u.sz[r]
}

// bf is the balance factor of i, height of left minus height of right.
func (u *AVL[T, S]) bf(i S) int {
	return int(u.h[u.b.ifs[i].l]) - int(u.h[u.b.ifs[i].r])
}

func (u *AVL[T, S]) rotateLeft(x S) S {
	y := u.b.rotateLeft(&u.root, x)
	u.update(x)
	u.update(y)
	return y
}

func (u *AVL[T, S]) rotateRight(x S) S {
	y := u.b.rotateRight(&u.root, x)
	u.update(x)
	u.update(y)
	return y
}

// rebalance x whose balance factor is 2 or -2, returning the new root of the subtree.
// A child leaning the other way takes a double rotation.
// Time: O(1)
func (u *AVL[T, S]) rebalance(x S) S {
	if u.bf(x) > 0 {
		if l := u.b.ifs[x].l; u.bf(l) < 0 {
			u.rotateLeft(l)
		}
		return u.rotateRight(x)
	}
	if r := u.b.ifs[x].r; u.bf(r) > 0 {
		u.rotateRight(r)
	}
	return u.rotateLeft(x)
}

// fix walks from x to the root updating heights and sizes. Unbalanced nodes are rebalanced;
// once means stop rebalancing after the first one, which suffices after an insertion.
func (u *AVL[T, S]) fix(x S, once bool) {
	for done := false; x != 0; x = u.b.ifs[x].p {
		u.update(x)
		if b := u.bf(x); !done && (b > 1 || b < -1) {
			x = u.rebalance(x)
			done = once
		}
	}
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *AVL[T, S]) Insert(v T) bool {
	found, p, c := u.b.locate(u.root, v)
	if found != 0 {
		return false
	}
	i, fresh := u.b.alloc(v)
	if fresh {
		u.h, u.sz = append(u.h, 1), append(u.sz, 1)
	} else {
		u.h[i], u.sz[i] = 1, 1
	}
	u.b.attach(&u.root, p, i, c)
	u.fix(p, true)
	return true
}

// Delete [Tree.Delete]. A node with two children is replaced by its successor.
// Time: O(D)
func (u *AVL[T, S]) Delete(v T) bool {
	z := u.b.search(u.root, v)
	if z == 0 {
		return false
	}
	ifs := u.b.ifs
	var x S //lowest node whose subtree changed
	if l, r := ifs[z].l, ifs[z].r; l == 0 {
		x = ifs[z].p
		u.b.transplant(&u.root, z, r)
	} else if r == 0 {
		x = ifs[z].p
		u.b.transplant(&u.root, z, l)
	} else {
		y := u.b.minimum(r)
		if x = y; ifs[y].p != z {
			x = ifs[y].p
			u.b.transplant(&u.root, y, ifs[y].r)
			ifs[y].r = r
			ifs[r].p = y
		}
		u.b.transplant(&u.root, z, y)
		ifs[y].l = l
		ifs[l].p = y
	}
	u.b.release(z)
	u.h[z], u.sz[z] = 0, 0
	u.fix(x, false)
	return true
}

// Clear [Tree.Clear]
// Time: O(n)
func (u *AVL[T, S]) Clear() {
	u.b.reset()
	u.root, u.h, u.sz = 0, u.h[:1], u.sz[:1]
}

// Clone returns a deep copy of u sharing only the comparator.
// Time: O(n)
func (u *AVL[T, S]) Clone() *AVL[T, S] {
	return &AVL[T, S]{core: core[T, S]{u.b.clone(), u.root}, h: slices.Clone(u.h), sz: slices.Clone(u.sz)}
}

// Rank [OrderedTree.Rank]
// Time: O(D)
func (u *AVL[T, S]) Rank(v T) (S, bool) {
	return u.b.rank(u.root, u.sz, v)
}

// Select [OrderedTree.Select]
// Time: O(D)
func (u *AVL[T, S]) Select(k S) (T, error) {
	if n := u.Size(); k >= n {
		return *new(T), outOfRange(k, n)
	}
	return u.b.vs[u.b.rankK(u.root, u.sz, k)], nil
}

// Corrupt [Tree.Corrupt] checks, on top of the binary search tree structure, that every
// stored height and size matches its children and that every balance factor is in [-1,1].
// Time: O(n)
func (u *AVL[T, S]) Corrupt() bool {
	if len(u.h) != len(u.b.ifs) || len(u.sz) != len(u.b.ifs) || u.h[0] != 0 || u.sz[0] != 0 {
		return true
	}
	n, bad := u.b.corrupt(u.root)
	if bad || S(n) != u.sz[u.root] {
		return true
	}
	u.b.inOrder(u.root, func(i S) bool {
		l, r := u.b.ifs[i].l, u.b.ifs[i].r
		b := u.bf(i)
		bad = u.h[i] != 1+max(u.h[l], u.h[r]) || u.sz[i] != 1+u.sz[l]+u.sz[r] || b > 1 || b < -1
		return !bad
	})
	return bad
}
