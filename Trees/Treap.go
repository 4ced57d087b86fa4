package Trees

import (
	"cmp"
	"fmt"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Priorities is the source of treap priorities. *rand.Rand from math/rand/v2 satisfies it,
// and a deterministic source makes the shape of a treap reproducible.
type Priorities interface {
	Uint64() uint64
}

func defaultPriorities(src Priorities) Priorities {
	if src == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return src
}

// treapArena is the arena of Treap and Seq with priorities and subtree sizes. It can be shared
// by several treaps after Split, refs counting them.
type treapArena[T any, S constraints.Unsigned] struct {
	base[T, S]
	pri  []uint64 //pri[0]==0
	sz   []S      //sz[0]==0
	refs int
	src  Priorities
}

func newTreapArena[T any, S constraints.Unsigned](hint S, c func(T, T) int, src Priorities) *treapArena[T, S] {
	return &treapArena[T, S]{base: makeBase[T, S](hint, c), pri: make([]uint64, 1, int(hint)+1),
		sz: make([]S, 1, int(hint)+1), refs: 1, src: src}
}

// node allocates a detached slot holding v with priority p.
func (u *treapArena[T, S]) node(v T, p uint64) S {
	i, fresh := u.alloc(v)
	if fresh {
		u.pri, u.sz = append(u.pri, p), append(u.sz, 1)
	} else {
		u.pri[i], u.sz[i] = p, 1
	}
	return i
}

func (u *treapArena[T, S]) drop(i S) {
	u.release(i)
	u.pri[i], u.sz[i] = 0, 0
}

// dropAll slots of the subtree at i.
func (u *treapArena[T, S]) dropAll(i S) {
	if i == 0 {
		return
	}
	st := []S{i}
	for len(st) > 0 {
		i, st = st[len(st)-1], st[:len(st)-1]
		if l := u.ifs[i].l; l != 0 {
			st = append(st, l)
		}
		if r := u.ifs[i].r; r != 0 {
			st = append(st, r)
		}
		u.drop(i)
	}
}

func (u *treapArena[T, S]) clear(root S) {
	if u.refs == 1 {
		u.reset()
		u.pri, u.sz = u.pri[:1], u.sz[:1]
	} else {
		u.dropAll(root)
	}
}

func (u *treapArena[T, S]) update(i S) {
	u.sz[i] = 1 + u.sz[u.ifs[i].l] + u.sz[u.ifs[i].r]
}

// setL sets the left child of t to c, which may be 0.
func (u *treapArena[T, S]) setL(t, c S) {
	u.ifs[t].l = c
	if c != 0 {
		u.ifs[c].p = t
	}
}

func (u *treapArena[T, S]) setR(t, c S) {
	u.ifs[t].r = c
	if c != 0 {
		u.ifs[c].p = t
	}
}

// merge the treaps at l and r where every node of l comes before every node of r. The root
// with the higher priority stays on top. The result's parent link is left to the caller.
// Recursive.
// Time: expected O(log n)
func (u *treapArena[T, S]) merge(l, r S) S {
	if l == 0 {
		return r
	} else if r == 0 {
		return l
	}
	if u.pri[l] > u.pri[r] {
		u.setR(l, u.merge(u.ifs[l].r, r))
		u.update(l)
		return l
	}
	u.setL(r, u.merge(l, u.ifs[r].l))
	u.update(r)
	return r
}

// splitKey the treap at t into keys less than k and the rest. Both roots have parent 0.
// Recursive.
func (u *treapArena[T, S]) splitKey(t S, k T) (l, r S) {
	if t == 0 {
		return 0, 0
	}
	u.ifs[t].p = 0
	if u.cmp(u.vs[t], k) < 0 {
		a, b := u.splitKey(u.ifs[t].r, k)
		u.setR(t, a)
		u.update(t)
		return t, b
	}
	a, b := u.splitKey(u.ifs[t].l, k)
	u.setL(t, b)
	u.update(t)
	return a, t
}

// splitPos the treap at t into the first k nodes in in-order and the rest. Both roots have
// parent 0. Recursive.
func (u *treapArena[T, S]) splitPos(t, k S) (l, r S) {
	if t == 0 {
		return 0, 0
	}
	u.ifs[t].p = 0
	if ls := u.sz[u.ifs[t].l]; ls < k {
		a, b := u.splitPos(u.ifs[t].r, k-ls-1)
		u.setR(t, a)
		u.update(t)
		return t, b
	}
	a, b := u.splitPos(u.ifs[t].l, k)
	u.setL(t, b)
	u.update(t)
	return a, t
}

// copyFrom clones the subtree at i of o into u keeping shapes and priorities. Recursive.
func (u *treapArena[T, S]) copyFrom(o *treapArena[T, S], i S) S {
	if i == 0 {
		return 0
	}
	j := u.node(o.vs[i], o.pri[i])
	u.setL(j, u.copyFrom(o, o.ifs[i].l))
	u.setR(j, u.copyFrom(o, o.ifs[i].r))
	u.update(j)
	return j
}

// heapBad reports whether a size or the max heap order of priorities is broken in the subtree at root.
func (u *treapArena[T, S]) heapBad(root S) (bad bool) {
	if len(u.pri) != len(u.ifs) || len(u.sz) != len(u.ifs) || u.sz[0] != 0 {
		return true
	}
	u.inOrder(root, func(i S) bool {
		l, r := u.ifs[i].l, u.ifs[i].r
		bad = u.sz[i] != 1+u.sz[l]+u.sz[r] || (l != 0 && u.pri[l] > u.pri[i]) || (r != 0 && u.pri[r] > u.pri[i])
		return !bad
	})
	return bad
}

// Treap is a binary search tree with no repeated values that is also a max heap on random
// priorities drawn once per node at insertion. The expected height D is O(log n) for any
// sequence of operations independent of the priorities. Subtree sizes are kept for Rank and
// Select.
// Treaps can be split by key and merged back with Split and Merge. Treaps produced by Split
// share one arena.
type Treap[T any, S constraints.Unsigned] struct {
	core[T, S]
	a *treapArena[T, S]
}

// NewTreap returns an empty Treap ordered by cmp.Compare with priorities from a randomly seeded
// PCG generator.
func NewTreap[T cmp.Ordered, S constraints.Unsigned](hint S) *Treap[T, S] {
	return NewTreapFunc[T, S](hint, ordered[T](), nil)
}

// NewTreapFunc returns an empty Treap ordered by c with priorities from src. A nil src is
// replaced with a randomly seeded PCG generator.
func NewTreapFunc[T any, S constraints.Unsigned](hint S, c func(T, T) int, src Priorities) *Treap[T, S] {
	return wrapTreap(newTreapArena[T, S](hint, c, defaultPriorities(src)), 0)
}

func wrapTreap[T any, S constraints.Unsigned](a *treapArena[T, S], root S) *Treap[T, S] {
	return &Treap[T, S]{core[T, S]{&a.base, root}, a}
}

// Size [Tree.Size]
// Time: O(1)
func (u *Treap[T, S]) Size() S {
	return u.a.sz[u.root]
}

// Insert [Tree.Insert]. The new node is rotated up while its priority is greater than its
// parent's.
// Time: expected O(log n)
func (u *Treap[T, S]) Insert(v T) bool {
	a := u.a
	found, p, c := a.locate(u.root, v)
	if found != 0 {
		return false
	}
	i := a.node(v, a.src.Uint64())
	a.attach(&u.root, p, i, c)
	for x := p; x != 0; x = a.ifs[x].p {
		a.sz[x]++
	}
	for p = a.ifs[i].p; p != 0 && a.pri[i] > a.pri[p]; p = a.ifs[i].p {
		if i == a.ifs[p].l {
			a.rotateRight(&u.root, p)
		} else {
			a.rotateLeft(&u.root, p)
		}
		a.update(p)
		a.update(i)
	}
	return true
}

// Delete [Tree.Delete]. The node is rotated down toward its child with the higher priority
// until it has at most one child, then spliced out.
// Time: expected O(log n)
func (u *Treap[T, S]) Delete(v T) bool {
	a := u.a
	z := a.search(u.root, v)
	if z == 0 {
		return false
	}
	for a.ifs[z].l != 0 && a.ifs[z].r != 0 {
		var y S
		if l, r := a.ifs[z].l, a.ifs[z].r; a.pri[l] > a.pri[r] {
			y = a.rotateRight(&u.root, z)
		} else {
			y = a.rotateLeft(&u.root, z)
		}
		a.update(z)
		a.update(y)
	}
	p, c := a.ifs[z].p, a.ifs[z].l
	if c == 0 {
		c = a.ifs[z].r
	}
	a.transplant(&u.root, z, c)
	for ; p != 0; p = a.ifs[p].p {
		a.sz[p]--
	}
	a.drop(z)
	return true
}

// Clear [Tree.Clear]. The arena is reset when it isn't shared, otherwise the nodes are freed one by one.
// Time: O(n)
func (u *Treap[T, S]) Clear() {
	u.a.clear(u.root)
	u.root = 0
}

// Rank [OrderedTree.Rank]
// Time: expected O(log n)
func (u *Treap[T, S]) Rank(v T) (S, bool) {
	return u.a.rank(u.root, u.a.sz, v)
}

// Select [OrderedTree.Select]
// Time: expected O(log n)
func (u *Treap[T, S]) Select(k S) (T, error) {
	if n := u.Size(); k >= n {
		return *new(T), outOfRange(k, n)
	}
	return u.a.vs[u.a.rankK(u.root, u.a.sz, k)], nil
}

// Clone returns a deep copy of u on a new arena holding only u's nodes, with the same
// priorities. The copy shares the comparator and the priority source.
// Time: O(n)
func (u *Treap[T, S]) Clone() *Treap[T, S] {
	a := newTreapArena[T, S](u.Size(), u.a.cmp, u.a.src)
	return wrapTreap(a, a.copyFrom(u.a, u.root))
}

// detach u from its arena, leaving it empty on a new one. Its nodes are freed unless kept,
// meaning that another treap owns them now.
func (u *Treap[T, S]) detach(kept bool) {
	if !kept {
		u.a.clear(u.root)
	}
	u.a.refs--
	u.a = newTreapArena[T, S](0, u.a.cmp, u.a.src)
	u.b, u.root = &u.a.base, 0
}

// Split u into the keys less than k and the rest. u is left empty. Both results share u's
// arena, so the memory of one half is only reused by the other; Merge them back or Clear both
// to release it.
// Time: expected O(log n)
func (u *Treap[T, S]) Split(k T) (l, r *Treap[T, S]) {
	a := u.a
	lr, rr := a.splitKey(u.root, k)
	a.refs += 2
	l, r = wrapTreap(a, lr), wrapTreap(a, rr)
	u.detach(true)
	return l, r
}

// Merge l and r into a new treap. Every key of l must be less than every key of r, otherwise
// the returned error wraps ErrUnordered and neither tree is modified. On success both l and r
// are left empty. A nil tree is treated as empty, and Merge(nil, nil) is nil.
// When l and r are on different arenas, the smaller one is copied into the other's; Merge
// panics with ErrCapacity before modifying anything if that arena can't address the copy.
// Time: expected O(log n) on a shared arena, plus the size of the smaller tree otherwise.
func Merge[T any, S constraints.Unsigned](l, r *Treap[T, S]) (*Treap[T, S], error) {
	if l == nil && r == nil {
		return nil, nil
	} else if l == nil {
		l, r = r, nil
	}
	if r != nil && r.root != 0 && l.root != 0 {
		x, y := l.a.vs[l.a.maximum(l.root)], r.a.vs[r.a.minimum(r.root)]
		if l.a.cmp(x, y) >= 0 {
			return nil, fmt.Errorf("%w: left maximum %v, right minimum %v", ErrUnordered, x, y)
		}
	}
	if r == nil || r == l {
		m := wrapTreap(l.a, l.root)
		l.a.refs++
		l.detach(true)
		return m, nil
	}
	a, lr, rr := l.a, l.root, r.root
	keepL, keepR := true, true
	if l.a != r.a {
		src, dst := l, r
		if l.Size() >= r.Size() {
			src, dst = r, l
		}
		if !dst.a.room(src.Size()) {
			panic(ErrCapacity)
		}
		c := dst.a.copyFrom(src.a, src.root)
		if a = dst.a; src == l {
			lr, keepL = c, false
		} else {
			rr, keepR = c, false
		}
	}
	root := a.merge(lr, rr)
	a.ifs[root].p = 0
	a.refs++
	m := wrapTreap(a, root)
	l.detach(keepL)
	r.detach(keepR)
	return m, nil
}

// Corrupt [Tree.Corrupt] checks, on top of the binary search tree structure, the subtree sizes
// and that no child has a greater priority than its parent.
// Time: O(n)
func (u *Treap[T, S]) Corrupt() bool {
	n, bad := u.a.corrupt(u.root)
	return bad || S(n) != u.Size() || u.a.heapBad(u.root)
}
