package Trees

import (
	"io"
	"iter"

	"golang.org/x/exp/constraints"
)

// Seq is a sequence of values backed by an implicit key treap: a node's position, derived from
// subtree sizes, takes the place of a key. Positional access, insertion, and range deletion
// all split and merge by position in expected O(log n).
type Seq[T any, S constraints.Unsigned] struct {
	a    *treapArena[T, S]
	root S
}

// NewSeq returns an empty Seq with priorities from src, nil meaning a randomly seeded PCG
// generator. hint preallocates room for that many values.
func NewSeq[T any, S constraints.Unsigned](hint S, src Priorities) *Seq[T, S] {
	return &Seq[T, S]{a: newTreapArena[T, S](hint, nil, defaultPriorities(src))}
}

func (u *Seq[T, S]) Size() S {
	return u.a.sz[u.root]
}

// At returns the value at position i.
// Time: expected O(log n)
func (u *Seq[T, S]) At(i S) (T, error) {
	if n := u.Size(); i >= n {
		return *new(T), outOfRange(i, n)
	}
	return u.a.vs[u.a.rankK(u.root, u.a.sz, i)], nil
}

// Set the value at position i to v.
func (u *Seq[T, S]) Set(i S, v T) error {
	if n := u.Size(); i >= n {
		return outOfRange(i, n)
	}
	u.a.vs[u.a.rankK(u.root, u.a.sz, i)] = v
	return nil
}

// InsertAt inserts v before position i, so that v ends up at i. i==Size() appends.
// Time: expected O(log n)
func (u *Seq[T, S]) InsertAt(i S, v T) error {
	if n := u.Size(); i > n {
		return outOfRange(i, n)
	}
	a := u.a
	x := a.node(v, a.src.Uint64())
	l, r := a.splitPos(u.root, i)
	u.root = a.merge(a.merge(l, x), r)
	a.ifs[u.root].p = 0
	return nil
}

// Append v at the end.
func (u *Seq[T, S]) Append(v T) {
	u.InsertAt(u.Size(), v)
}

// Delete positions from i up to but excluding j.
// Time: expected O(log n + j-i)
func (u *Seq[T, S]) Delete(i, j S) error {
	if n := u.Size(); j > n {
		return outOfRange(j, n)
	} else if i > j {
		return outOfRange(i, j)
	}
	a := u.a
	l, m := a.splitPos(u.root, i)
	m, r := a.splitPos(m, j-i)
	a.dropAll(m)
	u.root = a.merge(l, r)
	a.ifs[u.root].p = 0
	return nil
}

func (u *Seq[T, S]) Clear() {
	u.a.clear(u.root)
	u.root = 0
}

// All values in order.
func (u *Seq[T, S]) All() iter.Seq[T] {
	return u.a.all(u.root)
}

// Fprint writes the values separated by a space and followed by a newline.
func (u *Seq[T, S]) Fprint(w io.Writer) error {
	return u.a.fprint(w, u.root)
}

func (u *Seq[T, S]) String() string {
	return u.a.str(u.root)
}

// Corrupt reports whether the links or the heap order of priorities are broken.
// Time: O(n)
func (u *Seq[T, S]) Corrupt() bool {
	n, bad := u.a.links(u.root)
	return bad || S(n) != u.Size() || u.a.heapBad(u.root)
}
