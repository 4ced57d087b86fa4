// Package Trees implements ordered sets as self-balancing binary search trees: AVL, red-black,
// and treap, plus an implicit-key treap sequence. Nodes live in an arena indexed by S, an
// unsigned type chosen by the caller as an upper bound of the tree's size; index 0 is the nil
// slot. None of the types are safe for concurrent use; serialize access externally.
package Trees

import (
	"io"
	"iter"
	"os"

	"golang.org/x/exp/constraints"
)

// Tree represents an ordered set implemented using a balanced binary search tree.
// Receivers that have a bool as a second return value indicate whether the first return
// value is defined. For example, Minimum on an empty tree returns (x T, false) where x should
// not be used.
// Keys are ordered by the tree's comparator and are unique. Methods are implemented
// iteratively unless noted otherwise.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v. Returns false and leaves the tree untouched if v is already there.
	Insert(v T) bool
	//Delete v. Returns false and leaves the tree untouched if v isn't there.
	Delete(v T) bool
	Has(v T) bool
	//Find returns an iterator at v, or End if v isn't there.
	Find(v T) Iterator[T, S]
	//Begin is the iterator at the least key, End if the tree is empty.
	Begin() Iterator[T, S]
	//End is one past the greatest key.
	End() Iterator[T, S]
	//RBegin is the reverse iterator at the greatest key.
	RBegin() ReverseIterator[T, S]
	//REnd is one before the least key.
	REnd() ReverseIterator[T, S]
	Minimum() (T, bool)
	Maximum() (T, bool)
	//Size is the number of keys.
	Size() S
	//Height of the tree, 0 when empty.
	Height() int
	//Clear removes every key.
	Clear()
	//InOrder calls f on keys in ascending order until f returns false.
	InOrder(f func(T) bool)
	//All keys in ascending order.
	All() iter.Seq[T]
	//Backward is All in descending order.
	Backward() iter.Seq[T]
	//Levels calls f on keys breadth first with their depth, the root's being 0, until f returns false.
	Levels(f func(v T, depth int) bool)
	//Fprint writes the keys in ascending order separated by a space and followed by a newline.
	Fprint(w io.Writer) error
	//Print is Fprint to stdout.
	Print()
	//String is Fprint without the newline.
	String() string
	//Corrupt reports whether any structural invariant of the tree is violated, including the
	//balancing invariant of the implementation.
	Corrupt() bool
}

// OrderedTree is a Tree that also answers order statistics queries in O(D).
type OrderedTree[T any, S constraints.Unsigned] interface {
	Tree[T, S]
	//Rank is the number of keys less than v, that is, v's index from 0 in in-order when found is true.
	Rank(v T) (r S, found bool)
	//Select the key at index k from 0 in in-order. Returns an error wrapping ErrOutOfRange if k>=Size().
	Select(k S) (T, error)
}

// core holds the arena and root of a tree and implements the read only part of Tree.
type core[T any, S constraints.Unsigned] struct {
	b    *base[T, S]
	root S
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *core[T, S]) Has(v T) bool {
	return u.b.search(u.root, v) != 0
}

// Find [Tree.Find]
// Time: O(D)
func (u *core[T, S]) Find(v T) Iterator[T, S] {
	return u.b.at(u.root, u.b.search(u.root, v))
}

func (u *core[T, S]) Begin() Iterator[T, S] {
	return u.b.at(u.root, u.b.minimum(u.root))
}

func (u *core[T, S]) End() Iterator[T, S] {
	return u.b.at(u.root, 0)
}

func (u *core[T, S]) RBegin() ReverseIterator[T, S] {
	return ReverseIterator[T, S]{u.b.at(u.root, u.b.maximum(u.root))}
}

func (u *core[T, S]) REnd() ReverseIterator[T, S] {
	return ReverseIterator[T, S]{u.b.at(u.root, 0)}
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *core[T, S]) Minimum() (T, bool) {
	i := u.b.minimum(u.root)
	return u.b.vs[i], i != 0
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *core[T, S]) Maximum() (T, bool) {
	i := u.b.maximum(u.root)
	return u.b.vs[i], i != 0
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(1)
func (u *core[T, S]) InOrder(f func(T) bool) {
	u.b.inOrder(u.root, func(i S) bool {
		return f(u.b.vs[i])
	})
}

func (u *core[T, S]) All() iter.Seq[T] {
	return u.b.all(u.root)
}

func (u *core[T, S]) Backward() iter.Seq[T] {
	return u.b.backward(u.root)
}

// Levels [Tree.Levels]
// Time: O(n); Space: O(n)
func (u *core[T, S]) Levels(f func(T, int) bool) {
	u.b.levels(u.root, func(i S, d int) bool {
		return f(u.b.vs[i], d)
	})
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *core[T, S]) Height() int {
	return u.b.height(u.root)
}

func (u *core[T, S]) Fprint(w io.Writer) error {
	return u.b.fprint(w, u.root)
}

// Print [Tree.Print]. Write errors are ignored like fmt.Println does.
func (u *core[T, S]) Print() {
	u.b.fprint(os.Stdout, u.root)
}

func (u *core[T, S]) String() string {
	return u.b.str(u.root)
}
