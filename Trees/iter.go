package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator is a bidirectional cursor over a tree in ascending order. It carries the arena and
// the root it was created with, so it stays read-only with respect to the tree.
// Position 0 is End, one past the greatest key. Mutating the tree invalidates the iterator.
type Iterator[T any, S constraints.Unsigned] struct {
	b         *base[T, S]
	root, cur S
}

// Valid reports whether the iterator points at a key, that is, it isn't at End.
func (it Iterator[T, S]) Valid() bool {
	return it.cur != 0
}

// Value at the iterator. The zero value at End.
func (it Iterator[T, S]) Value() T {
	if it.b == nil {
		return *new(T)
	}
	return it.b.vs[it.cur]
}

// Next moves to the successor. Next at End stays at End.
// Time: amortized O(1)
func (it *Iterator[T, S]) Next() {
	if it.cur != 0 {
		it.cur = it.b.successor(it.cur)
	}
}

// Prev moves to the predecessor. Prev at End moves to the greatest key. Prev at the least key
// moves to End.
func (it *Iterator[T, S]) Prev() {
	if it.b == nil {
		return
	}
	if it.cur == 0 {
		it.cur = it.b.maximum(it.root)
	} else {
		it.cur = it.b.predecessor(it.cur)
	}
}

// Equal iterators point at the same slot, including both being at End.
func (it Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return it.cur == o.cur
}

// ReverseIterator is Iterator with directions swapped: Next moves to smaller keys and
// position 0 is REnd, one before the least key.
type ReverseIterator[T any, S constraints.Unsigned] struct {
	Iterator[T, S]
}

// Next moves to the predecessor. Next at REnd stays at REnd.
func (it *ReverseIterator[T, S]) Next() {
	if it.cur != 0 {
		it.cur = it.b.predecessor(it.cur)
	}
}

// Prev moves to the successor. Prev at REnd moves to the least key.
func (it *ReverseIterator[T, S]) Prev() {
	if it.b == nil {
		return
	}
	if it.cur == 0 {
		it.cur = it.b.minimum(it.root)
	} else {
		it.cur = it.b.successor(it.cur)
	}
}

func (it ReverseIterator[T, S]) Equal(o ReverseIterator[T, S]) bool {
	return it.cur == o.cur
}

func (u *base[T, S]) at(root, cur S) Iterator[T, S] {
	return Iterator[T, S]{u, root, cur}
}

func (u *base[T, S]) all(root S) iter.Seq[T] {
	return func(yield func(T) bool) {
		u.inOrder(root, func(i S) bool {
			return yield(u.vs[i])
		})
	}
}

func (u *base[T, S]) backward(root S) iter.Seq[T] {
	return func(yield func(T) bool) {
		u.inOrderR(root, func(i S) bool {
			return yield(u.vs[i])
		})
	}
}
