package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// FromGods adapts a gods comparator, such as utils.IntComparator, to the typed
// comparator taken by the *Func constructors. c must accept values of type T.
func FromGods[T any](c utils.Comparator) func(T, T) int {
	return func(a, b T) int {
		return c(a, b)
	}
}

// Reverse order of c. Useful to keep a tree in descending order.
func Reverse[T any](c func(T, T) int) func(T, T) int {
	return func(a, b T) int {
		return c(b, a)
	}
}

func ordered[T cmp.Ordered]() func(T, T) int {
	return cmp.Compare[T]
}
