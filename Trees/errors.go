package Trees

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOutOfRange is returned when a position or order statistic is outside the tree.
	ErrOutOfRange = errors.New("index out of range")
	// ErrUnordered is returned by Merge when some key of the left tree doesn't compare
	// less than every key of the right tree.
	ErrUnordered = errors.New("trees overlap in key order")
	// ErrCapacity is the panic value when the arena needs more slots than S can address.
	ErrCapacity = errors.New("arena index overflows its index type")
)

func outOfRange[S constraints.Unsigned](i, n S) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, n)
}
