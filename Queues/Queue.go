package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns *EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	// Peek at the oldest item, the zero value when Empty.
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
