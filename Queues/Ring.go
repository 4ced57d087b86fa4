package Queues

// Ring is a Queue backed by a circular slice that grows when full. It isn't thread safe.
// The zero value is an empty queue ready to use.
type Ring[T any] struct {
	sz, head uint
	content  []T
}

func NewRing[T any](initCap uint) *Ring[T] {
	return &Ring[T]{content: make([]T, initCap)}
}

func (u *Ring[T]) Empty() bool {
	return u.sz == 0
}

func (u *Ring[T]) Size() uint {
	return u.sz
}

// grow the backing slice by half, at least to 4, unrolling the items to the front.
// Time: O(n)
func (u *Ring[T]) grow() {
	nc := make([]T, max(4, uint(len(u.content))*3/2))
	n := copy(nc, u.content[u.head:])
	copy(nc[n:], u.content[:u.head])
	u.content, u.head = nc, 0
}

// Push [Queue.Push]
// Time: amortized O(1)
func (u *Ring[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.grow()
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

// Pop [Queue.Pop]
// Time: O(1)
func (u *Ring[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *Ring[T]) Peek() (item T) {
	if !u.Empty() {
		item = u.content[u.head]
	}
	return
}

// Clear the queue, keeping its capacity.
func (u *Ring[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}
