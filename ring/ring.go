// Package ring implements a dynamically resizable circular-buffer FIFO
// queue of int64 elements.
//
// Reference:
//
// - https://en.wikipedia.org/wiki/Circular_buffer
package ring

import (
	"github.com/pkg/errors"
)

var (
	ErrEmpty      = errors.New("queue is empty")
	ErrOutOfRange = errors.New("position out of range")
)

// DefaultCapacity is used by [New] and whenever a non-positive capacity
// is requested.
const DefaultCapacity = 10

// Queue is a FIFO queue backed by a single circular buffer. Insertion at
// the tail and removal at the head are O(1); the buffer doubles when an
// insertion would exceed it and never shrinks.
//
// Queue is not safe for concurrent use. Always create one with [New] or
// [NewWithCapacity].
type Queue struct {
	buf        []int64
	head, tail int

	count int
}

// New creates an empty queue with [DefaultCapacity].
func New() *Queue {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates an empty queue with the given initial capacity.
// Non-positive capacities fall back to [DefaultCapacity].
func NewWithCapacity(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{buf: make([]int64, capacity)}
}

// Enqueue appends v at the tail, growing the buffer first if the queue
// is full. It never fails.
func (q *Queue) Enqueue(v int64) {
	if q.count == len(q.buf) {
		q.grow()
	}

	q.buf[q.tail] = v
	q.count++
	q.tail = q.slot(q.count)
}

// Dequeue removes and returns the front element.
// If the queue is empty. It will return [ErrEmpty].
func (q *Queue) Dequeue() (int64, error) {
	if q.count == 0 {
		return 0, ErrEmpty
	}

	v := q.buf[q.head]
	q.head = q.slot(1)
	q.count--

	return v, nil
}

// Front returns the front element without removing it.
// If the queue is empty. It will return [ErrEmpty].
func (q *Queue) Front() (int64, error) {
	if q.count == 0 {
		return 0, ErrEmpty
	}

	return q.buf[q.head], nil
}

// Rear returns the element most recently enqueued, without removing it.
// If the queue is empty. It will return [ErrEmpty].
func (q *Queue) Rear() (int64, error) {
	if q.count == 0 {
		return 0, ErrEmpty
	}

	return q.buf[q.slot(q.count-1)], nil
}

// Peek returns the element at the given position from the front without
// removing it. Positions outside [0, Len()) return [ErrOutOfRange].
func (q *Queue) Peek(position int) (int64, error) {
	if position < 0 || position >= q.count {
		return 0, errors.Wrapf(ErrOutOfRange, "peeking position %d of %d", position, q.count)
	}

	return q.buf[q.slot(position)], nil
}

// Len returns the number of elements in the queue.
func (q *Queue) Len() int {
	return q.count
}

// Cap returns the current capacity of the queue.
func (q *Queue) Cap() int {
	return len(q.buf)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue) IsEmpty() bool {
	return q.count == 0
}

// IsFull reports whether the next [Queue.Enqueue] would grow the buffer.
func (q *Queue) IsFull() bool {
	return q.count == len(q.buf)
}

// Clear discards all elements. The buffer is kept, so capacity is
// unchanged.
func (q *Queue) Clear() {
	q.head, q.tail, q.count = 0, 0, 0
}

// slot maps a logical position (0 is the front) to its buffer index.
// Every piece of wraparound arithmetic in the package goes through here.
func (q *Queue) slot(position int) int {
	return (q.head + position) % len(q.buf)
}

// grow doubles the buffer, laying the elements out from slot 0 in FIFO
// order. Capacity only ever increases (we never shrink).
func (q *Queue) grow() {
	buf := make([]int64, len(q.buf)*2)
	if q.head < q.tail {
		copy(buf, q.buf[q.head:q.tail])
	} else {
		n := copy(buf, q.buf[q.head:])
		copy(buf[n:], q.buf[:q.tail])
	}

	q.buf = buf
	q.head, q.tail = 0, q.count
}
