package ring

// EnqueueAll appends each value in order, as if by repeated
// [Queue.Enqueue]. Any of the insertions may grow the buffer.
func (q *Queue) EnqueueAll(values ...int64) {
	for _, v := range values {
		q.Enqueue(v)
	}
}

// DequeueMany removes up to max elements from the front and returns them
// in FIFO order. It removes min(Len(), max) elements; max <= 0 removes
// nothing. The returned slice is freshly allocated.
func (q *Queue) DequeueMany(max int) []int64 {
	n := max
	if n > q.count {
		n = q.count
	}
	if n < 0 {
		n = 0
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = q.buf[q.slot(i)]
	}

	q.head = q.slot(n)
	q.count -= n

	return out
}
