package ring

// Clone returns an independent queue with the same logical contents and
// the same capacity. The clone's buffer starts at slot 0 regardless of
// where the original's front currently sits; afterwards the two queues
// share no storage.
func (q *Queue) Clone() *Queue {
	c := new(Queue)
	c.CopyFrom(q)
	return c
}

// CopyFrom replaces the queue's contents with an independent copy of
// src, normalized to start at slot 0. The previous buffer is discarded.
// Copying a queue from itself is a no-op.
func (q *Queue) CopyFrom(src *Queue) {
	if q == src {
		return
	}

	buf := make([]int64, len(src.buf))
	for i := 0; i < src.count; i++ {
		buf[i] = src.buf[src.slot(i)]
	}

	q.buf = buf
	q.head, q.count = 0, src.count
	q.tail = q.slot(q.count)
}
