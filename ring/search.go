package ring

// Find scans from front to rear and returns the position of the first
// element equal to v, or -1 if there is none.
func (q *Queue) Find(v int64) int {
	for i := 0; i < q.count; i++ {
		if q.buf[q.slot(i)] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is present in the queue.
func (q *Queue) Contains(v int64) bool {
	return q.Find(v) != -1
}
