package ring

// Rotate left-rotates the queue so that the element at position
// steps%Len() becomes the new front, preserving the relative order of
// all elements. It is a no-op when steps <= 0 or the queue is empty.
//
// Each step moves the front element to the rear in place, so a rotation
// costs O(steps % Len()) time and no auxiliary buffer.
func (q *Queue) Rotate(steps int) {
	if steps <= 0 || q.count == 0 {
		return
	}

	for i := 0; i < steps%q.count; i++ {
		v := q.buf[q.head]
		q.head = q.slot(1)
		q.buf[q.slot(q.count-1)] = v
		q.tail = q.slot(q.count)
	}
}
