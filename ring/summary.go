package ring

import (
	"strconv"
	"strings"
)

// Summary is a point-in-time snapshot of a queue's observable state.
// It is detached from the queue: Contents is freshly allocated and
// Front/Rear point at copies, so mutating either never touches the queue.
type Summary struct {
	// Contents holds the logical elements in front-to-rear order.
	Contents []int64
	Len      int
	Cap      int

	// Front and Rear are nil when the queue is empty.
	Front *int64
	Rear  *int64
}

// Summarize captures the current state of the queue.
// It never fails and never mutates the queue.
func (q *Queue) Summarize() Summary {
	s := Summary{
		Contents: make([]int64, q.count),
		Len:      q.count,
		Cap:      len(q.buf),
	}

	for i := range s.Contents {
		s.Contents[i] = q.buf[q.slot(i)]
	}

	if q.count > 0 {
		front, rear := s.Contents[0], s.Contents[q.count-1]
		s.Front, s.Rear = &front, &rear
	}

	return s
}

func (s Summary) String() string {
	b := new(strings.Builder)

	b.WriteString("contents (front to rear): [")
	for i, v := range s.Contents {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteString("], len: ")
	b.WriteString(strconv.Itoa(s.Len))
	b.WriteString("/")
	b.WriteString(strconv.Itoa(s.Cap))

	b.WriteString(", front: ")
	writeEnd(b, s.Front)
	b.WriteString(", rear: ")
	writeEnd(b, s.Rear)

	return b.String()
}

// writeEnd renders one end of the queue, or "absent" for an empty one.
func writeEnd(b *strings.Builder, v *int64) {
	if v == nil {
		b.WriteString("absent")
		return
	}

	b.WriteString(strconv.FormatInt(*v, 10))
}
