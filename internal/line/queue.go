package line

// Queue serves records in the order they were enqueued.
// The zero value is an empty queue.
type Queue struct {
	head *node
	tail *node
	n    int
}

func (q *Queue) Len() int      { return q.n }
func (q *Queue) IsEmpty() bool { return q.head == nil }

// Enqueue appends a Waiting record at the back.
func (q *Queue) Enqueue(name string, duration int) {
	nd := &node{rec: Record{Name: name, Class: Waiting, Duration: duration}}
	if q.tail == nil {
		q.head, q.tail = nd, nd
	} else {
		q.tail.next = nd
		q.tail = nd
	}
	q.n++
}

// Dequeue removes the front record. ok is false if the queue is empty.
func (q *Queue) Dequeue() (rec Record, ok bool) {
	if q.head == nil {
		return Record{}, false
	}
	nd := q.head
	q.head = nd.next
	if q.head == nil {
		// Emptied.
		q.tail = nil
	}
	nd.next = nil
	q.n--
	return nd.rec, true
}

// Clear drops every node still held.
func (q *Queue) Clear() {
	for q.head != nil {
		nd := q.head
		q.head = nd.next
		nd.next = nil
	}
	q.tail = nil
	q.n = 0
}
