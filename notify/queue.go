package notify

// Queue accumulates messages during a single request. It is request-scoped
// state: every request gets its own instance via the flash middleware, so no
// locking is needed.
type Queue struct {
	messages []Message
}

// NewQueue creates an empty queue. The backing slice is allocated lazily on
// the first push.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a message, preserving insertion order.
func (q *Queue) Push(m Message) {
	q.messages = append(q.messages, m)
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.messages)
}

// Drain returns all queued messages and clears the queue. A second Drain
// without intervening pushes returns nil, which is what makes redirect
// migration and render consumption idempotent within a request.
func (q *Queue) Drain() []Message {
	if q == nil {
		return nil
	}
	msgs := q.messages
	q.messages = nil
	return msgs
}

// Messages returns a snapshot copy without consuming the queue.
func (q *Queue) Messages() []Message {
	if q == nil || len(q.messages) == 0 {
		return nil
	}
	out := make([]Message, len(q.messages))
	copy(out, q.messages)
	return out
}
