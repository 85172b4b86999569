// Package queue provides a first-in-first-out container of names built on
// container/list, used for queue-based crowd tracking.
package queue

import "container/list"

// Queue is a FIFO of names. Use New to create one.
type Queue struct {
	l *list.List
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{l: list.New()}
}

// Enqueue appends name at the back.
func (q *Queue) Enqueue(name string) {
	q.l.PushBack(name)
}

// Dequeue removes the front name and returns it.
// On an empty queue it returns ("", false).
func (q *Queue) Dequeue() (string, bool) {
	front := q.l.Front()
	if front == nil {
		return "", false
	}

	return q.l.Remove(front).(string), true
}

// Front returns the front name without removing it.
func (q *Queue) Front() (string, bool) {
	front := q.l.Front()
	if front == nil {
		return "", false
	}

	return front.Value.(string), true
}

// Empty reports whether the queue holds no names.
func (q *Queue) Empty() bool { return q.l.Len() == 0 }

// Len returns the number of queued names.
func (q *Queue) Len() int { return q.l.Len() }

// Clear removes every name.
func (q *Queue) Clear() { q.l.Init() }

// Items returns the names from front to back. The queue is left untouched.
func (q *Queue) Items() []string {
	out := make([]string, 0, q.l.Len())
	for e := q.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}

	return out
}
