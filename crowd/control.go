// Package crowd tracks people at an emergency scene in two independent
// containers: a Stack (last in, first out) and a Queue (first in, first out).
//
// Control never prints. Every operation returns an Event describing what
// happened, and the console package turns events into text.
package crowd

import (
	"github.com/katalvlaran/dispatchsim/queue"
	"github.com/katalvlaran/dispatchsim/stack"
)

// Control owns one Stack and one Queue of names.
// Duplicates are allowed in both. The zero value is not usable; call New.
type Control struct {
	stack *stack.Stack
	queue *queue.Queue
}

// New returns a Control with both containers empty.
func New() *Control {
	return &Control{
		stack: stack.New(),
		queue: queue.New(),
	}
}

// AddToStack pushes name on the Stack.
func (c *Control) AddToStack(name string) Event {
	c.stack.Push(name)

	return Event{Kind: KindAdded, Container: Stack, Names: []string{name}}
}

// RemoveFromStack pops the most recently added person.
func (c *Control) RemoveFromStack() Event {
	name, ok := c.stack.Pop()
	if !ok {
		return Event{Kind: KindNobody, Container: Stack}
	}

	return Event{Kind: KindRemoved, Container: Stack, Names: []string{name}}
}

// EmptyStack pops everyone, newest first.
func (c *Control) EmptyStack() Event {
	if c.stack.Empty() {
		return Event{Kind: KindAlreadyEmpty, Container: Stack}
	}
	removed := make([]string, 0, c.stack.Len())
	for !c.stack.Empty() {
		name, _ := c.stack.Pop()
		removed = append(removed, name)
	}

	return Event{Kind: KindDrained, Container: Stack, Names: removed}
}

// StackContents lists the Stack newest first without changing it.
func (c *Control) StackContents() Event {
	if c.stack.Empty() {
		return Event{Kind: KindEmpty, Container: Stack}
	}

	return Event{Kind: KindContents, Container: Stack, Names: c.stack.Items()}
}

// AddToQueue appends name to the back of the Queue.
func (c *Control) AddToQueue(name string) Event {
	c.queue.Enqueue(name)

	return Event{Kind: KindAdded, Container: Queue, Names: []string{name}}
}

// RemoveFromQueue dequeues the person who has waited longest.
func (c *Control) RemoveFromQueue() Event {
	name, ok := c.queue.Dequeue()
	if !ok {
		return Event{Kind: KindNobody, Container: Queue}
	}

	return Event{Kind: KindRemoved, Container: Queue, Names: []string{name}}
}

// EmptyQueue dequeues everyone, oldest first.
func (c *Control) EmptyQueue() Event {
	if c.queue.Empty() {
		return Event{Kind: KindAlreadyEmpty, Container: Queue}
	}
	removed := make([]string, 0, c.queue.Len())
	for !c.queue.Empty() {
		name, _ := c.queue.Dequeue()
		removed = append(removed, name)
	}

	return Event{Kind: KindDrained, Container: Queue, Names: removed}
}

// QueueContents lists the Queue oldest first without changing it.
func (c *Control) QueueContents() Event {
	if c.queue.Empty() {
		return Event{Kind: KindEmpty, Container: Queue}
	}

	return Event{Kind: KindContents, Container: Queue, Names: c.queue.Items()}
}

// StackLen and QueueLen report current sizes.
func (c *Control) StackLen() int { return c.stack.Len() }

func (c *Control) QueueLen() int { return c.queue.Len() }
