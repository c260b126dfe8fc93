// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package event

import "sync"

// Queue hands events from one producer (platform callbacks) to one consumer
// (the application loop). Push never blocks and TryPop never waits.
//
// After Close, Push drops events silently and TryPop reports the queue as
// empty.
type Queue struct {
	mu     sync.Mutex
	items  []Event
	head   int
	closed bool
	drops  uint64
}

// NewQueue returns an empty, open queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends e. It reports false when the queue is closed and the event
// was dropped.
func (q *Queue) Push(e Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.drops++
		return false
	}
	q.items = append(q.items, e)
	return true
}

// TryPop removes and returns the oldest event, or false if there is none.
func (q *Queue) TryPop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || q.head == len(q.items) {
		return nil, false
	}
	e := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return e, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Close discards pending events and makes later pushes no-ops.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.drops += uint64(len(q.items) - q.head)
	q.items = nil
	q.head = 0
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Dropped returns how many events were discarded because the queue was
// closed.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.drops
}
