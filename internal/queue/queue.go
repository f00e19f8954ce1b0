// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package queue implements an unbounded FIFO queue for handing values from
// any number of producers to a single consumer.
package queue

import "sync"

// Queue is an unbounded, ordered and thread-safe queue. Push never blocks.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T

	// ready is buffered so that Push never blocks.
	ready chan struct{}
}

// New returns a new empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		ready: make(chan struct{}, 1),
	}
}

// Push appends v to the end of the queue and wakes the consumer.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
		// A wake up is already pending.
	}
}

// Drain removes and returns every queued value in the order pushed.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Ready returns a channel which receives a value after one or more Push
// calls. Receiving from it does not remove any values.
func (q *Queue[T]) Ready() <-chan struct{} {
	return q.ready
}
