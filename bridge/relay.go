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
package bridge

import "github.com/ianlewis/go-aynary/internal/queue"

// Relay carries commands from the bus goroutine to a single consumer. Pushes
// never block and commands are drained in the order they were pushed.
type Relay struct {
	q *queue.Queue[Command]
}

// NewRelay returns an empty Relay.
func NewRelay() *Relay {
	return &Relay{
		q: queue.New[Command](),
	}
}

// Push enqueues a command.
func (r *Relay) Push(c Command) {
	r.q.Push(c)
}

// Drain removes and returns all pending commands, oldest first.
func (r *Relay) Drain() []Command {
	return r.q.Drain()
}

// Len returns the number of pending commands.
func (r *Relay) Len() int {
	return r.q.Len()
}

// Ready returns a channel which receives a value after commands are pushed.
func (r *Relay) Ready() <-chan struct{} {
	return r.q.Ready()
}
