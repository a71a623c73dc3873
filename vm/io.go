// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

// Push appends v to the input queue. Pushing while the instance is in the
// AwaitingInput state is how a driver resumes a suspended program.
func (i *Instance) Push(v Cell) {
	i.in = append(i.in, v)
}

// PushString appends the byte values of s to the input queue, in order. No
// escaping or newline injection is performed: programs expecting
// line-oriented text input need the terminators included in s.
func (i *Instance) PushString(s string) {
	for _, c := range []byte(s) {
		i.in = append(i.in, Cell(c))
	}
}

// Pending returns the number of input values queued but not yet consumed.
func (i *Instance) Pending() int {
	return len(i.in)
}

// Pop removes and returns the oldest value in the output queue. It does not
// block: ok is false if the queue is empty.
func (i *Instance) Pop() (v Cell, ok bool) {
	if len(i.out) == 0 {
		return 0, false
	}
	v = i.out[0]
	i.out = i.out[1:]
	return v, true
}

// Drain removes and returns the whole output queue in production order.
func (i *Instance) Drain() []Cell {
	out := i.out
	i.out = nil
	return out
}
