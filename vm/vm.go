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

import "go.uber.org/zap"

// Cell is the raw type stored in a memory location.
type Cell int64

// State of an Instance. The zero value is Runnable.
type State int

// Instance states. Terminated and Errored are terminal: calling Run on an
// instance in either state fails with ErrTerminated. AwaitingInput is
// resumable: push input and call Run again.
const (
	Runnable State = iota
	AwaitingInput
	Terminated
	Errored
)

func (s State) String() string {
	switch s {
	case Runnable:
		return "runnable"
	case AwaitingInput:
		return "awaiting input"
	case Terminated:
		return "terminated"
	case Errored:
		return "error"
	}
	return "unknown"
}

// Instance represents an Intcode VM instance. An instance exclusively owns
// its memory and its input and output queues; drivers interact with a
// running program only through Push, PushString, Pop and Drain.
type Instance struct {
	IP      Cell // address of the next instruction word to fetch
	RelBase Cell // relative addressing base register
	Mem     Memory

	state    State
	in       []Cell
	out      []Cell
	insCount int64
	trace    *zap.Logger
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(vs ...Cell) Option {
	return func(i *Instance) error {
		for _, v := range vs {
			i.Push(v)
		}
		return nil
	}
}

// InputString appends the byte values of s to the input queue, in order.
// See PushString.
func InputString(s string) Option {
	return func(i *Instance) error { i.PushString(s); return nil }
}

// Trace configures a logger on which every executed instruction is reported
// at debug level. A nil logger disables tracing (the default).
func Trace(l *zap.Logger) Option {
	return func(i *Instance) error { i.trace = l; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance with the given image loaded at
// address 0 and options set by calling SetOptions.
func New(img Image, opts ...Option) (*Instance, error) {
	i := &Instance{Mem: make(Memory, len(img)+64)}
	for a, v := range img {
		i.Mem[Cell(a)] = v
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// State returns the execution state of the instance.
func (i *Instance) State() State {
	return i.state
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Core returns a copy of the first n memory cells in address order. Cells
// never touched by the program read as 0 and are not materialized. Handy for
// dumps and disassembly.
func (i *Instance) Core(n Cell) []Cell {
	c := make([]Cell, n)
	for a := range c {
		c[a] = i.Mem[Cell(a)]
	}
	return c
}
