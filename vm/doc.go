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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a flat list of signed 64-bit integer cells. Each
// instruction word packs an opcode in its two low decimal digits and one
// addressing mode digit per parameter in the digits above those: 0 resolves
// the parameter through memory (position), 1 uses the parameter value itself
// (immediate), 2 resolves it through memory offset by the relative base
// register. Memory is sparse and unbounded: cells never written read as 0,
// and programs routinely use addresses far past the loaded image as scratch
// space.
//
// A machine communicates with its driver through two unbounded integer
// queues. Run executes instructions until the program halts, an instruction
// fails, or an input instruction finds the input queue empty. In the latter
// case the instruction pointer is rewound to the input instruction itself
// and Run returns with the instance in the AwaitingInput state: push more
// input and call Run again to resume exactly where execution left off. This
// makes it trivial to drive several machines from a single goroutine,
// feeding one machine's output queue into another's input queue; see the
// package examples.
//
// Be aware that the IP is not incremented in a single place: the fetch of an
// instruction word and of each of its parameters advances the IP as a side
// effect, so parameters must be resolved in declared order.
//
// TODO:
//	- add a Reset method to rewind a terminated machine to a fresh image
//	  without reallocating its queues.
package vm
