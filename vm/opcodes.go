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

// Intcode Virtual Machine opcodes. The opcode is the instruction word modulo
// 100; the decimal digits above it select the addressing mode of each
// parameter.
const (
	OpAdd  Cell = 1  // mem[c] = a + b
	OpMul  Cell = 2  // mem[c] = a * b
	OpIn   Cell = 3  // mem[a] = next input value; suspends on empty input
	OpOut  Cell = 4  // append a to the output queue
	OpJnz  Cell = 5  // if a != 0, IP = b
	OpJz   Cell = 6  // if a == 0, IP = b
	OpSlt  Cell = 7  // mem[c] = 1 if a < b else 0
	OpSeq  Cell = 8  // mem[c] = 1 if a == b else 0
	OpArb  Cell = 9  // relative base += a
	OpHalt Cell = 99 // stop, state = Terminated
)

// Parameter addressing modes.
const (
	Position  Cell = 0 // parameter is an address
	Immediate Cell = 1 // parameter is the operand itself; illegal as a write target
	Relative  Cell = 2 // parameter plus the relative base is an address
)

var opcodeNames = map[Cell]string{
	OpAdd:  "add",
	OpMul:  "mul",
	OpIn:   "in",
	OpOut:  "out",
	OpJnz:  "jnz",
	OpJz:   "jz",
	OpSlt:  "slt",
	OpSeq:  "seq",
	OpArb:  "arb",
	OpHalt: "halt",
}

var opcodeArity = map[Cell]int{
	OpAdd:  3,
	OpMul:  3,
	OpIn:   1,
	OpOut:  1,
	OpJnz:  2,
	OpJz:   2,
	OpSlt:  3,
	OpSeq:  3,
	OpArb:  1,
	OpHalt: 0,
}

// write targets are always the last parameter
var opcodeWriteParam = map[Cell]int{
	OpAdd: 3,
	OpMul: 3,
	OpSlt: 3,
	OpSeq: 3,
	OpIn:  1,
}

// Name returns the mnemonic for the given opcode, or "" if op is not a valid
// opcode.
func Name(op Cell) string {
	return opcodeNames[op]
}

// Arity returns the number of parameters of the given opcode, or -1 if op is
// not a valid opcode.
func Arity(op Cell) int {
	if a, ok := opcodeArity[op]; ok {
		return a
	}
	return -1
}

// WriteParam returns the 1-based index of the given opcode's write
// parameter, or 0 if the opcode has none.
func WriteParam(op Cell) int {
	return opcodeWriteParam[op]
}
