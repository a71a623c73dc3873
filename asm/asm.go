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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// mnemonics and aliases accepted by the assembler
var opcodeIndex = map[string]vm.Cell{
	"add": vm.OpAdd,
	"mul": vm.OpMul, "multiply": vm.OpMul,
	"in": vm.OpIn, "input": vm.OpIn,
	"out": vm.OpOut, "output": vm.OpOut,
	"jnz": vm.OpJnz, "jump-if-true": vm.OpJnz,
	"jz": vm.OpJz, "jump-if-false": vm.OpJz,
	"slt": vm.OpSlt, "less-than": vm.OpSlt,
	"seq": vm.OpSeq, "equals": vm.OpSeq,
	"arb": vm.OpArb, "adjust-relative-base": vm.OpArb,
	"halt": vm.OpHalt, "hlt": vm.OpHalt,
}

// mode digit of parameter n sits at 10^(1+n) in the instruction word
var modeWeight = [...]vm.Cell{0, 100, 1000, 10000}

// Assemble compiles assembly read from the supplied io.Reader and returns
// the resulting image and error if any.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (vm.Image, error) {
	p := newParser()
	img, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return vm.Image(img), nil
}

// validModes reports whether every decimal digit of word above the opcode is
// a valid addressing mode for its parameter, with no leftover digits and no
// immediate mode write target.
func validModes(word, op vm.Cell, arity int) bool {
	if word < 0 {
		return false
	}
	rest := word / 100
	for n := 1; n <= arity; n++ {
		d := rest % 10
		if d > vm.Relative {
			return false
		}
		if d == vm.Immediate && n == vm.WriteParam(op) {
			return false
		}
		rest /= 10
	}
	return rest == 0
}

// Disassemble writes a disassembly of the cells at position pc in the given
// slice to the specified io.Writer and returns the position of the next
// instruction and any write error. Words that do not decode to a valid
// instruction are rendered as .dat directives.
func Disassemble(img []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*ici.ErrWriter)
	if ew == nil {
		ew = ici.NewErrWriter(w)
	}
	word := img[pc]
	op := word % 100
	arity := vm.Arity(op)
	if arity < 0 || !validModes(word, op, arity) {
		ew.WriteString(".dat ")
		ew.WriteString(strconv.FormatInt(int64(word), 10))
		return pc + 1, ew.Err
	}
	ew.WriteString(vm.Name(op))
	for n := 1; n <= arity; n++ {
		ew.Write([]byte{' '})
		if pc+n >= len(img) {
			ew.WriteString("???")
			return len(img), ew.Err
		}
		switch word / modeWeight[n] % 10 {
		case vm.Immediate:
			ew.Write([]byte{'#'})
		case vm.Relative:
			ew.Write([]byte{'@'})
		}
		ew.WriteString(strconv.FormatInt(int64(img[pc+n]), 10))
	}
	return pc + 1 + arity, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to the
// specified io.Writer. The base argument specifies the real address of the
// first cell (img[0]). It will return any write error.
func DisassembleAll(img []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
