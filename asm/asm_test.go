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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		code string
		img  vm.Image
	}{
		{"echo", "in 0 out 0 halt", vm.Image{3, 0, 4, 0, 99}},
		{"modes", "add #100 #-1 4 .dat 0", vm.Image{1101, 100, -1, 4, 0}},
		{"relative", "arb #1 out @-1 halt", vm.Image{109, 1, 204, -1, 99}},
		{"labels", "out v halt :v .dat 7", vm.Image{4, 3, 99, 7}},
		{"labels-both-ways", ":top jnz #0 #top jz #1 #end out #1 :end halt",
			vm.Image{1105, 0, 0, 1106, 1, 8, 104, 1, 99}},
		{"equ", ".equ N 3 out #N halt", vm.Image{104, 3, 99}},
		{"char", "out #'A' halt", vm.Image{104, 65, 99}},
		{"org", "out #1 halt .org 5 .dat 9", vm.Image{104, 1, 99, 0, 0, 9}},
		{"dat-list", ".dat 1 .dat -2 .dat 3", vm.Image{1, -2, 3}},
		{"comment", "( nothing to see ) halt", vm.Image{99}},
		{"aliases", "input 0 output 0 hlt", vm.Image{3, 0, 4, 0, 99}},
		{"long-names", "jump-if-true #1 #0 adjust-relative-base #0 less-than 0 0 0 equals 0 0 0 halt",
			vm.Image{1105, 1, 0, 109, 0, 7, 0, 0, 0, 8, 0, 0, 0, 99}},
	}
	for _, test := range tests {
		img, err := asm.Assemble(test.name, strings.NewReader(test.code))
		require.NoError(t, err, test.name)
		assert.Equal(t, test.img, img, test.name)
	}
}

func TestAssemble_errors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"immediate-write", "add #1 #2 #3", "immediate mode forbidden"},
		{"unknown-directive", ".foo", "unknown dot directive"},
		{"missing-label", "out missing halt", "missing label definition"},
		{"label-redef", ":a halt :a", "label redefinition"},
		{"opcode-as-arg", "out add", "unexpected opcode"},
		{"truncated", "add #1 #2", "unexpected EOF"},
		{"mode-on-data", ".dat #1", "addressing mode prefix"},
	}
	for _, test := range tests {
		_, err := asm.Assemble(test.name, strings.NewReader(test.code))
		require.Error(t, err, test.name)
		assert.Contains(t, err.Error(), test.want, test.name)
	}
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		name string
		img  []vm.Cell
		pc   int
		next int
		text string
	}{
		{"position", []vm.Cell{1, 2, 3, 4}, 0, 4, "add 2 3 4"},
		{"immediate", []vm.Cell{1101, 100, -1, 4}, 0, 4, "add #100 #-1 4"},
		{"relative", []vm.Cell{204, -1}, 0, 2, "out @-1"},
		{"halt", []vm.Cell{99}, 0, 1, "halt"},
		{"immediate-write", []vm.Cell{11101, 1, 2, 3}, 0, 1, ".dat 11101"},
		{"not-an-opcode", []vm.Cell{42}, 0, 1, ".dat 42"},
		{"negative-word", []vm.Cell{-1}, 0, 1, ".dat -1"},
		{"truncated", []vm.Cell{104}, 0, 1, "out ???"},
	}
	for _, test := range tests {
		var b bytes.Buffer
		next, err := asm.Disassemble(test.img, test.pc, &b)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.next, next, test.name)
		assert.Equal(t, test.text, b.String(), test.name)
	}
}

// disassembling an image one instruction at a time and feeding the text back
// to the assembler must rebuild the exact same image.
func TestDisassemble_roundTrip(t *testing.T) {
	quine := vm.Image{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	var b bytes.Buffer
	for pc := 0; pc < len(quine); {
		var err error
		pc, err = asm.Disassemble(quine, pc, &b)
		require.NoError(t, err)
		b.WriteByte('\n')
	}
	img, err := asm.Assemble("roundtrip", &b)
	require.NoError(t, err)
	assert.Equal(t, quine, img)
}
