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

// Package asm provides a simple assembler and disassembler for Intcode
// programs, so that programs need not be written as raw integer lists.
//
// The assembly syntax is free-form: tokens are separated by whitespace and
// an instruction is a mnemonic followed by its operands. Supported
// mnemonics, with their opcode and accepted aliases:
//
//	add  1
//	mul  2	multiply
//	in   3	input
//	out  4	output
//	jnz  5	jump-if-true
//	jz   6	jump-if-false
//	slt  7	less-than
//	seq  8	equals
//	arb  9	adjust-relative-base
//	halt 99	hlt
//
// An operand selects its addressing mode with a prefix: a bare value uses
// position mode (the value is an address), # uses immediate mode, @ uses
// relative mode. The assembler packs the resulting mode digits into the
// instruction word, and rejects # on a write target. Operand values are
// integers in Go syntax, character literals such as 'A', constants, or label
// references.
//
// Anywhere outside an instruction, a bare value emits a raw data cell.
// Three directives and labels complete the language:
//
//	:name		defines the label name at the current address
//	.org n		moves the assembly position to address n
//	.equ name v	defines the constant name with value v
//	.dat v		emits v as a raw data cell (labels allowed)
//
// Comments are enclosed in parentheses; the parentheses must stand apart
// from adjacent tokens:
//
//	( count down from 5 )
//	.equ N 5
//		add #N #0 c
//	:loop
//		out c
//		add c #-1 c
//		jnz c #loop
//		halt
//	:c	.dat 0
package asm
