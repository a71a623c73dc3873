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

// The intcode command line tool is a console driver for the package
// github.com/db47h/intcode/vm: it loads a program, runs it, feeds it console
// input whenever it suspends waiting for more, and renders its output.
//
// Usage:
//
//	-program filename
//		  load program text (comma separated decimal cells) from filename
//	-asm filename
//		  assemble program source from filename instead of loading text
//	-in values
//		  comma separated cell values pushed as initial input (can be
//		  specified multiple times)
//	-ascii
//		  feed console lines to the program as raw ASCII bytes
//	-trace
//		  log every executed instruction and enable debug diagnostics
//	-disasm
//		  disassemble the program and exit
//	-o filename
//		  write the loaded image as program text to filename and exit
//	-dump
//		  dump memory as program text upon clean exit
//
// Exactly one of -program and -asm must be given.
//
// Whenever the machine suspends on an empty input queue, one line is read
// from standard input. By default the line is parsed as comma or whitespace
// separated integers; with -ascii the byte values of the line, newline
// included, are pushed instead, which is what programs speaking the ASCII
// convention expect.
//
// Output values in [0,256) are printed as ASCII characters, anything else as
// a decimal number on its own line.
//
// -o combined with -asm turns the tool into a plain assembler:
//
//	intcode -asm prog.ics -o prog.ic
//
// -trace enables zap debug logging of every instruction executed (ip, raw
// word, mnemonic) on standard error, and full stack traces on failures.
package main
