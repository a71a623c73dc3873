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

package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

type C []vm.Cell

func setup(t *testing.T, name, code string, in C) *vm.Instance {
	t.Helper()
	img, err := asm.Assemble(name, strings.NewReader(code))
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(img, vm.Input(in...))
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func check(t *testing.T, testName string, i *vm.Instance, out C, state vm.State) bool {
	t.Helper()
	if s := i.State(); s != state {
		t.Errorf("%s: bad state %v != %v", testName, s, state)
		return false
	}
	got := i.Drain()
	diff := len(got) != len(out)
	if !diff {
		for n := range out {
			if out[n] != got[n] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%s: output error: expected %d, got %d", testName, out, got)
		return false
	}
	return true
}

var tests = [...]struct {
	name  string
	code  string
	in    C
	out   C
	state vm.State
}{
	{"halt", "halt", nil, nil, vm.Terminated},
	{"add", "add #2 #3 r out r halt :r .dat 0", nil, C{5}, vm.Terminated},
	{"add-neg", "add #100 #-1 r out r halt :r .dat 0", nil, C{99}, vm.Terminated},
	{"mul", "mul #6 #7 r out r halt :r .dat 0", nil, C{42}, vm.Terminated},
	{"echo", "in 0 out 0 halt", C{42}, C{42}, vm.Terminated},
	{"position", "out five halt :five .dat 5", nil, C{5}, vm.Terminated},
	{"relative", "arb #2 out @3 halt .dat 7", nil, C{7}, vm.Terminated},
	{"arb-twice", "arb #5 arb #-3 out @5 halt .dat 9", nil, C{9}, vm.Terminated},
	{"jnz-taken", "jnz #1 #skip out #1 :skip out #2 halt", nil, C{2}, vm.Terminated},
	{"jnz-not-taken", "jnz #0 #skip out #1 :skip out #2 halt", nil, C{1, 2}, vm.Terminated},
	{"jz-taken", "jz #0 #skip out #1 :skip out #2 halt", nil, C{2}, vm.Terminated},
	{"jz-not-taken", "jz #1 #skip out #1 :skip out #2 halt", nil, C{1, 2}, vm.Terminated},
	{"slt", "slt #1 #2 r out r slt #2 #1 r out r halt :r .dat -1", nil, C{1, 0}, vm.Terminated},
	{"seq", "seq #3 #3 r out r seq #3 #4 r out r halt :r .dat -1", nil, C{1, 0}, vm.Terminated},
	{"countdown", "add #3 #0 c :loop out c add c #-1 c jnz c #loop halt :c .dat 0", nil, C{3, 2, 1}, vm.Terminated},
	{"modes-equal", "add #7 #0 p out p out #7 arb #p out @0 halt :p .dat 0", nil, C{7, 7, 7}, vm.Terminated},
	{"input-empty", "out #1 in 0", nil, C{1}, vm.AwaitingInput},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		i := setup(t, test.name, test.code, test.in)
		if err := i.Run(); err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if !check(t, test.name, i, test.out, test.state) {
			// disasm
			var b bytes.Buffer
			b.WriteString(test.name)
			b.WriteString(":\n")
			asm.DisassembleAll(i.Core(vm.Cell(i.Mem.Size())), 0, &b)
			t.Log(b.String())
		}
	}
}

var errTests = [...]struct {
	name string
	img  vm.Image
	err  error
}{
	{"unknown-opcode", vm.Image{98}, vm.ErrUnknownOpcode},
	{"unknown-mode", vm.Image{304, 0}, vm.ErrUnknownAccessMode},
	{"bad-write-mode", vm.Image{11101, 1, 2, 3}, vm.ErrBadParameterMode},
	{"negative-out-address", vm.Image{4, -1}, vm.ErrNegativeAddress},
	{"negative-write-address", vm.Image{1101, 2, 3, -1}, vm.ErrNegativeAddress},
	{"negative-jump", vm.Image{1105, 1, -3}, vm.ErrNegativeAddress},
	{"negative-relative-address", vm.Image{109, -5, 204, 0}, vm.ErrNegativeAddress},
}

func TestCore_errors(t *testing.T) {
	for _, test := range errTests {
		i, err := vm.New(test.img)
		if err != nil {
			t.Fatal(err)
		}
		err = i.Run()
		if errors.Cause(err) != test.err {
			t.Errorf("%s: expected %v, got %v", test.name, test.err, err)
			continue
		}
		if i.State() != vm.Errored {
			t.Errorf("%s: bad state %v != %v", test.name, i.State(), vm.Errored)
		}
	}
}

// the input instruction suspends without touching memory or queues; earlier
// writes stay in place and the resume completes it from scratch.
func TestCore_suspendMidProgram(t *testing.T) {
	i := setup(t, "suspend", `
		add #5 #0 x
		in y
		add x y x
		out x
		halt
	:x	.dat 0
	:y	.dat 0`, nil)
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if i.State() != vm.AwaitingInput {
		t.Fatalf("bad state %v", i.State())
	}
	if i.IP != 4 {
		t.Fatalf("bad ip %d, expected 4 (the input instruction)", i.IP)
	}
	if v := i.Mem.Fetch(13); v != 5 {
		t.Fatalf("lost earlier write: x = %d", v)
	}
	i.Push(3)
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	check(t, "suspend", i, C{8}, vm.Terminated)
}

func TestCore_instructionCount(t *testing.T) {
	i := setup(t, "insCount", "add #3 #0 c :loop out c add c #-1 c jnz c #loop halt :c .dat 0", nil)
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if n := i.InstructionCount(); n != 11 {
		t.Errorf("expected 11 instructions, got %d", n)
	}
}

func BenchmarkRun(b *testing.B) {
	img := vm.Image{1001, 8, -1, 8, 1005, 8, 0, 99, 0}
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		i, err := vm.New(img)
		if err != nil {
			b.Fatal(err)
		}
		i.Mem.Store(8, 100000)
		b.StartTimer()
		if err = i.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
