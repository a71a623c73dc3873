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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// cellList collects repeatable -in flags, each a comma separated list of
// cell values.
type cellList []vm.Cell

func (l *cellList) String() string { return "" }
func (l *cellList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return err
		}
		*l = append(*l, vm.Cell(v))
	}
	return nil
}
func (l *cellList) Get() interface{} { return *l }

var (
	ascii  bool
	trace  bool
	dump   bool
	disasm bool
)

func atExit(m *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !trace {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	}
	if m != nil {
		fmt.Fprintf(os.Stderr, "ip=%d relbase=%d state=%v\n", m.IP, m.RelBase, m.State())
	}
	os.Exit(1)
}

// render writes output values to w following the usual Intcode console
// convention: values in [0,256) are ASCII character codes, anything else is
// a decimal result on its own line.
func render(w *bufio.Writer, vs []vm.Cell) {
	for _, v := range vs {
		if v >= 0 && v < 256 {
			w.WriteByte(byte(v))
		} else {
			w.WriteString(strconv.FormatInt(int64(v), 10))
			w.WriteByte('\n')
		}
	}
}

// pushNumbers parses a line of comma or whitespace separated integers and
// pushes them onto the machine input queue.
func pushNumbers(m *vm.Instance, line string) error {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return errors.Wrap(err, "bad input value")
		}
		m.Push(vm.Cell(v))
	}
	return nil
}

func loadImage(programName, asmName string) (vm.Image, error) {
	switch {
	case programName != "" && asmName != "":
		return nil, errors.New("-program and -asm are mutually exclusive")
	case asmName != "":
		f, err := os.Open(asmName)
		if err != nil {
			return nil, errors.Wrap(err, "open failed")
		}
		defer f.Close()
		return asm.Assemble(asmName, f)
	case programName != "":
		return vm.Load(programName)
	}
	return nil, errors.New("no program: use -program or -asm")
}

func main() {
	var err error
	var m *vm.Instance

	var inputs cellList
	var programName = flag.String("program", "", "load program text from file `filename`")
	var asmName = flag.String("asm", "", "assemble program source from file `filename`")
	var outName = flag.String("o", "", "write the loaded image as program text to `filename` and exit")
	flag.Var(&inputs, "in", "comma separated cell `values` pushed as initial input (can be specified multiple times)")
	flag.BoolVar(&ascii, "ascii", false, "feed console lines to the program as raw ASCII bytes")
	flag.BoolVar(&trace, "trace", false, "log every executed instruction and enable debug diagnostics")
	flag.BoolVar(&dump, "dump", false, "dump memory as program text upon clean exit")
	flag.BoolVar(&disasm, "disasm", false, "disassemble the program and exit")

	flag.Parse()

	stdout := bufio.NewWriter(os.Stdout)
	defer func() {
		stdout.Flush()
		atExit(m, err)
	}()

	var img vm.Image
	img, err = loadImage(*programName, *asmName)
	if err != nil {
		return
	}

	switch {
	case disasm:
		err = asm.DisassembleAll(img, 0, stdout)
		return
	case *outName != "":
		err = saveImage(*outName, img)
		return
	}

	opts := []vm.Option{vm.Input(inputs...)}
	if trace {
		var logger *zap.Logger
		logger, err = zap.NewDevelopment()
		if err != nil {
			return
		}
		defer logger.Sync()
		opts = append(opts, vm.Trace(logger))
	}
	m, err = vm.New(img, opts...)
	if err != nil {
		return
	}

	stdin := bufio.NewReader(os.Stdin)
	for {
		err = m.Run()
		render(stdout, m.Drain())
		if err != nil || m.State() != vm.AwaitingInput {
			break
		}
		stdout.Flush()
		line, e := stdin.ReadString('\n')
		if line == "" && e != nil {
			err = errors.Wrap(e, "input exhausted")
			break
		}
		if ascii {
			m.PushString(line)
		} else if err = pushNumbers(m, line); err != nil {
			break
		}
	}
	if err == nil && dump {
		err = dumpVM(m, stdout)
	}
}
