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
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// writeCells writes cells as program text: comma separated decimals plus a
// trailing newline, reloadable with -program.
func writeCells(w io.Writer, cells []vm.Cell) error {
	ew := ici.NewErrWriter(w)
	for n, v := range cells {
		if n > 0 {
			ew.Write([]byte{','})
		}
		ew.WriteString(strconv.FormatInt(int64(v), 10))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}

// dumpVM dumps the machine memory, in address order up to the highest
// materialized cell, to the specified io.Writer.
func dumpVM(m *vm.Instance, w io.Writer) error {
	max := vm.Cell(-1)
	for a := range m.Mem {
		if a > max {
			max = a
		}
	}
	return writeCells(w, m.Core(max+1))
}

// saveImage writes the image as program text to file fileName.
func saveImage(fileName string, img vm.Image) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	err = writeCells(f, img)
	return errors.Wrap(err, "save failed")
}
