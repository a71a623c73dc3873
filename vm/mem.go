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

// Memory is a VM's address space: a sparse, auto-growing mapping from cell
// addresses to cell values. There is no upper bound on addresses. Negative
// addresses are a caller error, guarded against by the interpreter, not by
// Memory itself.
type Memory map[Cell]Cell

// Fetch returns the value stored at addr. Fetching an address never written
// returns 0 and materializes the address, so that Size and dumps account for
// every cell the program ever touched.
func (m Memory) Fetch(addr Cell) Cell {
	v, ok := m[addr]
	if !ok {
		m[addr] = 0
	}
	return v
}

// Store stores v at addr, inserting or overwriting as needed.
func (m Memory) Store(addr, v Cell) {
	m[addr] = v
}

// Size returns the number of materialized cells.
func (m Memory) Size() int {
	return len(m)
}
