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
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	img     []vm.Cell
	pc      int
	max     int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	err     error
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.img) {
		p.img = append(p.img, make([]vm.Cell, 1024)...)
	}
	p.img[p.pc] = v
	p.pc++
	if p.pc > p.max {
		p.max = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Pos(), -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Pos(), p.pc})
}

func scanError(s *scanner.Scanner, msg string) error {
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	return fmt.Errorf("%s: %s", pos, msg)
}

// number resolves a token that must be an integer, a character literal or a
// constant. Label references are not accepted.
func (p *parser) number(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		if r, _, _, err := strconv.UnquoteChar(s[1:len(s)-1], '\''); err == nil {
			return vm.Cell(r), true
		}
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// value resolves a token to a cell value: integer, character literal,
// constant, or label reference. Label references are recorded for fixup and
// resolve to 0 until the end of the parse.
func (p *parser) value(s string) vm.Cell {
	if v, ok := p.number(s); ok {
		return v
	}
	if s[0] == '\'' {
		p.err = scanError(&p.s, "invalid character literal "+s)
		return 0
	}
	p.useLabel(s)
	return 0
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Cell, error) {
	// parser states
	const (
		stTop     = iota // accept anything
		stArg            // instruction operand
		stOrg            // .org argument
		stEquVal         // .equ value
		stDat            // .dat argument
	)
	var (
		state int
		instr int     // image index of the instruction word being assembled
		op    vm.Cell // opcode of that instruction
		argn  int     // 1-based index of the expected operand
	)

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.err = scanError(s, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); p.err == nil && tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.err = scanError(&p.s, "unexpected character "+strconv.QuoteRune(tok))
			break
		}
		s := p.s.TokenText()
		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); p.err == nil && tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}

		switch {
		case s[0] == ':':
			if state != stTop {
				p.err = scanError(&p.s, "unexpected label definition as argument: "+s)
				break
			}
			n := s[1:]
			if len(n) == 0 {
				p.err = scanError(&p.s, "empty label name")
				break
			}
			if cst, ok := p.consts[n]; ok {
				p.err = scanError(&p.s, "label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
				break
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.err = scanError(&p.s, "label redefinition: "+n+", previous definition here: "+l.pos.String())
					break
				}
				l.address = p.pc
				l.pos = p.s.Pos()
			} else {
				p.labels[n] = &label{labelSite{p.s.Pos(), p.pc}, nil}
			}
		case s[0] == '.':
			if state != stTop {
				p.err = scanError(&p.s, "unexpected directive as argument: "+s)
				break
			}
			switch s {
			case ".org":
				state = stOrg
			case ".dat":
				state = stDat
			case ".equ":
				if t := p.s.Scan(); t != scanner.Ident {
					p.err = scanError(&p.s, ".equ: expected identifier, got "+p.s.TokenText())
					break
				}
				p.cstName = p.s.TokenText()
				if l, ok := p.labels[p.cstName]; ok {
					p.err = scanError(&p.s, ".equ: redefinition of "+p.cstName+", previously defined or used as a label here: "+l.pos.String())
					break
				}
				p.cstPos = p.s.Pos()
				state = stEquVal
			default:
				p.err = scanError(&p.s, "unknown dot directive: "+s)
			}
		default:
			if code, ok := opcodeIndex[s]; ok {
				if state != stTop {
					p.err = scanError(&p.s, "unexpected opcode as argument: "+s)
					break
				}
				op, instr = code, p.pc
				p.write(code)
				if vm.Arity(code) > 0 {
					argn = 1
					state = stArg
				}
				break
			}
			// a value token, with an optional addressing mode prefix
			m, val := vm.Position, s
			switch s[0] {
			case '#':
				m, val = vm.Immediate, s[1:]
			case '@':
				m, val = vm.Relative, s[1:]
			}
			if m != vm.Position && state != stArg {
				p.err = scanError(&p.s, "addressing mode prefix outside of an instruction: "+s)
				break
			}
			if len(val) == 0 {
				p.err = scanError(&p.s, "missing value after addressing mode prefix: "+s)
				break
			}
			switch state {
			case stOrg:
				v, ok := p.number(val)
				if !ok {
					p.err = scanError(&p.s, "unexpected label as directive argument: "+s)
					break
				}
				if v < 0 {
					p.err = scanError(&p.s, ".org: negative address "+val)
					break
				}
				p.pc = int(v)
				state = stTop
			case stEquVal:
				v, ok := p.number(val)
				if !ok {
					p.err = scanError(&p.s, "unexpected label as directive argument: "+s)
					break
				}
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
				state = stTop
			case stDat:
				p.write(p.value(val))
				state = stTop
			case stArg:
				if m == vm.Immediate && argn == vm.WriteParam(op) {
					p.err = scanError(&p.s, "immediate mode forbidden for write parameter of "+vm.Name(op))
					break
				}
				p.img[instr] += m * modeWeight[argn]
				p.write(p.value(val))
				if argn++; argn > vm.Arity(op) {
					state = stTop
				}
			default:
				// raw data cell
				p.write(p.value(val))
			}
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	if state != stTop {
		return nil, scanError(&p.s, "unexpected EOF")
	}

	// write labels
	for n, l := range p.labels {
		if l.address == -1 {
			return nil, fmt.Errorf("missing label definition for %s, first use here: %s", n, l.uses[0].pos)
		}
		for _, u := range l.uses {
			p.img[u.address] = vm.Cell(l.address)
		}
	}
	return p.img[:p.max], nil
}
