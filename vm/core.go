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

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Errors reported by Run. Run wraps them with positional context; use
// errors.Cause to compare.
var (
	// ErrUnknownOpcode is reported when the instruction word modulo 100 is
	// not in the opcode table. The instance moves to the Errored state.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrUnknownAccessMode is reported when a parameter's addressing mode
	// digit is not 0, 1 or 2. The instance moves to the Errored state.
	ErrUnknownAccessMode = errors.New("unknown access mode")
	// ErrBadParameterMode is reported when a write target uses immediate
	// mode. The instance moves to the Errored state.
	ErrBadParameterMode = errors.New("bad parameter mode")
	// ErrNegativeAddress is reported when parameter resolution or a jump
	// yields an address below 0. The instance moves to the Errored state.
	ErrNegativeAddress = errors.New("negative address")
	// ErrTerminated is reported by Run when called on an instance in a
	// terminal state. The state is left as is.
	ErrTerminated = errors.New("program terminated")
)

// powers of ten used to extract the mode digit of parameter n (1-based),
// located at 10^(1+n) in the instruction word.
var modeWeight = [...]Cell{0, 100, 1000, 10000}

// mode returns the addressing mode digit of parameter n of the given
// instruction word.
func mode(word Cell, n int) Cell {
	return word / modeWeight[n] % 10
}

// arg resolves parameter n of the instruction word for reading and advances
// the IP past it.
func (i *Instance) arg(word Cell, n int) (Cell, error) {
	raw := i.Mem.Fetch(i.IP)
	i.IP++
	switch m := mode(word, n); m {
	case Position:
		if raw < 0 {
			return 0, errors.Wrapf(ErrNegativeAddress, "parameter %d @ip=%d", n, i.IP-1)
		}
		return i.Mem.Fetch(raw), nil
	case Immediate:
		return raw, nil
	case Relative:
		addr := raw + i.RelBase
		if addr < 0 {
			return 0, errors.Wrapf(ErrNegativeAddress, "parameter %d @ip=%d", n, i.IP-1)
		}
		return i.Mem.Fetch(addr), nil
	default:
		return 0, errors.Wrapf(ErrUnknownAccessMode, "mode digit %d for parameter %d @ip=%d", m, n, i.IP-1)
	}
}

// dest resolves parameter n of the instruction word as a write target and
// advances the IP past it. Identical to arg except that immediate mode is
// rejected.
func (i *Instance) dest(word Cell, n int) (Cell, error) {
	raw := i.Mem.Fetch(i.IP)
	i.IP++
	var addr Cell
	switch m := mode(word, n); m {
	case Position:
		addr = raw
	case Relative:
		addr = raw + i.RelBase
	case Immediate:
		return 0, errors.Wrapf(ErrBadParameterMode, "immediate write parameter %d @ip=%d", n, i.IP-1)
	default:
		return 0, errors.Wrapf(ErrUnknownAccessMode, "mode digit %d for parameter %d @ip=%d", m, n, i.IP-1)
	}
	if addr < 0 {
		return 0, errors.Wrapf(ErrNegativeAddress, "parameter %d @ip=%d", n, i.IP-1)
	}
	return addr, nil
}

// args2 resolves two source parameters in declared order.
func (i *Instance) args2(word Cell) (a, b Cell, err error) {
	if a, err = i.arg(word, 1); err != nil {
		return
	}
	b, err = i.arg(word, 2)
	return
}

// args3 resolves the standard three-parameter shape: two source parameters
// followed by one write target.
func (i *Instance) args3(word Cell) (a, b, dst Cell, err error) {
	if a, b, err = i.args2(word); err != nil {
		return
	}
	dst, err = i.dest(word, 3)
	return
}

// Run starts or resumes execution of the VM and returns when the program
// halts (state Terminated), an input instruction finds the input queue empty
// (state AwaitingInput, nil error), or an instruction fails (state Errored).
//
// If an instruction fails, the returned error wraps one of the exported
// error values and the failing instruction's own effect is not applied;
// writes from earlier instructions remain in place. Calling Run again on a
// Terminated or Errored instance fails with ErrTerminated without executing
// anything.
func (i *Instance) Run() error {
	switch i.state {
	case Terminated, Errored:
		return errors.Wrapf(ErrTerminated, "state %v", i.state)
	}
	i.state = Runnable
	for {
		ip := i.IP
		if ip < 0 {
			i.state = Errored
			return errors.Wrapf(ErrNegativeAddress, "ip=%d", ip)
		}
		word := i.Mem.Fetch(ip)
		i.IP++
		op := word % 100
		if i.trace != nil {
			i.trace.Debug("step",
				zap.Int64("ip", int64(ip)),
				zap.Int64("word", int64(word)),
				zap.String("op", Name(op)))
		}
		var err error
		switch op {
		case OpAdd:
			a, b, dst, e := i.args3(word)
			if e == nil {
				i.Mem.Store(dst, a+b)
			}
			err = e
		case OpMul:
			a, b, dst, e := i.args3(word)
			if e == nil {
				i.Mem.Store(dst, a*b)
			}
			err = e
		case OpIn:
			if len(i.in) == 0 {
				// rewind to the input instruction itself so that the next
				// Run re-executes it from scratch
				i.IP = ip
				i.state = AwaitingInput
				return nil
			}
			dst, e := i.dest(word, 1)
			if e == nil {
				i.Mem.Store(dst, i.in[0])
				i.in = i.in[1:]
			}
			err = e
		case OpOut:
			v, e := i.arg(word, 1)
			if e == nil {
				i.out = append(i.out, v)
			}
			err = e
		case OpJnz:
			a, b, e := i.args2(word)
			if e == nil && a != 0 {
				i.IP = b
			}
			err = e
		case OpJz:
			a, b, e := i.args2(word)
			if e == nil && a == 0 {
				i.IP = b
			}
			err = e
		case OpSlt:
			a, b, dst, e := i.args3(word)
			if e == nil {
				if a < b {
					i.Mem.Store(dst, 1)
				} else {
					i.Mem.Store(dst, 0)
				}
			}
			err = e
		case OpSeq:
			a, b, dst, e := i.args3(word)
			if e == nil {
				if a == b {
					i.Mem.Store(dst, 1)
				} else {
					i.Mem.Store(dst, 0)
				}
			}
			err = e
		case OpArb:
			v, e := i.arg(word, 1)
			if e == nil {
				i.RelBase += v
			}
			err = e
		case OpHalt:
			i.insCount++
			i.state = Terminated
			return nil
		default:
			err = errors.Wrapf(ErrUnknownOpcode, "opcode %d @ip=%d", op, ip)
		}
		if err != nil {
			i.state = Errored
			return err
		}
		i.insCount++
	}
}
