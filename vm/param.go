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

import "strconv"

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	Position Mode = iota
	Immediate
	Relative
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Param is a decoded instruction parameter.
type Param struct {
	Mode  Mode
	Value Word // raw value of the parameter cell
}

// Decode splits the instruction at address pc into its opcode and parameters.
// The returned error, if not nil, has ErrBadOpcode or ErrBadMode as its cause.
func (i *Instance) Decode(pc int) (op Opcode, params []Param, err error) {
	cell := i.Tape.Read(pc)
	op = Opcode(cell % 100)
	if !op.Valid() {
		return op, nil, &Error{PC: pc, Cell: cell, Err: ErrBadOpcode}
	}
	n := op.Params()
	if n == 0 {
		return op, nil, nil
	}
	params = make([]Param, n)
	modes := cell / 100
	for k := range params {
		m := Mode(modes % 10)
		modes /= 10
		if m > Relative {
			return op, nil, &Error{PC: pc, Cell: cell, Err: ErrBadMode}
		}
		params[k] = Param{m, i.Tape.Read(pc + 1 + k)}
	}
	return op, params, nil
}

// param decodes the k-th parameter of the current instruction.
func (i *Instance) param(modes Word, k int) Param {
	for n := k; n > 0; n-- {
		modes /= 10
	}
	m := Mode(modes % 10)
	if m > Relative {
		i.fault(ErrBadMode, "parameter %d: mode %d", k, m)
	}
	return Param{m, i.Tape.Read(i.PC + 1 + k)}
}

// address returns the effective address of p.
func (i *Instance) address(p Param) Word {
	var a Word
	switch p.Mode {
	case Position:
		a = p.Value
	case Relative:
		a = i.Base + p.Value
	case Immediate:
		i.fault(ErrImmediateWrite, "")
	default:
		i.fault(ErrBadMode, "")
	}
	if a < 0 {
		i.fault(ErrNegativeAddress, "address %d", a)
	}
	return a
}

// dest returns the effective address of p as a destination tape index.
func (i *Instance) dest(p Param) int {
	a := i.address(p)
	if a >= Word(i.maxTape) {
		i.fault(ErrAddressRange, "address %d", a)
	}
	return int(a)
}

// jump sets the PC to target.
func (i *Instance) jump(target Word) {
	if target < 0 {
		i.fault(ErrNegativeAddress, "jump to %d", target)
	}
	if target >= Word(i.maxTape) {
		i.fault(ErrAddressRange, "jump to %d", target)
	}
	i.PC = int(target)
}

// read returns the value of p.
func (i *Instance) read(p Param) Word {
	if p.Mode == Immediate {
		return p.Value
	}
	a := i.address(p)
	if a >= Word(len(i.Tape)) {
		return 0
	}
	return i.Tape[a]
}

// write stores v at the address designated by p.
func (i *Instance) write(p Param, v Word) {
	i.Tape = i.Tape.Write(i.dest(p), v)
}
