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

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

var mnemonics = map[string]vm.Opcode{
	"add":  vm.OpAdd,
	"mul":  vm.OpMul,
	"in":   vm.OpIn,
	"out":  vm.OpOut,
	"jt":   vm.OpJumpIfTrue,
	"jnz":  vm.OpJumpIfTrue,
	"jf":   vm.OpJumpIfFalse,
	"jz":   vm.OpJumpIfFalse,
	"lt":   vm.OpLessThan,
	"eq":   vm.OpEqual,
	"arb":  vm.OpAdjustBase,
	"rbo":  vm.OpAdjustBase,
	"hlt":  vm.OpHalt,
	"halt": vm.OpHalt,
}

var pow10 = [...]vm.Word{100, 1000, 10000, 100000}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting tape and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Tape, error) {
	p := newParser()
	if err := p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.i[:p.end], nil
}

// decodable returns true if the instruction in cell can be disassembled into
// something that assembles back to the same cell.
func decodable(cell vm.Word) bool {
	op := vm.Opcode(cell % 100)
	if cell < 0 || !op.Valid() {
		return false
	}
	modes := cell / 100
	for k := 0; k < op.Params(); k++ {
		m := vm.Mode(modes % 10)
		if m > vm.Relative || m == vm.Immediate && k == op.Dest() {
			return false
		}
		modes /= 10
	}
	return modes == 0
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given slice to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not hold a valid instruction, or whose operands extend past the
// end of the slice, are written as a .dat directive so that the output can
// always be fed back to Assemble.
func Disassemble(t []vm.Word, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)

	cell := t[pc]
	op := vm.Opcode(cell % 100)
	if !decodable(cell) || pc+op.Params() >= len(t) {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(cell), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, op.String())
	modes := cell / 100
	pc++
	for k := 0; k < op.Params(); k++ {
		ew.Write([]byte{' '})
		switch vm.Mode(modes % 10) {
		case vm.Immediate:
			ew.Write([]byte{'#'})
		case vm.Relative:
			ew.Write([]byte{'@'})
		}
		modes /= 10
		io.WriteString(ew, strconv.FormatInt(int64(t[pc]), 10))
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (t[0]). It will return any write error.
func DisassembleAll(t []vm.Word, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(t); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(t, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
