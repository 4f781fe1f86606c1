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

// Opcode is the low two decimal digits of an instruction cell.
type Opcode Word

// Intcode Virtual Machine Opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEqual
	OpAdjustBase
	OpHalt Opcode = 99
)

type opInfo struct {
	name  string
	argc  int
	dest  int // index of the destination parameter, -1 if none
	valid bool
}

var opcodes = [100]opInfo{
	OpAdd:         {"add", 3, 2, true},
	OpMul:         {"mul", 3, 2, true},
	OpIn:          {"in", 1, 0, true},
	OpOut:         {"out", 1, -1, true},
	OpJumpIfTrue:  {"jt", 2, -1, true},
	OpJumpIfFalse: {"jf", 2, -1, true},
	OpLessThan:    {"lt", 3, 2, true},
	OpEqual:       {"eq", 3, 2, true},
	OpAdjustBase:  {"arb", 1, -1, true},
	OpHalt:        {"hlt", 0, -1, true},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opcodes) && opcodes[op].valid
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if !op.Valid() {
		return "invalid"
	}
	return opcodes[op].name
}

// Params returns the number of parameters of op. The PC is advanced by
// 1 + op.Params() after any instruction that does not jump.
func (op Opcode) Params() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].argc
}

// Dest returns the index of the parameter op writes to, or -1 if op does not
// write to memory.
func (op Opcode) Dest() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].dest
}

// Opcodes returns the list of all valid opcodes in increasing order.
func Opcodes() []Opcode {
	var ops []Opcode
	for k := range opcodes {
		if opcodes[k].valid {
			ops = append(ops, Opcode(k))
		}
	}
	return ops
}
