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
	"fmt"
	"io"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// dumpFault prints the machine registers and the instruction at PC.
func dumpFault(w io.Writer, i *vm.Instance) {
	fmt.Fprintf(w, "PC: %d (%d), Base: %d, Instructions: %d\n", i.PC, i.Tape.Read(i.PC), i.Base, i.InstructionCount())
	if i.PC < 0 || i.PC >= len(i.Tape) {
		return
	}
	asm.Disassemble(i.Tape, i.PC, w)
	fmt.Fprintln(w)
}
