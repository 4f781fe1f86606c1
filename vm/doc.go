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

// Package vm implements an Intcode virtual machine.
//
// Intcode programs are sequences of signed integers (Words) loaded into a
// linear memory (the Tape). Code and data share the tape and programs are free
// to modify themselves. Instructions are encoded in a single cell: the two
// low decimal digits select the opcode, and each of the following decimal
// digits selects the addressing mode of the corresponding parameter:
//
//	mode	name		read			write
//	----	----		----			-----
//	0	position	tape[v]			v
//	1	immediate	v			invalid
//	2	relative	tape[base+v]		base+v
//
// Supported opcodes:
//
//	opcode	asm	params	description
//	------	---	------	------------------------------------------------
//	1	add	a b d	d = a + b
//	2	mul	a b d	d = a * b
//	3	in	d	d = next input value, or suspend if none is available
//	4	out	s	append s to the output queue
//	5	jt	p t	jump to t if p != 0
//	6	jf	p t	jump to t if p == 0
//	7	lt	a b d	d = 1 if a < b else 0
//	8	eq	a b d	d = 1 if a == b else 0
//	9	arb	n	base += n
//	99	hlt		halt
//
// Reading past the end of the tape yields 0. Writing past the end grows the
// tape with zeroes up to and including the written address.
// Writes and jumps at or above the tape size limit (see MaxTapeSize) are
// fatal, which also keeps addresses within the range of int on 32 bits
// platforms.
//
// I/O is modeled as two FIFO queues. An Instance runs synchronously inside
// Run until it either halts or executes an input instruction while the input
// queue is empty. In the latter case Run returns with the Instance in the
// Waiting state and the PC parked on the input instruction; pushing more input
// and calling Run again resumes execution where it left off:
//
//	i, _ := vm.New(tape)
//	for {
//		if err := i.Run(); err != nil {
//			return err
//		}
//		out := i.Output()
//		// process output...
//		if i.State() == vm.Done {
//			break
//		}
//		i.PushInput(next)
//	}
//
// Malformed programs (invalid opcodes or parameter modes, immediate mode
// destinations and negative addresses) are fatal: Run returns an error whose
// cause is one of the Err* sentinel values and the Instance is left as it was
// when the fault occurred.
package vm
