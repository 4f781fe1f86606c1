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
	"fmt"
	"io"

	"github.com/db47h/intcode/internal/ici"
)

func dumpWords(w io.Writer, a []Word) {
	for k, v := range a {
		if k > 0 {
			io.WriteString(w, ",")
		}
		fmt.Fprint(w, v)
	}
}

// Dump writes a human readable summary of the instance state, its I/O queues
// and its tape to the specified io.Writer.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	fmt.Fprintf(ew, "state: %v\npc: %d\nbase: %d\ninstructions: %d\n", i.state, i.PC, i.Base, i.insCount)
	if i.err != nil {
		fmt.Fprintf(ew, "error: %v\n", i.err)
	}
	io.WriteString(ew, "input: ")
	dumpWords(ew, i.in.buf[i.in.head:])
	io.WriteString(ew, "\noutput: ")
	dumpWords(ew, i.out.buf[i.out.head:])
	io.WriteString(ew, "\ntape: ")
	dumpWords(ew, i.Tape)
	ew.Write([]byte{'\n'})
	return ew.Err
}
