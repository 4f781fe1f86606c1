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

package ascii_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/require"
)

func assemble(t *testing.T, code string) *vm.Instance {
	t.Helper()
	tape, err := asm.Assemble(t.Name(), strings.NewReader(code))
	require.NoError(t, err)
	i, err := vm.New(tape)
	require.NoError(t, err)
	return i
}

func TestEncodeDecode(t *testing.T) {
	ws := ascii.Encode("Go\n")
	require.Equal(t, []vm.Word{'G', 'o', '\n'}, ws)

	text, values := ascii.Decode(append(ws, 1000, -1, '!'))
	require.Equal(t, "Go\n!", text)
	require.Equal(t, []vm.Word{1000, -1}, values)

	text, values = ascii.Decode(nil)
	require.Empty(t, text)
	require.Nil(t, values)
}

func TestPushLine(t *testing.T) {
	i := assemble(t, "hlt")
	ascii.PushLine(i, "ab")
	require.Equal(t, 3, i.PendingInput())
}

func TestRun_helloWorld(t *testing.T) {
	i, err := vm.New(vm.Tape{4, 3, 101, 72, 14, 3, 101, 1, 4, 4, 5, 3, 16, 99, 29, 7, 0, 3, -67, -12, 87, -8, 3, -6, -8, -67, -23, -10})
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, ascii.Run(i, strings.NewReader(""), &b))
	require.Equal(t, "Hello, world!\n", b.String())
}

// echo reads characters and writes them back until it reads a '.'.
const echo = `
:loop	in c
		eq c #'.' t
		jt t #end
		out c
		jf #0 #loop
:end	out #1000
		hlt
:c		.dat 0
:t		.dat 0
`

func TestRun_echo(t *testing.T) {
	i := assemble(t, echo)
	var b bytes.Buffer
	err := ascii.Run(i, strings.NewReader("hello\nworld.\nignored\n"), &b)
	require.NoError(t, err)
	require.Equal(t, "hello\nworld1000\n", b.String())
	require.Equal(t, vm.Done, i.State())
}

func TestRun_eof(t *testing.T) {
	i := assemble(t, echo)
	var b bytes.Buffer
	err := ascii.Run(i, strings.NewReader("no dot"), &b)
	require.Equal(t, io.EOF, err)
	require.Equal(t, "no dot\n", b.String())
	require.Equal(t, vm.Waiting, i.State())
}

func TestRun_fault(t *testing.T) {
	i := assemble(t, "out #'x' .dat 42")
	var b bytes.Buffer
	err := ascii.Run(i, strings.NewReader(""), &b)
	require.ErrorIs(t, err, vm.ErrBadOpcode)
	// output produced before the fault is not lost
	require.Equal(t, "x", b.String())
}
