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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		code string
		want vm.Tape
	}{
		{"empty", "( nothing )", nil},
		{"modes", "add 1 #2 @3", vm.Tape{21001, 1, 2, 3}},
		{"commas", "mul @1, @2, @3", vm.Tape{22202, 1, 2, 3}},
		{"aliases", "jnz #1 #0 jz @0 0 rbo #-5 halt", vm.Tape{1105, 1, 0, 206, 0, 0, 109, -5, 99}},
		{"data", "1 -2 0x10 'A' .dat 7", vm.Tape{1, -2, 16, 65, 7}},
		{"equ", ".equ N 42 out #N .dat N", vm.Tape{104, 42, 42}},
		{"org", ".org 3 hlt", vm.Tape{0, 0, 0, 99}},
		{"forward label", "jt #1 #end 0 :end hlt", vm.Tape{1105, 1, 4, 0, 99}},
		{"label operands", ":x .dat 9 out x out @x out #x", vm.Tape{9, 4, 0, 204, 0, 104, 0}},
		{"large", "out #1219070632396864", vm.Tape{104, 1219070632396864}},
	}
	for _, test := range tests {
		got, err := asm.Assemble(test.name, strings.NewReader(test.code))
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, got, test.name)
	}
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	[un]		( unknown )
	jt #1 #lab	( valid but undef'ed )
	add 1 2 #3
	.org foo
	.zoo
	'yo'
::foo
	`
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	require.Error(t, err)

	errs, ok := err.(asm.ErrAsm)
	require.True(t, ok)
	// undefined labels are reported last
	tokens := []string{"[un]", "#3", "foo", ".zoo", "'yo'", "#lab"}
	require.Len(t, errs, len(tokens), err.Error())
	for k, e := range errs {
		o := e.Pos.Offset
		end := o + len(tokens[k])
		if end > len(code) {
			end = len(code)
		}
		if code[o:end] != tokens[k] {
			t.Errorf("Error message \"%s\" points to %q", e.Msg, code[o:end])
		}
	}
}

func TestAssemble_truncated(t *testing.T) {
	_, err := asm.Assemble("truncated", strings.NewReader("add 1 2"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected end of input")

	_, err = asm.Assemble("missing", strings.NewReader("out :foo hlt"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Missing operand for out")
}

func TestDisassemble_roundTrip(t *testing.T) {
	progs := []vm.Tape{
		{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99},
		{1102, 34915192, 34915192, 7, 4, 7, 99, 0},
		{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8},
		{109, 5, 203, 0, 204, 7, 99},
		// immediate destination and unused mode digits
		{11101, 1, 2, 3, 30001, 0, 0, 0, -1, 1000099},
	}
	for _, p := range progs {
		var b bytes.Buffer
		for pc := 0; pc < len(p); {
			var err error
			pc, err = asm.Disassemble(p, pc, &b)
			require.NoError(t, err)
			b.WriteByte('\n')
		}
		got, err := asm.Assemble("roundtrip", &b)
		require.NoError(t, err, b.String())
		require.Equal(t, p, got, b.String())
	}
}

func TestDisassemble_truncated(t *testing.T) {
	var b bytes.Buffer
	next, err := asm.Disassemble([]vm.Word{1101, 1}, 0, &b)
	require.NoError(t, err)
	require.Equal(t, 1, next)
	require.Equal(t, ".dat 1101", b.String())
}
