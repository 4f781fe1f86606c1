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
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestParseArgs_defaults(t *testing.T) {
	o, err := parseArgs("intcode", nil)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), o.config)
	require.False(t, o.disasm)
	require.Empty(t, o.outFileName)
}

func TestParseArgs_flags(t *testing.T) {
	o, err := parseArgs("intcode", []string{"-program", "day9.ic", "-in", "1,2", "-in", "-3", "-ascii", "-noraw", "-dump", "-o", "out.ic"})
	require.NoError(t, err)
	require.Equal(t, "day9.ic", o.Program)
	require.Equal(t, []vm.Word{1, 2, -3}, o.Inputs)
	require.True(t, o.ASCII)
	require.False(t, o.Raw)
	require.True(t, o.dump)
	require.Equal(t, "out.ic", o.outFileName)

	_, err = parseArgs("intcode", []string{"-in", "1,x"})
	require.Error(t, err)
	_, err = parseArgs("intcode", []string{"extra"})
	require.Error(t, err)
	_, err = parseArgs("intcode", []string{"-h"})
	require.Equal(t, flag.ErrHelp, err)
}

func TestParseArgs_config(t *testing.T) {
	fn := writeFile(t, "intcode.toml", `
program = "boost.ic"
inputs = [2, 5]
ascii = true
raw = false
debug = true
`)
	o, err := parseArgs("intcode", []string{"-config", fn})
	require.NoError(t, err)
	require.Equal(t, config{
		Program: "boost.ic",
		Inputs:  []vm.Word{2, 5},
		ASCII:   true,
		Raw:     false,
		Debug:   true,
	}, o.config)

	// flags override the file
	o, err = parseArgs("intcode", []string{"-in", "1", "-program", "x.ic", "-config", fn, "-ascii=false"})
	require.NoError(t, err)
	require.Equal(t, "x.ic", o.Program)
	require.Equal(t, []vm.Word{1}, o.Inputs)
	require.False(t, o.ASCII)
	require.True(t, o.Debug)
}

func TestLoadConfig_errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = loadConfig(writeFile(t, "bad.toml", "program = "))
	require.Error(t, err)

	_, err = loadConfig(writeFile(t, "unknown.toml", "program = \"a\"\nfoo = 1\n"))
	require.ErrorContains(t, err, "foo")
}

func TestLoadProgram(t *testing.T) {
	tape, err := loadProgram(writeFile(t, "p.ic", "104,42,99\n"), false)
	require.NoError(t, err)
	require.Equal(t, vm.Tape{104, 42, 99}, tape)

	tape, err = loadProgram(writeFile(t, "p.asm", "out #42 hlt"), true)
	require.NoError(t, err)
	require.Equal(t, vm.Tape{104, 42, 99}, tape)

	_, err = loadProgram(writeFile(t, "bad.asm", "foo"), true)
	require.Error(t, err)
}

func TestRunPlain(t *testing.T) {
	// in a, mul a #3 a, out a, hlt
	tape := vm.Tape{3, 9, 1002, 9, 3, 9, 4, 9, 99, 0}
	i, err := vm.New(tape, vm.Input(14))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, runPlain(i, &b))
	require.Equal(t, "42\n", b.String())

	i, err = vm.New(tape)
	require.NoError(t, err)
	b.Reset()
	err = runPlain(i, &b)
	require.ErrorContains(t, err, "waiting for input")
	require.Empty(t, b.String())
}

func TestDumpFault(t *testing.T) {
	i, err := vm.New(vm.Tape{1101, 1, 2, 5, 42})
	require.NoError(t, err)
	require.Error(t, i.Run())
	var b bytes.Buffer
	dumpFault(&b, i)
	require.True(t, strings.HasPrefix(b.String(), "PC: 4 (42), Base: 0, Instructions: 1\n"))
}
