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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	debug  bool
	logger = zap.NewNop()
)

func loadProgram(fileName string, assembly bool) (vm.Tape, error) {
	if !assembly {
		return vm.Load(fileName)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	return asm.Assemble(fileName, f)
}

// runPlain runs i to completion and prints its output, one value per line.
func runPlain(i *vm.Instance, w io.Writer) error {
	err := i.Run()
	for _, v := range i.Output() {
		fmt.Fprintln(w, v)
	}
	if err == nil && i.State() == vm.Waiting {
		err = errors.Errorf("program waiting for input at pc=%d", i.PC)
	}
	return err
}

// runASCII runs i interactively on stdin/stdout.
func runASCII(i *vm.Instance, raw bool, w io.Writer) error {
	var r io.Reader = os.Stdin
	if raw && isatty.IsTerminal(os.Stdin.Fd()) {
		tearDown, err := setRawIO()
		if err != nil {
			logger.Debug("raw terminal IO unavailable", zap.Error(err))
		} else {
			defer tearDown()
			r = newLineEditor(os.Stdin, os.Stdout)
		}
	}
	err := ascii.Run(i, r, w)
	if err == io.EOF {
		logger.Debug("end of input", zap.Int("pc", i.PC))
		err = nil
	}
	return err
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		dumpFault(os.Stderr, i)
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance
	var o *options

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if err == nil && o != nil && i != nil {
			if o.dump {
				err = i.Dump(stdout)
			}
			if err == nil && o.outFileName != "" {
				err = vm.Save(o.outFileName, i.Tape)
			}
		}
		if e := stdout.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		logger.Sync()
		atExit(i, err)
	}()

	o, err = parseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			err = nil
		}
		return
	}
	debug = o.Debug
	if debug {
		var l *zap.Logger
		if l, err = zap.NewDevelopment(); err != nil {
			return
		}
		logger = l
	}

	tape, err := loadProgram(o.Program, o.Assembly)
	if err != nil {
		return
	}
	logger.Debug("program loaded", zap.String("file", o.Program), zap.Int("size", len(tape)))

	if o.disasm {
		err = asm.DisassembleAll(tape, 0, stdout)
		return
	}

	i, err = vm.New(tape, vm.Input(o.Inputs...), vm.Logger(logger))
	if err != nil {
		return
	}
	if o.ASCII {
		err = runASCII(i, o.Raw, stdout)
	} else {
		err = runPlain(i, stdout)
	}
	logger.Debug("exit", zap.Stringer("state", i.State()), zap.Int64("instructions", i.InstructionCount()))
}
