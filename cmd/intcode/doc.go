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

// The intcode command line tool runs Intcode programs.
//
// Usage:
//
//	-ascii
//		  run in interactive ASCII mode
//	-asm
//		  the program file is assembly source
//	-config filename
//		  load settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  disassemble the program and exit
//	-dump
//		  dump VM state upon exit
//	-in values
//		  comma separated values to push to the input queue (can be specified multiple times)
//	-noraw
//		  disable raw terminal IO in ASCII mode
//	-o filename
//		  save final tape to filename
//	-program filename
//		  load program from file filename (default "input")
//
// By default, the program runs with the input values given by -in, and its
// output values are printed one per line. It is an error for the program to
// wait for more input than was provided.
//
// -ascii: the program's output is printed as text, with values outside of the
// ASCII range printed as numbers on their own line. When the program waits for
// input, a line is read from stdin. If stdin is a terminal, it is switched to
// raw mode with minimal line editing unless -noraw is specified. Inputs given
// with -in are pushed first.
//
// -asm: load the program from an assembly source file. See package
// github.com/db47h/intcode/asm for the syntax.
//
// -config: settings can be loaded from a TOML file. Flags given on the command
// line take precedence:
//
//	program = "day9.ic"
//	inputs = [1]
//	ascii = false
//	assembly = false
//	raw = true
//	debug = false
//
// -debug: print debug logs and, should the program fault, a full stack trace
// and the faulty instruction.
//
// -dump: dump the machine state, I/O queues and tape to stdout upon exit.
package main
