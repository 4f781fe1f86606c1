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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	Parameters named d are destinations and cannot be immediate.
//
//	opcode	asm	alias	params	description
//	------	---	-----	------	-----------------------------------------------
//	1	add		a b d	d = a + b
//	2	mul		a b d	d = a * b
//	3	in		d	read next input value into d
//	4	out		s	output s
//	5	jt	jnz	p t	jump to t if p != 0
//	6	jf	jz	p t	jump to t if p == 0
//	7	lt		a b d	d = 1 if a < b else 0
//	8	eq		a b d	d = 1 if a == b else 0
//	9	arb	rbo	n	adjust relative base by n
//	99	hlt	halt		halt
//
// Operands:
//
// The addressing mode of an operand is selected by its prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42
//	@42	relative mode: the value at address base+42
//
// The assembler computes the mode digits of each instruction from its
// operands. Operands may be separated by white space or commas:
//
//	add 100, #1, 100	( compiles as 1001,100,1,100 )
//	out @-1			( compiles as 204,-1 )
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space. That is:
//
//	( this is a valid comment )
//	( this is a
//	  rather long
//	  multiline comment )
//	(this will be seen by the parser as the token "(this" )
//
// Literals and label/const identifiers:
//
// The parser behaves almost like a Forth parser: input is split at white space
// into tokens. The parser then does the following:
//
//	- If a token can be converted to a Go integer (see strconv.ParseInt), it will
//	  be converted to an integer literal.
//	- If it is a Go character literal between single quotes, it will be converted to
//	  the corresponding integer literal.
//	- If a token is the name of a defined constant, it will be replaced internally by
//	  the constant's value and can be used anywhere an integer literal is expected.
//	- Any other operand is considered to be a label and is replaced with the
//	  label's address.
//
// Where an instruction is expected, integer literals, character literals and
// constants are compiled as raw data cells:
//
//	72 'i' 10	( compiles as 72,105,10 )
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// operands in any instruction (without the ':' prefix). Forward references are
// ok. For example:
//
//	:loop	out #'x'
//		jt #1, #loop	( jump to loop )
//	:var	.dat 0		( data cell )
//		add var, #1, var	( increment the cell at address var )
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. <IDENTIFIER> can be any valid identifier (any
// combination of letters, symbols, digits and punctuation). The value must be
// an integer value, named constant or character literal.
//
//	.org <value>
//
// Will place the next instruction at the address specified by the given integer
// literal or named constant.
//
//	.dat <value>
//
// Will compile the specified integer value, named constant, character literal
// or label address as-is.
package asm
