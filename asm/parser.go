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

package asm

import (
	"bytes"
	"io"
	"sort"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

// Error is a single assembler error.
type Error struct {
	Pos scanner.Position
	Msg string
}

// ErrAsm is the error type returned by Assemble. It is a list of positioned
// error messages.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b bytes.Buffer
	for k, err := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) && ch != ',' || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stInstr = iota // accept anything
	stArg          // need an instruction operand
	stDat          // need integer, const or address (.dat)
	stOrg          // need integer or const (.org)
	stEqu          // need integer or const (.equ value)
)

type parser struct {
	i       []vm.Word
	pc      int
	end     int
	s       scanner.Scanner
	state   int
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	errs    ErrAsm
	// instruction being assembled
	op   vm.Opcode
	opPC int
	argn int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(v vm.Word) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Word, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func (p *parser) useLabel(pos scanner.Position, name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{pos, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{pos, p.pc})
}

// literal converts s to a value if it is an integer literal, a character
// literal or a constant name.
func (p *parser) literal(pos scanner.Position, s string) (v vm.Word, ok bool) {
	// check int
	n, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return vm.Word(n), true
	}
	// check char
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error(pos, "invalid character literal "+s)
			return 0, true
		}
		return vm.Word(r), true
	}
	// constant ?
	if c, ok := p.consts[s]; ok {
		return vm.Word(c.address), true
	}
	return 0, false
}

// value writes a literal value or a label address.
func (p *parser) value(pos scanner.Position, s string) {
	if v, ok := p.literal(pos, s); ok {
		p.write(v)
		return
	}
	switch s[0] {
	case ':', '.', '#', '@', '\'':
		p.error(pos, "invalid label name "+s)
	}
	p.useLabel(pos, s)
	p.write(0)
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Whitespace = scanner.GoWhitespace | 1<<','
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		pos := p.s.Position
		if tok != scanner.Ident {
			p.error(pos, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		if s == "(" {
			// skip comments
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.error(pos, "unterminated comment")
			}
			continue
		}
		switch p.state {
		case stInstr:
			p.instruction(pos, s)
		case stArg:
			p.operand(pos, s)
		case stDat:
			p.value(pos, s)
			p.state = stInstr
		case stOrg:
			if v, ok := p.literal(pos, s); !ok {
				p.error(pos, "Unexpected label as directive argument: "+s)
			} else if v < 0 {
				p.error(pos, "negative address "+s)
			} else {
				p.pc = int(v)
			}
			p.state = stInstr
		case stEqu:
			if v, ok := p.literal(pos, s); ok {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			} else {
				p.error(pos, "Unexpected label as directive argument: "+s)
			}
			p.state = stInstr
		}
	}

	if p.state != stInstr && len(p.errs) < maxErrors {
		p.error(p.s.Pos(), "unexpected end of input")
	}

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] += vm.Word(l.address)
		}
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}

func (p *parser) instruction(pos scanner.Position, s string) {
	switch s[0] {
	case ':':
		n := s[1:]
		if len(n) == 0 {
			p.error(pos, "Empty label name")
			return
		}
		if cst, ok := p.consts[n]; ok {
			p.error(pos, "Label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
			return
		}
		if l, ok := p.labels[n]; ok {
			if l.address != -1 {
				p.error(pos, "Label redefinition: "+n+", previous definition here: "+l.pos.String())
				return
			}
			l.address = p.pc
			l.pos = pos
		} else {
			p.labels[n] = &label{labelSite{pos, p.pc}, nil}
		}
		return
	case '.':
		switch s {
		case ".org":
			p.state = stOrg
		case ".dat":
			p.state = stDat
		case ".equ":
			t := p.s.Scan()
			if t != scanner.Ident {
				p.error(p.s.Position, ".equ: expected identifier, got "+p.s.TokenText())
				return
			}
			p.cstName = p.s.TokenText()
			if l, ok := p.labels[p.cstName]; ok {
				p.error(p.s.Position, ".equ: redefinition of "+p.cstName+", previously defined/used as a label here: "+l.pos.String())
				return
			}
			p.cstPos = p.s.Position
			p.state = stEqu
		default:
			p.error(pos, "Unknown dot directive: "+s)
		}
		return
	}
	if op, ok := mnemonics[s]; ok {
		p.op, p.opPC, p.argn = op, p.pc, 0
		p.write(vm.Word(op))
		if op.Params() > 0 {
			p.state = stArg
		}
		return
	}
	if v, ok := p.literal(pos, s); ok {
		// raw data
		p.write(v)
		return
	}
	p.error(pos, "Unknown mnemonic: "+s)
}

func (p *parser) operand(pos scanner.Position, s string) {
	if s[0] == ':' || s[0] == '.' {
		p.error(pos, "Missing operand for "+p.op.String()+": "+s)
		p.state = stInstr
		return
	}
	m := vm.Position
	switch s[0] {
	case '#':
		m = vm.Immediate
		s = s[1:]
	case '@':
		m = vm.Relative
		s = s[1:]
	}
	if len(s) == 0 {
		p.error(pos, "Empty operand")
		p.write(0)
	} else {
		if m == vm.Immediate && p.argn == p.op.Dest() {
			p.error(pos, "Immediate destination for "+p.op.String())
		}
		p.value(pos, s)
		p.i[p.opPC] += vm.Word(m) * pow10[p.argn]
	}
	p.argn++
	if p.argn == p.op.Params() {
		p.state = stInstr
	}
}
