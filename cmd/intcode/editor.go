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
	"io"

	"github.com/pkg/errors"
)

const (
	keyInterrupt = 3
	keyEOT       = 4
	keyBackspace = 8
	keyDelete    = 127
)

var errInterrupted = errors.New("interrupted")

// lineEditor provides line buffering for a terminal in raw mode: characters
// are echoed to w as they are typed and lines are only made available to
// readers once complete. Backspace and delete erase the last character,
// CTRL-D on an empty line signals end of input and CTRL-C aborts.
type lineEditor struct {
	r    *bufio.Reader
	w    io.Writer
	line []byte
	buf  []byte
}

func newLineEditor(r io.Reader, w io.Writer) *lineEditor {
	return &lineEditor{r: bufio.NewReader(r), w: w}
}

func (e *lineEditor) echo(b ...byte) error {
	_, err := e.w.Write(b)
	return errors.Wrap(err, "echo failed")
}

func (e *lineEditor) Read(p []byte) (int, error) {
	for len(e.buf) == 0 {
		c, err := e.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(e.line) > 0 {
				e.buf, e.line = e.line, nil
				break
			}
			return 0, err
		}
		switch c {
		case keyInterrupt:
			return 0, errInterrupted
		case keyEOT:
			if len(e.line) == 0 {
				return 0, io.EOF
			}
			// like a cooked tty, flush the partial line
			e.buf, e.line = e.line, nil
		case '\r', '\n':
			e.buf, e.line = append(e.line, '\n'), nil
			err = e.echo('\n')
		case keyBackspace, keyDelete:
			if len(e.line) > 0 {
				e.line = e.line[:len(e.line)-1]
				err = e.echo(keyBackspace, ' ', keyBackspace)
			}
		default:
			e.line = append(e.line, c)
			err = e.echo(c)
		}
		if err != nil {
			return 0, err
		}
	}
	n := copy(p, e.buf)
	e.buf = e.buf[n:]
	return n, nil
}
