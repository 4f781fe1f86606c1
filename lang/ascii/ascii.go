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

// Package ascii provides helpers to run Intcode programs that talk ASCII: text
// is exchanged one character per word, and any output value outside of the
// ASCII range is a plain number.
package ascii

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// MaxChar is the largest word value treated as a character.
const MaxChar = 127

// Encode returns the words encoding s, one word per rune.
func Encode(s string) []vm.Word {
	ws := make([]vm.Word, 0, len(s))
	for _, r := range s {
		ws = append(ws, vm.Word(r))
	}
	return ws
}

// Decode splits ws into text and non-text values. Words in the range
// [0, MaxChar] are appended to text, in order. All other words are returned
// in values.
func Decode(ws []vm.Word) (text string, values []vm.Word) {
	var b strings.Builder
	for _, w := range ws {
		if w < 0 || w > MaxChar {
			values = append(values, w)
			continue
		}
		b.WriteByte(byte(w))
	}
	return b.String(), values
}

// PushLine pushes line followed by a new line character to the instance's
// input queue.
func PushLine(i *vm.Instance, line string) {
	i.PushInput(Encode(line)...)
	i.PushInput('\n')
}

type flusher interface {
	Flush() error
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// newWriter returns either w if it can write single bytes or wraps it up into
// a bufio.Writer.
func newWriter(w io.Writer) byteWriter {
	switch w := w.(type) {
	case byteWriter:
		return w
	default:
		return bufio.NewWriter(w)
	}
}

func writeOutput(w byteWriter, out []vm.Word) error {
	var err error
	for _, v := range out {
		if v >= 0 && v <= MaxChar {
			err = w.WriteByte(byte(v))
		} else {
			_, err = w.WriteString(strconv.FormatInt(int64(v), 10) + "\n")
		}
		if err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	if f, ok := w.(flusher); ok {
		return errors.Wrap(f.Flush(), "write failed")
	}
	return nil
}

// Run drives instance i until it halts. Output is written to w: characters as
// is, other values as decimal numbers on their own line. Whenever the program
// waits for input, a single line is read from r and pushed to the input queue
// with a trailing new line.
//
// Run returns nil once the program halts, or io.EOF if r is exhausted while the
// program is still waiting for input. Program faults are returned as is.
func Run(i *vm.Instance, r io.Reader, w io.Writer) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	bw := newWriter(w)
	for {
		err := i.Run()
		if e := writeOutput(bw, i.Output()); err == nil {
			err = e
		}
		if err != nil {
			return err
		}
		if i.State() == vm.Done {
			return nil
		}
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "read failed")
		}
		if len(line) == 0 {
			return io.EOF
		}
		PushLine(i, strings.TrimRight(line, "\r\n"))
	}
}
