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
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Tape encapsulates a VM's memory.
type Tape []Word

// Read returns the value at address addr, or 0 if addr is outside the tape.
func (t Tape) Read(addr int) Word {
	if addr < 0 || addr >= len(t) {
		return 0
	}
	return t[addr]
}

// Write stores v at address addr and returns the updated tape. If addr is past
// the end of the tape, the tape is grown with zeroes up to and including addr.
// addr must not be negative. Instances bound addr with their tape size limit,
// see MaxTapeSize.
func (t Tape) Write(addr int, v Word) Tape {
	if addr >= len(t) {
		if addr < cap(t) {
			n := len(t)
			t = t[:addr+1]
			clear(t[n:])
		} else {
			t = append(t, make(Tape, addr+1-len(t))...)
		}
	}
	t[addr] = v
	return t
}

// Clone returns a copy of the tape.
func (t Tape) Clone() Tape {
	if t == nil {
		return nil
	}
	return append(make(Tape, 0, len(t)), t...)
}

// WriteTo writes the tape to w as a single line of comma separated decimal
// integers.
func (t Tape) WriteTo(w io.Writer) (int64, error) {
	ew := ici.NewErrWriter(w)
	var n int64
	var b []byte
	for k, v := range t {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		c, _ := ew.Write(b)
		n += int64(c)
	}
	c, _ := ew.Write([]byte{'\n'})
	return n + int64(c), ew.Err
}

// Parse reads a program from r. Programs are a sequence of comma separated
// signed decimal integers. Blank space around values, including new lines, is
// ignored.
func Parse(r io.Reader) (Tape, error) {
	var t Tape
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<20)
	s.Split(scanValues)
	for s.Scan() {
		tok := bytes.TrimSpace(s.Bytes())
		if len(tok) == 0 {
			return nil, errors.Errorf("empty value at position %d", len(t))
		}
		v, err := strconv.ParseInt(string(tok), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value at position %d", len(t))
		}
		t = append(t, Word(v))
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return t, nil
}

// scanValues is a bufio.SplitFunc that splits its input at commas. A trailing
// empty value (before EOF) is dropped.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, ','); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		if len(bytes.TrimSpace(data)) == 0 {
			return len(data), nil, nil
		}
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Load loads a program from file fileName.
func Load(fileName string) (Tape, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return t, nil
}

// Save saves a tape to file fileName in the same format read by Load.
func Save(fileName string, t Tape) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "save failed")
		}
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	_, err = t.WriteTo(w)
	return errors.Wrap(err, "save failed")
}
