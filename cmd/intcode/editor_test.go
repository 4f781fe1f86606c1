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
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineEditor(t *testing.T) {
	var echo bytes.Buffer
	e := newLineEditor(strings.NewReader("hx\x7fi\rab\bc\x04"), &echo)
	r := bufio.NewReader(e)

	line, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "hi\n", line)

	// partial line flushed by CTRL-D, then EOF
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "ac", string(rest))

	require.Equal(t, "hx\b \bi\nab\b \bc", echo.String())
}

func TestLineEditor_eof(t *testing.T) {
	var echo bytes.Buffer
	e := newLineEditor(strings.NewReader("\x04more"), &echo)
	n, err := e.Read(make([]byte, 10))
	require.Equal(t, 0, n)
	require.Equal(t, io.EOF, err)

	// backspace on an empty line is a no-op
	e = newLineEditor(strings.NewReader("\b\bok"), &echo)
	b, err := io.ReadAll(e)
	require.NoError(t, err)
	require.Equal(t, "ok", string(b))
}

func TestLineEditor_interrupt(t *testing.T) {
	e := newLineEditor(strings.NewReader("ab\x03cd\n"), io.Discard)
	_, err := e.Read(make([]byte, 10))
	require.ErrorIs(t, err, errInterrupted)
}

func TestLineEditor_shortReads(t *testing.T) {
	e := newLineEditor(strings.NewReader("hello\n"), io.Discard)
	p := make([]byte, 2)
	var got []byte
	for {
		n, err := e.Read(p)
		got = append(got, p[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.Equal(t, "hello\n", string(got))
}
