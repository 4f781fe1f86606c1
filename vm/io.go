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

// queue is a FIFO of words.
type queue struct {
	buf  []Word
	head int
}

func (q *queue) push(v ...Word) {
	if q.head > 0 && q.head == len(q.buf) {
		// empty: reuse the backing array
		q.buf, q.head = q.buf[:0], 0
	}
	q.buf = append(q.buf, v...)
}

func (q *queue) pop() (Word, bool) {
	if q.head >= len(q.buf) {
		return 0, false
	}
	v := q.buf[q.head]
	q.head++
	return v, true
}

func (q *queue) drain() []Word {
	if q.head >= len(q.buf) {
		return nil
	}
	v := append([]Word(nil), q.buf[q.head:]...)
	q.buf, q.head = q.buf[:0], 0
	return v
}

func (q *queue) len() int {
	return len(q.buf) - q.head
}

func (q *queue) clone() queue {
	if q.len() == 0 {
		return queue{}
	}
	return queue{buf: append([]Word(nil), q.buf[q.head:]...)}
}

// PushInput appends the given values to the input queue. Input instructions
// consume them in the order they were pushed.
func (i *Instance) PushInput(v ...Word) {
	i.in.push(v...)
}

// PendingInput returns the number of values in the input queue.
func (i *Instance) PendingInput() int {
	return i.in.len()
}

// PopOutput removes the oldest value from the output queue and returns it. The
// boolean return value is false if the queue was empty.
func (i *Instance) PopOutput() (Word, bool) {
	return i.out.pop()
}

// Output removes all values from the output queue and returns them in the
// order they were produced.
func (i *Instance) Output() []Word {
	return i.out.drain()
}

// PendingOutput returns the number of values in the output queue.
func (i *Instance) PendingOutput() int {
	return i.out.len()
}
