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
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Run starts or resumes execution of the VM.
//
// Run returns nil when the program halts (the state is then Done) or when it
// executes an input instruction with an empty input queue (the state is then
// Waiting, and the PC points to that input instruction). Calling Run on a Done
// instance is a no-op.
//
// If the program faults, the PC will point to the instruction that triggered
// the error and the returned error will have a *Error in its chain. A faulted
// instance cannot be resumed: further calls to Run return the same error.
func (i *Instance) Run() (err error) {
	if i.err != nil {
		return i.err
	}
	if i.state == Done {
		return nil
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case *Error:
				i.err = errors.Wrap(e, "program fault")
				i.log.Debug("fault", zap.Int("pc", i.PC), zap.Error(e))
				err = i.err
			case error:
				i.err = errors.Wrapf(e, "recovered error @pc=%d/%d", i.PC, len(i.Tape))
				i.log.Debug("fault", zap.Int("pc", i.PC), zap.Error(e))
				err = i.err
			default:
				panic(e)
			}
		}
	}()
	i.state = Running
	for {
		if i.PC < 0 {
			i.fault(ErrNegativeAddress, "pc %d", i.PC)
		}
		cell := i.Tape.Read(i.PC)
		modes := cell / 100
		switch op := Opcode(cell % 100); op {
		case OpAdd:
			a, b, d := i.param(modes, 0), i.param(modes, 1), i.param(modes, 2)
			i.write(d, i.read(a)+i.read(b))
			i.PC += 4
		case OpMul:
			a, b, d := i.param(modes, 0), i.param(modes, 1), i.param(modes, 2)
			i.write(d, i.read(a)*i.read(b))
			i.PC += 4
		case OpIn:
			addr := i.dest(i.param(modes, 0))
			v, ok := i.in.pop()
			if !ok {
				i.state = Waiting
				i.log.Debug("waiting for input", zap.Int("pc", i.PC), zap.Int64("instructions", i.insCount))
				return nil
			}
			i.Tape = i.Tape.Write(addr, v)
			i.PC += 2
		case OpOut:
			i.out.push(i.read(i.param(modes, 0)))
			i.PC += 2
		case OpJumpIfTrue:
			p, t := i.param(modes, 0), i.param(modes, 1)
			if i.read(p) != 0 {
				i.jump(i.read(t))
			} else {
				i.PC += 3
			}
		case OpJumpIfFalse:
			p, t := i.param(modes, 0), i.param(modes, 1)
			if i.read(p) == 0 {
				i.jump(i.read(t))
			} else {
				i.PC += 3
			}
		case OpLessThan:
			a, b, d := i.param(modes, 0), i.param(modes, 1), i.param(modes, 2)
			var v Word
			if i.read(a) < i.read(b) {
				v = 1
			}
			i.write(d, v)
			i.PC += 4
		case OpEqual:
			a, b, d := i.param(modes, 0), i.param(modes, 1), i.param(modes, 2)
			var v Word
			if i.read(a) == i.read(b) {
				v = 1
			}
			i.write(d, v)
			i.PC += 4
		case OpAdjustBase:
			i.Base += i.read(i.param(modes, 0))
			i.PC += 2
		case OpHalt:
			i.state = Done
			i.insCount++
			i.log.Debug("halted", zap.Int("pc", i.PC), zap.Int64("instructions", i.insCount))
			return nil
		default:
			i.fault(ErrBadOpcode, "opcode %d", op)
		}
		i.insCount++
	}
}
