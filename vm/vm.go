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

// Word is the raw type stored in a tape cell.
type Word int64

// State is the run state of an Instance.
type State int

// Run states.
const (
	NotStarted State = iota
	Running
	Waiting // suspended on an input instruction
	Done    // halted
)

var stateNames = [...]string{
	"not started",
	"running",
	"waiting",
	"done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int  // Program Counter (aka. Instruction Pointer)
	Base     Word // Relative base
	Tape     Tape // Memory
	state    State
	in       queue
	out      queue
	insCount int64
	err      error
	log      *zap.Logger
	maxTape  int
}

// DefaultMaxTapeSize is the default limit on the tape length.
const DefaultMaxTapeSize = 1 << 24

// Option interface
type Option func(*Instance) error

// Input pushes the given values to the input queue.
func Input(v ...Word) Option {
	return func(i *Instance) error { i.PushInput(v...); return nil }
}

// TapeSize preallocates room for size cells so that programs writing past the
// end of their initial image do not need to grow the tape. It does not change
// the tape length.
func TapeSize(size int) Option {
	return func(i *Instance) error {
		if size > cap(i.Tape) {
			t := make(Tape, len(i.Tape), size)
			copy(t, i.Tape)
			i.Tape = t
		}
		return nil
	}
}

// MaxTapeSize limits the tape length to size cells. Writes and jumps to
// addresses at or above size fault with ErrAddressRange. The default is
// DefaultMaxTapeSize.
func MaxTapeSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid tape size limit %d", size)
		}
		i.maxTape = size
		return nil
	}
}

// Logger sets the logger used for debug diagnostics. The default is a no-op
// logger.
func Logger(l *zap.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = zap.NewNop()
		}
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The tape parameter is the initial memory contents, usually loaded from file
// with the Load function. It is copied, so the caller is free to reuse it to
// create other instances.
//
// Options will be set by calling SetOptions.
func New(tape Tape, opts ...Option) (*Instance, error) {
	i := &Instance{
		Tape:    tape.Clone(),
		log:     zap.NewNop(),
		maxTape: DefaultMaxTapeSize,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if len(i.Tape) > i.maxTape {
		return nil, errors.Errorf("program size %d exceeds tape size limit %d", len(i.Tape), i.maxTape)
	}
	return i, nil
}

// Clone returns a deep copy of the instance. The clone and the original share
// no mutable state and can be run independently.
func (i *Instance) Clone() *Instance {
	c := *i
	c.Tape = i.Tape.Clone()
	c.in = i.in.clone()
	c.out = i.out.clone()
	return &c
}

// State returns the current run state. An instance stopped by a fault stays
// in the Running state; check Err to tell it apart from a running one.
func (i *Instance) State() State {
	return i.state
}

// Err returns the fatal error that stopped the instance, if any.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
