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
	"fmt"

	"github.com/pkg/errors"
)

// Fatal program errors. Use errors.Cause on an error returned by Run to get
// one of these.
var (
	ErrBadOpcode       = errors.New("invalid opcode")
	ErrBadMode         = errors.New("invalid parameter mode")
	ErrImmediateWrite  = errors.New("immediate mode destination")
	ErrNegativeAddress = errors.New("negative address")
	ErrAddressRange    = errors.New("address out of range")
)

// Error describes a fatal program error.
type Error struct {
	PC   int  // address of the faulting instruction
	Cell Word // instruction cell at PC
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("@pc=%d (%d): %v", e.PC, e.Cell, e.Err)
}

// Cause returns the underlying sentinel error.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

// fault aborts the current instruction.
func (i *Instance) fault(err error, format string, args ...interface{}) {
	if format != "" {
		err = errors.WithMessagef(err, format, args...)
	}
	panic(&Error{PC: i.PC, Cell: i.Tape.Read(i.PC), Err: err})
}
