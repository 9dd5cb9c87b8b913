// Copyright 2025 go-highway Authors
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

package tuple

import (
	"errors"
	"fmt"
)

// Kernels report precondition violations by panicking with one of the
// error types below. They are programming errors, like an out-of-range
// slice index, and are never recovered internally. Use errors.Is on a
// recovered value to classify them.
var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("tuple: index out of range")

	// ErrLengthMismatch is matched by every *LengthError.
	ErrLengthMismatch = errors.New("tuple: length mismatch")
)

// IndexError reports a component index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("tuple: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// LengthError reports an operand whose length differs from the sink's.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("tuple: operand has %d components, want %d", e.Got, e.Want)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// CheckIndex panics with an *IndexError unless 0 <= i < n.
// Storage backends call it from At and SetAt.
func CheckIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Len: n})
	}
}

// checkSourceIndex validates i against s. Broadcast sources accept any
// non-negative index.
func checkSourceIndex(i int, s Source) {
	n := s.Len()
	if n == AnyLen {
		if i < 0 {
			panic(&IndexError{Index: i, Len: 0})
		}
		return
	}
	CheckIndex(i, n)
}

// checkLen panics with a *LengthError unless s has n components or
// matches any length.
func checkLen(n int, s Source) {
	if l := s.Len(); l != AnyLen && l != n {
		panic(&LengthError{Want: n, Got: l})
	}
}
