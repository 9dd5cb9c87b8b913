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

// Package segment stores float components in a raw byte buffer outside the
// Go heap and exposes windows of it to the tuple kernels.
//
// A Segment owns the buffer. Views address elements at a byte offset in one
// of three layouts (Float32, Float16 or BFloat16) and implement both
// tuple.Source and tuple.Sink, so every kernel runs on segment memory
// unchanged:
//
//	seg, err := segment.Alloc(1 << 12)
//	if err != nil {
//		return err
//	}
//	defer seg.Close()
//
//	v := seg.View(segment.Float32, 0, 3)
//	tuple.Add(v, v, tuple.Scalar(1))
//
// A Segment must stay open while its views are used. Accessing a view of a
// closed segment panics with ErrClosed.
package segment

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ajroetker/go-tuple/tuple"
)

var (
	// ErrClosed is reported when a closed segment is accessed.
	ErrClosed = errors.New("segment: closed")

	// ErrInvalidSize is returned by Alloc for a negative size.
	ErrInvalidSize = errors.New("segment: invalid size")
)

// Segment is a fixed-size byte buffer. Buffers obtained from Alloc live
// in an anonymous memory mapping where the platform supports one.
type Segment struct {
	data   []byte
	closed atomic.Bool
	// release returns mapped memory to the OS; nil for caller memory.
	release func([]byte) error
}

// Alloc returns a zeroed segment of size bytes.
func Alloc(size int) (*Segment, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == 0 {
		return &Segment{data: []byte{}}, nil
	}

	data, release, err := mapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("segment: alloc %d bytes: %w", size, err)
	}
	return &Segment{data: data, release: release}, nil
}

// Wrap returns a segment over caller-owned memory. Close never frees it.
func Wrap(b []byte) *Segment {
	return &Segment{data: b}
}

// Close releases the segment's memory. It is idempotent.
func (s *Segment) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	data := s.data
	s.data = nil
	if s.release != nil && len(data) > 0 {
		if err := s.release(data); err != nil {
			return fmt.Errorf("segment: release: %w", err)
		}
	}
	return nil
}

// Size returns the size of the segment in bytes, or 0 once it is closed.
func (s *Segment) Size() int {
	return len(s.Bytes())
}

// Bytes returns the underlying buffer, or nil once the segment is closed.
// The slice is valid only until Close.
func (s *Segment) Bytes() []byte {
	if s.closed.Load() {
		return nil
	}
	return s.data
}

// bytes returns the buffer and panics if the segment is closed.
func (s *Segment) bytes() []byte {
	if s.closed.Load() {
		panic(ErrClosed)
	}
	return s.data
}

// span returns the n bytes at off and panics with a *tuple.IndexError if
// they do not fit.
func (s *Segment) span(off, n int) []byte {
	b := s.bytes()
	if off < 0 || off > len(b)-n {
		panic(&tuple.IndexError{Index: off, Len: len(b)})
	}
	return b[off : off+n]
}

// Float32At reads the little-endian float32 at byte offset off.
func (s *Segment) Float32At(off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(s.span(off, 4)))
}

// SetFloat32At writes x as a little-endian float32 at byte offset off.
func (s *Segment) SetFloat32At(off int, x float32) {
	binary.LittleEndian.PutUint32(s.span(off, 4), math.Float32bits(x))
}

// View returns n elements of the given layout starting at byte offset off.
// It panics with a *tuple.IndexError if the elements do not fit in the
// segment.
func (s *Segment) View(layout Layout, off, n int) *View {
	if n < 0 {
		panic(&tuple.IndexError{Index: n, Len: 0})
	}
	s.span(off, n*layout.Size())
	return &View{seg: s, layout: layout, off: off, n: n}
}
