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

// Package tuple provides component-wise float32 vector math over any
// storage layout.
//
// Every operation is a single generic kernel that reads its operands
// through the Source capability and writes its result through the Sink
// capability. The three ways of delivering a result are just three choices
// of sink:
//
//	// Allocate a new vector.
//	c := tuple.Add(tuple.Make(2), a, b)
//
//	// Mutate the first operand in place.
//	tuple.Add(a, a, b)
//
//	// Write into a caller-supplied buffer.
//	tuple.Add(buf, a, b)
//
// Operands may be plain slices (Vec), fixed-arity values (Vec2, Vec3), a
// broadcast scalar (Scalar), a window into a larger buffer (Aligned), any
// type with named V0/V1/V2 accessors (FromTuple2, FromTuple3), or other
// storage backends such as tuple/segment and tuple/strided.
//
// Basic usage:
//
//	a := tuple.Vec2{1, 2}
//	b := tuple.Vec2{3, 4}
//	sum := a.Add(b)                    // {4, 6}
//	half := a.Mul(tuple.Scalar(0.5))   // {0.5, 1}
package tuple

// AnyLen is the length reported by sources that match every length, such
// as a broadcast Scalar.
const AnyLen = -1

// Source is a read-only, index-addressed sequence of float32 components.
//
// Only Equals gives meaning to absent operands: a nil interface, a nil Vec,
// a nil *Vec2 or a nil *Vec3. Every other operation requires a present
// operand, and a nil pointer to any other backend is never a valid Source.
type Source interface {
	// Len returns the number of components, or AnyLen.
	Len() int

	// At returns component i.
	At(i int) float32
}

// Sink receives the components computed by a kernel.
type Sink interface {
	// Len returns the number of components the sink accepts. It determines
	// how many components a kernel computes.
	Len() int

	// SetAt stores component i.
	SetAt(i int, x float32)
}

// Vec is an N-component vector backed by a slice.
// A Vec is both a Source and a Sink; writing into it mutates the slice.
type Vec []float32

// Make allocates a zeroed Vec with n components.
func Make(n int) Vec {
	return make(Vec, n)
}

// Len returns the number of components.
func (v Vec) Len() int { return len(v) }

// At returns component i.
func (v Vec) At(i int) float32 { return v[i] }

// SetAt stores x into component i.
func (v Vec) SetAt(i int, x float32) { v[i] = x }

// Clone returns a copy of v.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

// Vec2 is a 2-component vector value. Vec2 is a Source; *Vec2 is a Sink.
type Vec2 [2]float32

// Len returns 2.
func (v Vec2) Len() int { return 2 }

// At returns component i.
func (v Vec2) At(i int) float32 { return v[i] }

// SetAt stores x into component i.
func (v *Vec2) SetAt(i int, x float32) { v[i] = x }

// V0 returns the first component.
func (v Vec2) V0() float32 { return v[0] }

// V1 returns the second component.
func (v Vec2) V1() float32 { return v[1] }

// SetV0 sets the first component.
func (v *Vec2) SetV0(x float32) { v[0] = x }

// SetV1 sets the second component.
func (v *Vec2) SetV1(x float32) { v[1] = x }

// Vec3 is a 3-component vector value. Vec3 is a Source; *Vec3 is a Sink.
type Vec3 [3]float32

// Len returns 3.
func (v Vec3) Len() int { return 3 }

// At returns component i.
func (v Vec3) At(i int) float32 { return v[i] }

// SetAt stores x into component i.
func (v *Vec3) SetAt(i int, x float32) { v[i] = x }

// V0 returns the first component.
func (v Vec3) V0() float32 { return v[0] }

// V1 returns the second component.
func (v Vec3) V1() float32 { return v[1] }

// V2 returns the third component.
func (v Vec3) V2() float32 { return v[2] }

// SetV0 sets the first component.
func (v *Vec3) SetV0(x float32) { v[0] = x }

// SetV1 sets the second component.
func (v *Vec3) SetV1(x float32) { v[1] = x }

// SetV2 sets the third component.
func (v *Vec3) SetV2(x float32) { v[2] = x }

// Scalar is a broadcast operand: every component reads as the same value.
type Scalar float32

// Len returns AnyLen.
func (s Scalar) Len() int { return AnyLen }

// At returns s for every i.
func (s Scalar) At(int) float32 { return float32(s) }

// Aligned returns the n components of buf starting at off as a Vec.
// The result aliases buf and has its capacity capped at n, so appending to
// it never overwrites the rest of buf.
//
// Aligned panics with an *IndexError if the window does not fit in buf.
func Aligned(buf []float32, off, n int) Vec {
	if off < 0 || n < 0 || off > len(buf)-n {
		last := off
		if off >= 0 && n > 0 {
			last = off + n - 1
		}
		panic(&IndexError{Index: last, Len: len(buf)})
	}
	return Vec(buf[off : off+n : off+n])
}
