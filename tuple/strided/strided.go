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

// Package strided adapts gonum BLAS vectors to the tuple kernels.
//
// A Vector addresses every Inc-th element of a float32 slice, which makes a
// matrix column or an interleaved channel usable as a tuple.Source and
// tuple.Sink without copying:
//
//	data := []float32{ // 3x2 row-major
//		1, 2,
//		3, 4,
//		5, 6,
//	}
//	col := strided.Wrap(blas32.Vector{N: 3, Inc: 2, Data: data[1:]})
//	tuple.Mul(col, col, tuple.Scalar(10)) // data is now 1, 20, 3, 40, 5, 60
//
// AddScaled, Scale, Dot and Norm call into gonum's BLAS level 1 routines.
package strided

import (
	"errors"

	"github.com/ajroetker/go-tuple/tuple"
	"gonum.org/v1/gonum/blas/blas32"
)

// ErrBadIncrement is the panic value of Wrap for a non-positive stride.
var ErrBadIncrement = errors.New("strided: increment must be positive")

// Vector is a strided view of float32 elements.
type Vector struct {
	v blas32.Vector
}

// Wrap returns a Vector over v.
//
// It panics with ErrBadIncrement if v.Inc is not positive, and with a
// *tuple.IndexError if v.Data is too short to hold v.N elements.
func Wrap(v blas32.Vector) Vector {
	if v.Inc <= 0 {
		panic(ErrBadIncrement)
	}
	if v.N < 0 {
		panic(&tuple.IndexError{Index: v.N, Len: 0})
	}
	if v.N > 0 {
		tuple.CheckIndex((v.N-1)*v.Inc, len(v.Data))
	}
	return Vector{v: v}
}

// New allocates a contiguous Vector of n zeroed elements.
func New(n int) Vector {
	return Vector{v: blas32.Vector{N: n, Inc: 1, Data: make([]float32, n)}}
}

// Len returns the number of elements.
func (v Vector) Len() int { return v.v.N }

// At returns element i.
func (v Vector) At(i int) float32 {
	tuple.CheckIndex(i, v.v.N)
	return v.v.Data[i*v.v.Inc]
}

// SetAt stores x into element i.
func (v Vector) SetAt(i int, x float32) {
	tuple.CheckIndex(i, v.v.N)
	v.v.Data[i*v.v.Inc] = x
}

// BLAS returns the underlying gonum vector.
func (v Vector) BLAS() blas32.Vector { return v.v }

// SharesStorage reports whether other is a Vector over the same elements.
func (v Vector) SharesStorage(other tuple.Source) bool {
	o, ok := other.(Vector)
	if !ok || o.v.N != v.v.N || o.v.Inc != v.v.Inc {
		return false
	}
	if v.v.N == 0 {
		return false
	}
	return &o.v.Data[0] == &v.v.Data[0]
}

func checkSameLen(x, y Vector) {
	if x.v.N != y.v.N {
		panic(&tuple.LengthError{Want: y.v.N, Got: x.v.N})
	}
}

// AddScaled computes y += alpha * x.
// It panics with a *tuple.LengthError if the lengths differ.
func AddScaled(alpha float32, x, y Vector) {
	checkSameLen(x, y)
	blas32.Axpy(alpha, x.v, y.v)
}

// Scale computes v *= alpha.
func Scale(alpha float32, v Vector) {
	blas32.Scal(alpha, v.v)
}

// Dot returns the sum of x[i] * y[i].
// It panics with a *tuple.LengthError if the lengths differ.
func Dot(x, y Vector) float32 {
	checkSameLen(x, y)
	return blas32.Dot(x.v, y.v)
}

// Norm returns the Euclidean norm of v.
func Norm(v Vector) float32 {
	return blas32.Nrm2(v.v)
}
