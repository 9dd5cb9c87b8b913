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

package strided

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-tuple/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/blas32"
)

// matrix returns a 3x3 row-major matrix with element (r, c) = 10*r + c.
func matrix() []float32 {
	return []float32{
		0, 1, 2,
		10, 11, 12,
		20, 21, 22,
	}
}

func column(data []float32, c int) Vector {
	return Wrap(blas32.Vector{N: 3, Inc: 3, Data: data[c:]})
}

func TestColumnView(t *testing.T) {
	data := matrix()
	col := column(data, 1)

	assert.Equal(t, 3, col.Len())
	assert.Equal(t, tuple.Vec{1, 11, 21}, tuple.Copy(tuple.Make(3), col))

	tuple.Mul(col, col, tuple.Scalar(2))
	assert.Equal(t, []float32{
		0, 2, 2,
		10, 22, 12,
		20, 42, 22,
	}, data)
}

func TestKernelsAcrossBackends(t *testing.T) {
	data := matrix()
	a, b := column(data, 0), column(data, 2)

	got := tuple.Sub(tuple.Make(3), b, a)
	assert.Equal(t, tuple.Vec{2, 2, 2}, got)

	// Into a strided sink from plain operands.
	out := New(3)
	tuple.FMA(out, tuple.Vec{1, 2, 3}, tuple.Scalar(2), b)
	assert.Equal(t, []float32{4, 16, 28}, out.BLAS().Data)

	assert.True(t, tuple.Equals(a, column(data, 0)), "same storage")
	assert.True(t, tuple.Equals(a, tuple.Vec{0, 10, 20}))
	assert.False(t, tuple.Equals(a, b))
	assert.Equal(t, float32(22), tuple.MaxComponent(b))
}

func TestWrapValidation(t *testing.T) {
	assert.PanicsWithValue(t, ErrBadIncrement, func() {
		Wrap(blas32.Vector{N: 2, Inc: 0, Data: make([]float32, 2)})
	})
	assert.PanicsWithValue(t, ErrBadIncrement, func() {
		Wrap(blas32.Vector{N: 2, Inc: -1, Data: make([]float32, 2)})
	})
	assert.Panics(t, func() {
		Wrap(blas32.Vector{N: 3, Inc: 2, Data: make([]float32, 4)})
	})
	assert.NotPanics(t, func() {
		Wrap(blas32.Vector{N: 3, Inc: 2, Data: make([]float32, 5)})
	})
	assert.NotPanics(t, func() {
		Wrap(blas32.Vector{N: 0, Inc: 1})
	})

	v := New(2)
	assert.Panics(t, func() { v.At(2) })
	assert.Panics(t, func() { v.SetAt(-1, 0) })
}

// TestBLASMatchesKernels cross-checks the BLAS routines against the
// equivalent tuple kernels on dyadic values, where every product and sum
// is exact and both must agree bit for bit.
func TestBLASMatchesKernels(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 34))
	dyadic := func(n int) []float32 {
		out := make([]float32, n)
		for i := range out {
			out[i] = float32(rng.IntN(257)-128) / 8
		}
		return out
	}

	for _, n := range []int{0, 1, 5, 64} {
		xs, ys := dyadic(n), dyadic(n)
		x := Wrap(blas32.Vector{N: n, Inc: 1, Data: xs})
		y := Wrap(blas32.Vector{N: n, Inc: 1, Data: append([]float32(nil), ys...)})

		want := tuple.FMA(tuple.Make(n), tuple.Vec(xs), tuple.Scalar(0.5), tuple.Vec(ys))
		AddScaled(0.5, x, y)
		assert.True(t, tuple.Equals(want, y), "AddScaled n=%d", n)

		prod := tuple.Mul(tuple.Make(n), tuple.Vec(xs), tuple.Vec(ys))
		var sum float32
		for _, p := range prod {
			sum += p
		}
		assert.Equal(t, sum, Dot(x, Wrap(blas32.Vector{N: n, Inc: 1, Data: ys})), "Dot n=%d", n)

		scaled := tuple.Mul(tuple.Make(n), tuple.Vec(xs), tuple.Scalar(-2))
		Scale(-2, x)
		assert.True(t, tuple.Equals(scaled, x), "Scale n=%d", n)
	}
}

func TestScaleAndNorm(t *testing.T) {
	v := Wrap(blas32.Vector{N: 2, Inc: 1, Data: []float32{3, 4}})
	assert.InDelta(t, 5, Norm(v), 1e-5)

	Scale(2, v)
	assert.Equal(t, []float32{6, 8}, v.BLAS().Data)
	assert.InDelta(t, 10, Norm(v), 1e-5)
}

func TestLengthMismatch(t *testing.T) {
	a, b := New(2), New(3)
	err := func() (err error) {
		defer func() { err, _ = recover().(error) }()
		AddScaled(1, a, b)
		return nil
	}()
	require.ErrorIs(t, err, tuple.ErrLengthMismatch)
	assert.Panics(t, func() { Dot(a, b) })
}
