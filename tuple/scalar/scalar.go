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

// Package scalar provides the per-component kernels that every tuple
// operation is built from.
//
// All functions are pure and follow IEEE-754 semantics: division by zero
// yields ±Inf or NaN, the square root of a negative number yields NaN, and
// NaN propagates through every arithmetic kernel. Nothing in this package
// returns an error or panics.
//
// The kernels are generic over Floats so they can be passed around as
// function values, e.g. scalar.Add[float32].
package scalar

import (
	"math"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// is32 reports whether T is a single-precision type.
func is32[T Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Add returns x + y.
func Add[T Floats](x, y T) T { return x + y }

// Sub returns x - y.
func Sub[T Floats](x, y T) T { return x - y }

// ReverseSub returns y - x.
func ReverseSub[T Floats](x, y T) T { return y - x }

// Mul returns x * y.
func Mul[T Floats](x, y T) T { return x * y }

// Div returns x / y.
func Div[T Floats](x, y T) T { return x / y }

// ReverseDiv returns y / x.
func ReverseDiv[T Floats](x, y T) T { return y / x }

// Pow returns base**exp with the special cases of math.Pow.
func Pow[T Floats](base, exp T) T {
	return T(math.Pow(float64(base), float64(exp)))
}

// ReversePow returns y**x.
func ReversePow[T Floats](x, y T) T { return Pow(y, x) }

// Sqrt returns the square root of x.
//
// For float32 the result is correctly rounded: the float64 square root
// carries enough extra bits that the second rounding cannot change it.
func Sqrt[T Floats](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Cbrt returns the cube root of x.
func Cbrt[T Floats](x T) T {
	return T(math.Cbrt(float64(x)))
}

// Abs returns the absolute value of x. Abs(-0) is +0.
func Abs[T Floats](x T) T {
	return T(math.Abs(float64(x)))
}

// Negate returns -x.
func Negate[T Floats](x T) T { return -x }

// Squared returns x * x.
func Squared[T Floats](x T) T { return x * x }

// Reciprocal returns 1 / x. Reciprocal(0) is +Inf.
func Reciprocal[T Floats](x T) T { return 1 / x }

// Min returns the smaller of x and y.
// If either is NaN the result is NaN, and -0 is smaller than +0.
func Min[T Floats](x, y T) T { return min(x, y) }

// Max returns the larger of x and y.
// If either is NaN the result is NaN, and +0 is larger than -0.
func Max[T Floats](x, y T) T { return max(x, y) }

// ClampMin returns Max(x, lo).
func ClampMin[T Floats](x, lo T) T { return max(x, lo) }

// ClampMax returns Min(x, hi).
func ClampMax[T Floats](x, hi T) T { return min(x, hi) }

// Clamp returns Min(Max(x, lo), hi).
//
// The bounds are not reordered: when lo > hi the result is hi.
func Clamp[T Floats](x, lo, hi T) T { return min(max(x, lo), hi) }

// Signum returns -1 for negative x and 1 for positive x.
// Zeros keep their sign and NaN stays NaN.
func Signum[T Floats](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Floats](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsInfinite reports whether x is +Inf or -Inf.
func IsInfinite[T Floats](x T) bool {
	return math.IsInf(float64(x), 0)
}

// IsNaN reports whether x is a NaN.
func IsNaN[T Floats](x T) bool {
	return x != x
}
