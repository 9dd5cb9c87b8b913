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
	"math"

	"github.com/ajroetker/go-tuple/tuple/scalar"
)

//go:generate go run ./internal/vecopsgen -output .

// Every function in this file writes its result into dst and returns dst.
// The right-hand operands may be any Source: another vector, a Scalar
// broadcast or explicit per-component values. Numeric edge cases follow
// IEEE-754 and are never reported as errors.

// Add computes dst[i] = a[i] + b[i].
func Add[D Sink](dst D, a, b Source) D { return Map2(dst, a, b, scalar.Add[float32]) }

// Sub computes dst[i] = a[i] - b[i].
func Sub[D Sink](dst D, a, b Source) D { return Map2(dst, a, b, scalar.Sub[float32]) }

// ReverseSub computes dst[i] = b[i] - a[i].
func ReverseSub[D Sink](dst D, a, b Source) D {
	return Map2(dst, a, b, scalar.ReverseSub[float32])
}

// Mul computes dst[i] = a[i] * b[i].
func Mul[D Sink](dst D, a, b Source) D { return Map2(dst, a, b, scalar.Mul[float32]) }

// Div computes dst[i] = a[i] / b[i].
func Div[D Sink](dst D, a, b Source) D { return Map2(dst, a, b, scalar.Div[float32]) }

// ReverseDiv computes dst[i] = b[i] / a[i].
func ReverseDiv[D Sink](dst D, a, b Source) D {
	return Map2(dst, a, b, scalar.ReverseDiv[float32])
}

// Pow computes dst[i] = a[i] ** b[i].
func Pow[D Sink](dst D, a, b Source) D { return Map2(dst, a, b, scalar.Pow[float32]) }

// ReversePow computes dst[i] = b[i] ** a[i].
func ReversePow[D Sink](dst D, a, b Source) D {
	return Map2(dst, a, b, scalar.ReversePow[float32])
}

// FMA computes dst[i] = a[i]*b[i] + c[i] with a single rounding.
func FMA[D Sink](dst D, a, b, c Source) D { return Map3(dst, a, b, c, scalar.FMA[float32]) }

// FAM computes dst[i] = b[i]*c[i] + a[i] with a single rounding.
// The first operand is the addend.
func FAM[D Sink](dst D, a, b, c Source) D { return Map3(dst, a, b, c, scalar.FAM[float32]) }

// Sqrt computes dst[i] = sqrt(a[i]). Negative components yield NaN.
func Sqrt[D Sink](dst D, a Source) D { return Map1(dst, a, scalar.Sqrt[float32]) }

// Cbrt computes dst[i] = cbrt(a[i]).
func Cbrt[D Sink](dst D, a Source) D { return Map1(dst, a, scalar.Cbrt[float32]) }

// Abs computes dst[i] = |a[i]|.
func Abs[D Sink](dst D, a Source) D { return Map1(dst, a, scalar.Abs[float32]) }

// Reciprocal computes dst[i] = 1 / a[i]. Zero components yield ±Inf.
func Reciprocal[D Sink](dst D, a Source) D { return Map1(dst, a, scalar.Reciprocal[float32]) }

// Negate computes dst[i] = -a[i].
func Negate[D Sink](dst D, a Source) D { return Map1(dst, a, scalar.Negate[float32]) }

// Squared computes dst[i] = a[i] * a[i].
func Squared[D Sink](dst D, a Source) D { return Map1(dst, a, scalar.Squared[float32]) }

// Min computes the component-wise minimum of a and b.
// NaN components propagate and -0 orders below +0.
func Min[D Sink](dst D, a, b Source) D { return Map2(dst, a, b, scalar.Min[float32]) }

// Max computes the component-wise maximum of a and b.
func Max[D Sink](dst D, a, b Source) D { return Map2(dst, a, b, scalar.Max[float32]) }

// Signum computes dst[i] = signum(a[i]): -1, +1, or a[i] itself for zeros
// and NaN.
func Signum[D Sink](dst D, a Source) D { return Map1(dst, a, scalar.Signum[float32]) }

// ClampMin computes dst[i] = max(a[i], lo[i]).
func ClampMin[D Sink](dst D, a, lo Source) D { return Map2(dst, a, lo, scalar.ClampMin[float32]) }

// ClampMax computes dst[i] = min(a[i], hi[i]).
func ClampMax[D Sink](dst D, a, hi Source) D { return Map2(dst, a, hi, scalar.ClampMax[float32]) }

// Clamp computes dst[i] = min(max(a[i], lo[i]), hi[i]).
// Where lo[i] > hi[i] the result is hi[i]; the bounds are not swapped.
func Clamp[D Sink](dst D, a, lo, hi Source) D {
	return Map3(dst, a, lo, hi, scalar.Clamp[float32])
}

// Copy computes dst[i] = a[i].
func Copy[D Sink](dst D, a Source) D {
	return Map1(dst, a, func(x float32) float32 { return x })
}

// MinComponent returns the smallest component of a.
// It returns +Inf for an empty source and NaN if any component is NaN.
func MinComponent(a Source) float32 {
	return Fold(a, float32(math.Inf(1)), scalar.Min[float32])
}

// MaxComponent returns the largest component of a.
// It returns -Inf for an empty source and NaN if any component is NaN.
func MaxComponent(a Source) float32 {
	return Fold(a, float32(math.Inf(-1)), scalar.Max[float32])
}
