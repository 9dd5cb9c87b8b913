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

package scalar

import "math"

// FMA returns a*b + c computed with a single rounding to T.
//
// For float64 this is math.FMA. For float32, converting the operands to
// float64 and calling math.FMA would round twice (once to float64, once to
// float32), which occasionally differs from the fused result. Instead the
// product is formed exactly in float64, the sum is rounded to odd, and the
// final conversion to float32 then yields the correctly rounded value.
func FMA[T Floats](a, b, c T) T {
	if is32[T]() {
		return T(fma32(float32(a), float32(b), float32(c)))
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// FAM returns b*c + a with a single rounding. The first operand plays the
// additive role.
func FAM[T Floats](a, b, c T) T {
	return FMA(b, c, a)
}

func fma32(a, b, c float32) float32 {
	// 24+24 significand bits fit in 53: the product is exact.
	p := float64(float64(a) * float64(b))
	z := float64(c)
	s := float64(p + z)
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}

	// TwoSum: s + e == p + z exactly.
	bv := float64(s - p)
	av := float64(s - bv)
	e := float64(p-av) + float64(z-bv)
	if e == 0 {
		return float32(s)
	}

	// Round to odd: if s landed on an even significand, step one ulp
	// towards the exact value so the float32 rounding sees the sticky bit.
	bits := math.Float64bits(s)
	if bits&1 == 0 {
		if (e > 0) == (s > 0) {
			bits++
		} else {
			bits--
		}
		s = math.Float64frombits(bits)
	}
	return float32(s)
}
