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

package segment

import "math"

// Bit layout of IEEE binary16:
//
//	S | EEEEE | MMMMMMMMMM
//
// Exponent bias 15, max finite value 65504, smallest subnormal 2^-24.
const (
	halfSignMask = 0x8000
	halfInf      = 0x7C00
	halfQuietNaN = 0x7E00
)

// HalfToFloat32 widens the binary16 value h. The conversion is exact.
func HalfToFloat32(h uint16) float32 {
	bits := uint32(h)
	sign := (bits & halfSignMask) << 16
	exp := (bits >> 10) & 0x1F
	mant := bits & 0x3FF

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: shift the leading one into the implicit position.
		exp = 127 - 15 + 1
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3FF
	case 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7FC00000 | mant<<13)
	default:
		exp += 127 - 15
	}
	return math.Float32frombits(sign | exp<<23 | mant<<13)
}

// Float32ToHalf narrows f to binary16 with round-to-nearest-even.
// Overflow becomes Inf, underflow becomes a signed zero, NaN stays NaN.
func Float32ToHalf(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & halfSignMask
	exp := int(bits>>23) & 0xFF
	mant := bits & 0x7FFFFF

	if exp == 0xFF {
		if mant != 0 {
			return sign | halfQuietNaN | uint16(mant>>13)
		}
		return sign | halfInf
	}

	e := exp - 127 + 15
	switch {
	case e >= 31:
		return sign | halfInf
	case e <= 0:
		if e < -10 {
			return sign
		}
		// Subnormal result in units of 2^-24. A carry out of the
		// mantissa produces the smallest normal, which is correct.
		return sign | uint16(roundShift(mant|0x800000, uint(14-e)))
	}

	// Normal result. A carry out of the mantissa bumps the exponent and
	// may reach Inf, which is also correct.
	h := uint32(e)<<10 | mant>>13
	rem := mant & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && h&1 == 1) {
		h++
	}
	return sign | uint16(h)
}

// roundShift returns m >> shift rounded to nearest even.
func roundShift(m uint32, shift uint) uint32 {
	q := m >> shift
	rem := m & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}

// BFloat16ToFloat32 widens the bfloat16 value b. The conversion is exact.
func BFloat16ToFloat32(b uint16) float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Float32ToBFloat16 narrows f to bfloat16 with round-to-nearest-even.
// NaN stays NaN with its sign.
func Float32ToBFloat16(f float32) uint16 {
	bits := math.Float32bits(f)
	if bits&0x7FFFFFFF > 0x7F800000 {
		return uint16(bits>>16) | 0x0040
	}
	// Adding 0x7FFF plus the lowest kept bit rounds ties to even.
	bits += 0x7FFF + (bits>>16)&1
	return uint16(bits >> 16)
}
