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

import (
	"encoding/binary"
	"math"
)

// Layout is the encoding of one element in a segment.
type Layout uint8

const (
	// Float32 stores IEEE binary32 values, 4 bytes little-endian.
	Float32 Layout = iota

	// Float16 stores IEEE binary16 values, 2 bytes little-endian.
	// Writes round to nearest even; magnitudes above 65504 become Inf.
	Float16

	// BFloat16 stores the upper half of a binary32 value, 2 bytes
	// little-endian. Writes round to nearest even.
	BFloat16
)

// Size returns the number of bytes per element.
func (l Layout) Size() int {
	if l == Float32 {
		return 4
	}
	return 2
}

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	default:
		return "unknown"
	}
}

func (l Layout) load(b []byte) float32 {
	switch l {
	case Float16:
		return HalfToFloat32(binary.LittleEndian.Uint16(b))
	case BFloat16:
		return BFloat16ToFloat32(binary.LittleEndian.Uint16(b))
	default:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	}
}

func (l Layout) store(b []byte, x float32) {
	switch l {
	case Float16:
		binary.LittleEndian.PutUint16(b, Float32ToHalf(x))
	case BFloat16:
		binary.LittleEndian.PutUint16(b, Float32ToBFloat16(x))
	default:
		binary.LittleEndian.PutUint32(b, math.Float32bits(x))
	}
}
