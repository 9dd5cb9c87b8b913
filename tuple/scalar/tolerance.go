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

// Fixed tolerance bands shared by every approximate comparison and zero test.
const (
	EM4 = 1e-4
	EM6 = 1e-6
	EM8 = 1e-8
)

// EqualsEM reports whether |x - y| <= tol.
//
// The difference is taken in T. NaN operands never compare equal, and
// neither do two equal infinities (their difference is NaN).
func EqualsEM[T Floats](tol, x, y T) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// EqualsEM4 is EqualsEM with tolerance EM4.
func EqualsEM4[T Floats](x, y T) bool { return EqualsEM(T(EM4), x, y) }

// EqualsEM6 is EqualsEM with tolerance EM6.
func EqualsEM6[T Floats](x, y T) bool { return EqualsEM(T(EM6), x, y) }

// EqualsEM8 is EqualsEM with tolerance EM8.
func EqualsEM8[T Floats](x, y T) bool { return EqualsEM(T(EM8), x, y) }

// Equals reports x == y.
func Equals[T Floats](x, y T) bool { return x == y }

// IsZero reports whether x is +0 or -0.
func IsZero[T Floats](x T) bool { return x == 0 }

// IsZeroEM reports whether |x| <= tol.
func IsZeroEM[T Floats](tol, x T) bool { return EqualsEM(tol, x, 0) }

// IsZeroEM4 is IsZeroEM with tolerance EM4.
func IsZeroEM4[T Floats](x T) bool { return IsZeroEM(T(EM4), x) }

// IsZeroEM6 is IsZeroEM with tolerance EM6.
func IsZeroEM6[T Floats](x T) bool { return IsZeroEM(T(EM6), x) }

// IsZeroEM8 is IsZeroEM with tolerance EM8.
func IsZeroEM8[T Floats](x T) bool { return IsZeroEM(T(EM8), x) }
