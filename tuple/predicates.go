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

import "github.com/ajroetker/go-tuple/tuple/scalar"

// StorageSharer is implemented by storage backends that can tell whether
// another source is a view of the very same components. Equals uses it to
// short-circuit comparisons of a vector with itself.
type StorageSharer interface {
	SharesStorage(other Source) bool
}

// absent reports whether s is a nil interface or a nil vector.
func absent(s Source) bool {
	switch v := s.(type) {
	case nil:
		return true
	case Vec:
		return v == nil
	case *Vec2:
		return v == nil
	case *Vec3:
		return v == nil
	}
	return false
}

// sameStorage reports whether a and b read the same memory.
func sameStorage(a, b Source) bool {
	switch av := a.(type) {
	case Vec:
		if bv, ok := b.(Vec); ok {
			return len(av) == len(bv) && len(av) > 0 && &av[0] == &bv[0]
		}
	case *Vec2:
		if bv, ok := b.(*Vec2); ok {
			return av == bv
		}
	case *Vec3:
		if bv, ok := b.(*Vec3); ok {
			return av == bv
		}
	case StorageSharer:
		return av.SharesStorage(b)
	}
	if bs, ok := b.(StorageSharer); ok {
		return bs.SharesStorage(a)
	}
	return false
}

// Equals reports whether a and b hold exactly the same components.
//
// Two absent operands (nil interface or nil vector) are equal, and an
// absent operand never equals a present one. Operands sharing storage are
// equal without looking at the components. Otherwise components compare
// with ==, so a NaN component makes the vectors unequal, and vectors of
// different lengths are unequal.
func Equals(a, b Source) bool {
	if absent(a) || absent(b) {
		return absent(a) && absent(b)
	}
	if sameStorage(a, b) {
		return true
	}
	return All2(a, b, scalar.Equals[float32])
}

// EqualsEM reports whether every pair of components differs by at most tol.
func EqualsEM(tol float32, a, b Source) bool {
	return All2(a, b, func(x, y float32) bool { return scalar.EqualsEM(tol, x, y) })
}

// EqualsEM4 is EqualsEM with tolerance scalar.EM4.
func EqualsEM4(a, b Source) bool { return All2(a, b, scalar.EqualsEM4[float32]) }

// EqualsEM6 is EqualsEM with tolerance scalar.EM6.
func EqualsEM6(a, b Source) bool { return All2(a, b, scalar.EqualsEM6[float32]) }

// EqualsEM8 is EqualsEM with tolerance scalar.EM8.
func EqualsEM8(a, b Source) bool { return All2(a, b, scalar.EqualsEM8[float32]) }

// at2 validates i against both operands and returns their components.
func at2(i int, a, b Source) (float32, float32) {
	checkSourceIndex(i, a)
	checkSourceIndex(i, b)
	return a.At(i), b.At(i)
}

// at1 validates i against a and returns component i.
func at1(i int, a Source) float32 {
	checkSourceIndex(i, a)
	return a.At(i)
}

// EqualsAt reports whether component i of a equals component i of b.
// It panics with an *IndexError if i is out of range for either operand.
func EqualsAt(i int, a, b Source) bool {
	return scalar.Equals[float32](at2(i, a, b))
}

// EqualsEMAt reports whether component i of a and b differ by at most tol.
func EqualsEMAt(tol float32, i int, a, b Source) bool {
	x, y := at2(i, a, b)
	return scalar.EqualsEM(tol, x, y)
}

// EqualsEM4At is EqualsEMAt with tolerance scalar.EM4.
func EqualsEM4At(i int, a, b Source) bool { return scalar.EqualsEM4[float32](at2(i, a, b)) }

// EqualsEM6At is EqualsEMAt with tolerance scalar.EM6.
func EqualsEM6At(i int, a, b Source) bool { return scalar.EqualsEM6[float32](at2(i, a, b)) }

// EqualsEM8At is EqualsEMAt with tolerance scalar.EM8.
func EqualsEM8At(i int, a, b Source) bool { return scalar.EqualsEM8[float32](at2(i, a, b)) }

// IsZero reports whether every component of a is exactly zero.
func IsZero(a Source) bool { return All(a, scalar.IsZero[float32]) }

// IsZeroEM reports whether every component of a is within tol of zero.
func IsZeroEM(tol float32, a Source) bool {
	return All(a, func(x float32) bool { return scalar.IsZeroEM(tol, x) })
}

// IsZeroEM4 is IsZeroEM with tolerance scalar.EM4.
func IsZeroEM4(a Source) bool { return All(a, scalar.IsZeroEM4[float32]) }

// IsZeroEM6 is IsZeroEM with tolerance scalar.EM6.
func IsZeroEM6(a Source) bool { return All(a, scalar.IsZeroEM6[float32]) }

// IsZeroEM8 is IsZeroEM with tolerance scalar.EM8.
func IsZeroEM8(a Source) bool { return All(a, scalar.IsZeroEM8[float32]) }

// IsZeroAt reports whether component i of a is exactly zero.
func IsZeroAt(i int, a Source) bool { return scalar.IsZero(at1(i, a)) }

// IsZeroEMAt reports whether component i of a is within tol of zero.
func IsZeroEMAt(tol float32, i int, a Source) bool { return scalar.IsZeroEM(tol, at1(i, a)) }

// IsFinite reports whether every component of a is finite.
func IsFinite(a Source) bool { return All(a, scalar.IsFinite[float32]) }

// IsInfinite reports whether every component of a is infinite.
//
// A vector with one infinite component is not infinite; see HasInfinite.
func IsInfinite(a Source) bool { return All(a, scalar.IsInfinite[float32]) }

// IsNaN reports whether every component of a is NaN.
//
// A vector with one NaN component is not NaN; see HasNaN.
func IsNaN(a Source) bool { return All(a, scalar.IsNaN[float32]) }

// HasInfinite reports whether at least one component of a is infinite.
func HasInfinite(a Source) bool { return Any(a, scalar.IsInfinite[float32]) }

// HasNaN reports whether at least one component of a is NaN.
func HasNaN(a Source) bool { return Any(a, scalar.IsNaN[float32]) }

// IsFiniteAt reports whether component i of a is finite.
func IsFiniteAt(i int, a Source) bool { return scalar.IsFinite(at1(i, a)) }

// IsInfiniteAt reports whether component i of a is infinite.
func IsInfiniteAt(i int, a Source) bool { return scalar.IsInfinite(at1(i, a)) }

// IsNaNAt reports whether component i of a is NaN.
func IsNaNAt(i int, a Source) bool { return scalar.IsNaN(at1(i, a)) }
