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

// This file holds the drivers every operation is expressed with. A driver
// validates operand lengths against the sink, then evaluates a scalar
// kernel once per component. When the slice fast path is enabled and all
// operands are Vec or Scalar, the loop runs on the slices directly.
//
// Component i of every operand is read before component i of the sink is
// written, so the sink may be one of the operands (in-place mode). Sinks
// that overlap an operand at a different offset are not supported.

// Map1 stores f(a[i]) into dst for every component of dst and returns dst.
func Map1[D Sink](dst D, a Source, f func(x float32) float32) D {
	n := dst.Len()
	checkLen(n, a)

	if fastPath() {
		if d, ok := any(dst).(Vec); ok {
			if av, ok := a.(Vec); ok {
				for i := range d {
					d[i] = f(av[i])
				}
				return dst
			}
		}
	}

	for i := 0; i < n; i++ {
		dst.SetAt(i, f(a.At(i)))
	}
	return dst
}

// Map2 stores f(a[i], b[i]) into dst for every component of dst and
// returns dst.
func Map2[D Sink](dst D, a, b Source, f func(x, y float32) float32) D {
	n := dst.Len()
	checkLen(n, a)
	checkLen(n, b)

	if fastPath() {
		if d, ok := any(dst).(Vec); ok && map2Slices(d, a, b, f) {
			return dst
		}
	}

	for i := 0; i < n; i++ {
		dst.SetAt(i, f(a.At(i), b.At(i)))
	}
	return dst
}

func map2Slices(d Vec, a, b Source, f func(x, y float32) float32) bool {
	switch av := a.(type) {
	case Vec:
		switch bv := b.(type) {
		case Vec:
			for i := range d {
				d[i] = f(av[i], bv[i])
			}
			return true
		case Scalar:
			s := float32(bv)
			for i := range d {
				d[i] = f(av[i], s)
			}
			return true
		}
	case Scalar:
		if bv, ok := b.(Vec); ok {
			s := float32(av)
			for i := range d {
				d[i] = f(s, bv[i])
			}
			return true
		}
	}
	return false
}

// Map3 stores f(a[i], b[i], c[i]) into dst for every component of dst and
// returns dst.
func Map3[D Sink](dst D, a, b, c Source, f func(x, y, z float32) float32) D {
	n := dst.Len()
	checkLen(n, a)
	checkLen(n, b)
	checkLen(n, c)

	if fastPath() {
		if d, ok := any(dst).(Vec); ok {
			av, aok := a.(Vec)
			bv, bok := b.(Vec)
			cv, cok := c.(Vec)
			if aok && bok && cok {
				for i := range d {
					d[i] = f(av[i], bv[i], cv[i])
				}
				return dst
			}
		}
	}

	for i := 0; i < n; i++ {
		dst.SetAt(i, f(a.At(i), b.At(i), c.At(i)))
	}
	return dst
}

// span returns the number of components to visit in a. A broadcast source
// is visited once.
func span(a Source) int {
	if n := a.Len(); n != AnyLen {
		return n
	}
	return 1
}

// All reports whether pred holds for every component of a.
// It returns true for an empty source.
func All(a Source, pred func(x float32) bool) bool {
	if fastPath() {
		if av, ok := a.(Vec); ok {
			for _, x := range av {
				if !pred(x) {
					return false
				}
			}
			return true
		}
	}

	for i, n := 0, span(a); i < n; i++ {
		if !pred(a.At(i)) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one component of a.
func Any(a Source, pred func(x float32) bool) bool {
	return !All(a, func(x float32) bool { return !pred(x) })
}

// All2 reports whether pred holds for every pair of components of a and b.
// Operands of different lengths never satisfy it.
func All2(a, b Source, pred func(x, y float32) bool) bool {
	n, ok := pairLen(a, b)
	if !ok {
		return false
	}

	if fastPath() {
		av, aok := a.(Vec)
		bv, bok := b.(Vec)
		if aok && bok {
			for i, x := range av {
				if !pred(x, bv[i]) {
					return false
				}
			}
			return true
		}
	}

	for i := 0; i < n; i++ {
		if !pred(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// pairLen returns the common length of a and b. Broadcast operands take the
// other operand's length; two broadcasts compare a single component.
func pairLen(a, b Source) (int, bool) {
	na, nb := a.Len(), b.Len()
	switch {
	case na == AnyLen && nb == AnyLen:
		return 1, true
	case na == AnyLen:
		return nb, true
	case nb == AnyLen, na == nb:
		return na, true
	default:
		return 0, false
	}
}

// Fold combines the components of a from left to right, starting at init.
func Fold(a Source, init float32, f func(acc, x float32) float32) float32 {
	acc := init
	if fastPath() {
		if av, ok := a.(Vec); ok {
			for _, x := range av {
				acc = f(acc, x)
			}
			return acc
		}
	}

	for i, n := 0, span(a); i < n; i++ {
		acc = f(acc, a.At(i))
	}
	return acc
}
