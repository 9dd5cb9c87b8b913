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

import "github.com/ajroetker/go-tuple/tuple"

// View is a window of n elements in a Segment. It implements tuple.Source
// and tuple.Sink.
type View struct {
	seg    *Segment
	layout Layout
	off    int
	n      int
}

// Len returns the number of elements in the view.
func (v *View) Len() int { return v.n }

// Layout returns the element encoding of the view.
func (v *View) Layout() Layout { return v.layout }

// Offset returns the byte offset of the first element.
func (v *View) Offset() int { return v.off }

// At decodes element i.
func (v *View) At(i int) float32 {
	tuple.CheckIndex(i, v.n)
	size := v.layout.Size()
	return v.layout.load(v.seg.span(v.off+i*size, size))
}

// SetAt encodes x into element i, rounding to the layout's precision.
func (v *View) SetAt(i int, x float32) {
	tuple.CheckIndex(i, v.n)
	size := v.layout.Size()
	v.layout.store(v.seg.span(v.off+i*size, size), x)
}

// SharesStorage reports whether other is a view of the same elements.
// A nil view shares storage with nothing.
func (v *View) SharesStorage(other tuple.Source) bool {
	o, ok := other.(*View)
	if !ok || v == nil || o == nil {
		return false
	}
	return o.seg == v.seg && o.layout == v.layout && o.off == v.off && o.n == v.n
}

// Floats decodes every element into a new slice.
func (v *View) Floats() tuple.Vec {
	return tuple.Copy(tuple.Make(v.n), v)
}
