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

// Tuple2 is any type exposing two named float32 components.
type Tuple2 interface {
	V0() float32
	V1() float32
}

// Tuple3 is any type exposing three named float32 components.
type Tuple3 interface {
	Tuple2
	V2() float32
}

// WritableTuple2 is any type accepting two named float32 components.
type WritableTuple2 interface {
	SetV0(x float32)
	SetV1(x float32)
}

// WritableTuple3 is any type accepting three named float32 components.
type WritableTuple3 interface {
	WritableTuple2
	SetV2(x float32)
}

// FromTuple2 adapts t to a 2-component Source.
func FromTuple2(t Tuple2) Source { return tuple2Source{t} }

// FromTuple3 adapts t to a 3-component Source.
func FromTuple3(t Tuple3) Source { return tuple3Source{t} }

// IntoTuple2 adapts t to a 2-component Sink.
func IntoTuple2(t WritableTuple2) Sink { return tuple2Sink{t} }

// IntoTuple3 adapts t to a 3-component Sink.
func IntoTuple3(t WritableTuple3) Sink { return tuple3Sink{t} }

type tuple2Source struct{ t Tuple2 }

func (s tuple2Source) Len() int { return 2 }

func (s tuple2Source) At(i int) float32 {
	CheckIndex(i, 2)
	if i == 0 {
		return s.t.V0()
	}
	return s.t.V1()
}

type tuple3Source struct{ t Tuple3 }

func (s tuple3Source) Len() int { return 3 }

func (s tuple3Source) At(i int) float32 {
	CheckIndex(i, 3)
	switch i {
	case 0:
		return s.t.V0()
	case 1:
		return s.t.V1()
	default:
		return s.t.V2()
	}
}

type tuple2Sink struct{ t WritableTuple2 }

func (s tuple2Sink) Len() int { return 2 }

func (s tuple2Sink) SetAt(i int, x float32) {
	CheckIndex(i, 2)
	if i == 0 {
		s.t.SetV0(x)
		return
	}
	s.t.SetV1(x)
}

type tuple3Sink struct{ t WritableTuple3 }

func (s tuple3Sink) Len() int { return 3 }

func (s tuple3Sink) SetAt(i int, x float32) {
	CheckIndex(i, 3)
	switch i {
	case 0:
		s.t.SetV0(x)
	case 1:
		s.t.SetV1(x)
	default:
		s.t.SetV2(x)
	}
}

// Consumer is a Sink that hands every computed component to a callback
// instead of storing it.
//
//	tuple.Add(tuple.Consume(3, func(i int, x float32) {
//		fmt.Println(i, x)
//	}), a, b)
type Consumer struct {
	n  int
	fn func(i int, x float32)
}

// Consume returns a Consumer accepting n components.
func Consume(n int, fn func(i int, x float32)) *Consumer {
	return &Consumer{n: n, fn: fn}
}

// Len returns the number of components the consumer accepts.
func (c *Consumer) Len() int { return c.n }

// SetAt passes component i to the callback.
func (c *Consumer) SetAt(i int, x float32) {
	CheckIndex(i, c.n)
	c.fn(i, x)
}
