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

package main

import (
	"fmt"

	"github.com/ajroetker/go-tuple/tuple"
)

// Operation families, in listing order.
const (
	familyArithmetic = "arithmetic"
	familyValue      = "value"
	familyPredicate  = "predicate"
	familyReduction  = "reduction"
)

var families = []string{familyArithmetic, familyValue, familyPredicate, familyReduction}

// operation is one entry eval can run. Exactly one of kernel and eval is
// set: kernels write a vector into a sink, eval returns a formatted value.
type operation struct {
	name   string
	family string
	arity  int
	usage  string
	kernel func(dst tuple.Sink, args []tuple.Source)
	eval   func(args []tuple.Source) string

	// check, when set, validates the parsed operands before evaluation.
	check func(args []tuple.Source) error
}

type (
	unaryKernel   = func(dst tuple.Sink, a tuple.Source) tuple.Sink
	binaryKernel  = func(dst tuple.Sink, a, b tuple.Source) tuple.Sink
	ternaryKernel = func(dst tuple.Sink, a, b, c tuple.Source) tuple.Sink
)

func unaryOp(name, family, usage string, f unaryKernel) operation {
	return operation{name: name, family: family, arity: 1, usage: usage,
		kernel: func(dst tuple.Sink, args []tuple.Source) { f(dst, args[0]) }}
}

func binaryOp(name, family, usage string, f binaryKernel) operation {
	return operation{name: name, family: family, arity: 2, usage: usage,
		kernel: func(dst tuple.Sink, args []tuple.Source) { f(dst, args[0], args[1]) }}
}

func ternaryOp(name, family, usage string, f ternaryKernel) operation {
	return operation{name: name, family: family, arity: 3, usage: usage,
		kernel: func(dst tuple.Sink, args []tuple.Source) { f(dst, args[0], args[1], args[2]) }}
}

func predicate(name, usage string, f func(a tuple.Source) bool) operation {
	return operation{name: name, family: familyPredicate, arity: 1, usage: usage,
		eval: func(args []tuple.Source) string { return fmt.Sprint(f(args[0])) }}
}

func pairPredicate(name, usage string, f func(a, b tuple.Source) bool) operation {
	return operation{name: name, family: familyPredicate, arity: 2, usage: usage,
		eval: func(args []tuple.Source) string { return fmt.Sprint(f(args[0], args[1])) }}
}

// tolPredicate takes the tolerance as its first operand, which must be a
// single number or a one-component vector.
func tolPredicate(name, usage string, f func(tol float32, a, b tuple.Source) bool) operation {
	return operation{name: name, family: familyPredicate, arity: 3, usage: usage,
		eval: func(args []tuple.Source) string { return fmt.Sprint(f(args[0].At(0), args[1], args[2])) },
		check: func(args []tuple.Source) error {
			if n := args[0].Len(); n != tuple.AnyLen && n != 1 {
				return fmt.Errorf("%s: tolerance must be a single number, got %d components", name, n)
			}
			return nil
		}}
}

func reduction(name, usage string, f func(a tuple.Source) float32) operation {
	return operation{name: name, family: familyReduction, arity: 1, usage: usage,
		eval: func(args []tuple.Source) string { return fmt.Sprint(f(args[0])) }}
}

var operations = []operation{
	binaryOp("add", familyArithmetic, "a + b", tuple.Add[tuple.Sink]),
	binaryOp("sub", familyArithmetic, "a - b", tuple.Sub[tuple.Sink]),
	binaryOp("reverse-sub", familyArithmetic, "b - a", tuple.ReverseSub[tuple.Sink]),
	binaryOp("mul", familyArithmetic, "a * b", tuple.Mul[tuple.Sink]),
	binaryOp("div", familyArithmetic, "a / b", tuple.Div[tuple.Sink]),
	binaryOp("reverse-div", familyArithmetic, "b / a", tuple.ReverseDiv[tuple.Sink]),
	binaryOp("pow", familyArithmetic, "a ** b", tuple.Pow[tuple.Sink]),
	binaryOp("reverse-pow", familyArithmetic, "b ** a", tuple.ReversePow[tuple.Sink]),
	ternaryOp("fma", familyArithmetic, "a*b + c, rounded once", tuple.FMA[tuple.Sink]),
	ternaryOp("fam", familyArithmetic, "b*c + a, rounded once", tuple.FAM[tuple.Sink]),
	unaryOp("sqrt", familyArithmetic, "square root", tuple.Sqrt[tuple.Sink]),
	unaryOp("cbrt", familyArithmetic, "cube root", tuple.Cbrt[tuple.Sink]),
	unaryOp("abs", familyArithmetic, "|a|", tuple.Abs[tuple.Sink]),
	unaryOp("reciprocal", familyArithmetic, "1 / a", tuple.Reciprocal[tuple.Sink]),
	unaryOp("negate", familyArithmetic, "-a", tuple.Negate[tuple.Sink]),
	unaryOp("squared", familyArithmetic, "a * a", tuple.Squared[tuple.Sink]),

	binaryOp("min", familyValue, "component-wise minimum", tuple.Min[tuple.Sink]),
	binaryOp("max", familyValue, "component-wise maximum", tuple.Max[tuple.Sink]),
	unaryOp("signum", familyValue, "-1, +1, or a itself for zeros and NaN", tuple.Signum[tuple.Sink]),
	binaryOp("clamp-min", familyValue, "max(a, lo)", tuple.ClampMin[tuple.Sink]),
	binaryOp("clamp-max", familyValue, "min(a, hi)", tuple.ClampMax[tuple.Sink]),
	ternaryOp("clamp", familyValue, "min(max(a, lo), hi)", tuple.Clamp[tuple.Sink]),

	pairPredicate("equals", "every a == b", tuple.Equals),
	tolPredicate("equals-em", "every |a - b| <= tol; operands: tol a b", tuple.EqualsEM),
	pairPredicate("equals-em4", "every |a - b| <= 1e-4", tuple.EqualsEM4),
	pairPredicate("equals-em6", "every |a - b| <= 1e-6", tuple.EqualsEM6),
	pairPredicate("equals-em8", "every |a - b| <= 1e-8", tuple.EqualsEM8),
	predicate("is-zero", "every component is zero", tuple.IsZero),
	predicate("is-zero-em4", "every |a| <= 1e-4", tuple.IsZeroEM4),
	predicate("is-zero-em6", "every |a| <= 1e-6", tuple.IsZeroEM6),
	predicate("is-zero-em8", "every |a| <= 1e-8", tuple.IsZeroEM8),
	predicate("is-finite", "every component is finite", tuple.IsFinite),
	predicate("is-infinite", "every component is infinite", tuple.IsInfinite),
	predicate("is-nan", "every component is NaN", tuple.IsNaN),
	predicate("has-infinite", "some component is infinite", tuple.HasInfinite),
	predicate("has-nan", "some component is NaN", tuple.HasNaN),

	reduction("min-component", "smallest component", tuple.MinComponent),
	reduction("max-component", "largest component", tuple.MaxComponent),
}
