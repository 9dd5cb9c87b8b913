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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/viterin/vek/vek32"
)

// TestKernelsMatchVek cross-checks the element-wise kernels against an
// independent float32 slice library on finite data. Every operation
// compared here is a single IEEE operation, so results must agree bit for
// bit.
func TestKernelsMatchVek(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))
	const n = 37
	a, b := randVec(rng, n), randVec(rng, n)
	pos := Abs(Make(n), a)

	tests := []struct {
		name string
		got  Vec
		want []float32
	}{
		{"Add", Add(Make(n), a, b), vek32.Add(a, b)},
		{"Sub", Sub(Make(n), a, b), vek32.Sub(a, b)},
		{"Mul", Mul(Make(n), a, b), vek32.Mul(a, b)},
		{"Div", Div(Make(n), a, b), vek32.Div(a, b)},
		{"Abs", Abs(Make(n), a), vek32.Abs(a)},
		{"Negate", Negate(Make(n), a), vek32.Neg(a)},
		{"Sqrt", Sqrt(Make(n), pos), vek32.Sqrt(pos)},
		{"Min", Min(Make(n), a, b), vek32.Minimum(a, b)},
		{"Max", Max(Make(n), a, b), vek32.Maximum(a, b)},
		{"Mul broadcast", Mul(Make(n), a, Scalar(0.75)), vek32.MulNumber(a, 0.75)},
	}

	forEachLevel(t, func(t *testing.T) {
		for _, tt := range tests {
			if diff := cmp.Diff(tt.want, []float32(tt.got)); diff != "" {
				t.Errorf("%s mismatch (-vek +tuple):\n%s", tt.name, diff)
			}
		}
		if got, want := MinComponent(a), vek32.Min(a); got != want {
			t.Errorf("MinComponent = %v, vek32.Min = %v", got, want)
		}
		if got, want := MaxComponent(a), vek32.Max(a); got != want {
			t.Errorf("MaxComponent = %v, vek32.Max = %v", got, want)
		}
	})
}
