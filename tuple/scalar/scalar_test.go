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

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"
)

var (
	inf32 = float32(math.Inf(1))
	nan32 = float32(math.NaN())
)

func isNegZero32(x float32) bool {
	return x == 0 && math.Signbit(float64(x))
}

func TestBinaryKernels(t *testing.T) {
	tests := []struct {
		name string
		f    func(x, y float32) float32
		x, y float32
		want float32
	}{
		{"Add", Add[float32], 1, 2, 3},
		{"Sub", Sub[float32], 5, 2, 3},
		{"ReverseSub", ReverseSub[float32], 5, 2, -3},
		{"Mul", Mul[float32], 3, 4, 12},
		{"Div", Div[float32], 8, 2, 4},
		{"ReverseDiv", ReverseDiv[float32], 2, 8, 4},
		{"Pow", Pow[float32], 2, 10, 1024},
		{"ReversePow", ReversePow[float32], 10, 2, 1024},
		{"Min", Min[float32], 3, -1, -1},
		{"Max", Max[float32], 3, -1, 3},
		{"ClampMin", ClampMin[float32], -3, 0, 0},
		{"ClampMax", ClampMax[float32], 7, 3, 3},
		{"Div by zero", Div[float32], 1, 0, inf32},
		{"ReverseDiv by zero", ReverseDiv[float32], 0, -1, -inf32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(tt.x, tt.y); got != tt.want {
				t.Errorf("%s(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestUnaryKernels(t *testing.T) {
	tests := []struct {
		name string
		f    func(x float32) float32
		x    float32
		want float32
	}{
		{"Sqrt", Sqrt[float32], 16, 4},
		{"Cbrt", Cbrt[float32], -27, -3},
		{"Abs", Abs[float32], -2.5, 2.5},
		{"Negate", Negate[float32], 2.5, -2.5},
		{"Squared", Squared[float32], -3, 9},
		{"Reciprocal", Reciprocal[float32], 4, 0.25},
		{"Reciprocal of zero", Reciprocal[float32], 0, inf32},
		{"Signum positive", Signum[float32], 42, 1},
		{"Signum negative", Signum[float32], -0.001, -1},
		{"Signum of Inf", Signum[float32], -inf32, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(tt.x); got != tt.want {
				t.Errorf("%s(%v) = %v, want %v", tt.name, tt.x, got, tt.want)
			}
		})
	}

	t.Run("Sqrt of negative", func(t *testing.T) {
		if got := Sqrt[float32](-1); !IsNaN(got) {
			t.Errorf("Sqrt(-1) = %v, want NaN", got)
		}
	})
}

func TestSignumSpecialValues(t *testing.T) {
	if got := Signum(nan32); !IsNaN(got) {
		t.Errorf("Signum(NaN) = %v, want NaN", got)
	}
	if got := Signum(float32(0)); got != 0 || isNegZero32(got) {
		t.Errorf("Signum(+0) = %v, want +0", got)
	}
	negZero := float32(math.Copysign(0, -1))
	if got := Signum(negZero); !isNegZero32(got) {
		t.Errorf("Signum(-0) = %v, want -0", got)
	}
}

func TestMinMaxSpecialValues(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	if got := Min(float32(0), negZero); !isNegZero32(got) {
		t.Errorf("Min(+0, -0) = %v, want -0", got)
	}
	if got := Max(negZero, float32(0)); isNegZero32(got) {
		t.Errorf("Max(-0, +0) = %v, want +0", got)
	}
	if got := Min(nan32, 1); !IsNaN(got) {
		t.Errorf("Min(NaN, 1) = %v, want NaN", got)
	}
	if got := Max(1, nan32); !IsNaN(got) {
		t.Errorf("Max(1, NaN) = %v, want NaN", got)
	}
}

func TestClamp(t *testing.T) {
	const lo, hi = float32(-2), float32(3)
	for _, x := range []float32{-100, -2.0001, -2, 0, 1.5, 3, 3.0001, 100, inf32, -inf32} {
		got := Clamp(x, lo, hi)
		if got < lo || got > hi {
			t.Errorf("Clamp(%v, %v, %v) = %v, outside bounds", x, lo, hi, got)
		}
	}
	if got := Clamp(lo, lo, hi); got != lo {
		t.Errorf("Clamp(lo) = %v, want %v", got, lo)
	}
	if got := Clamp(hi, lo, hi); got != hi {
		t.Errorf("Clamp(hi) = %v, want %v", got, hi)
	}

	// Inverted bounds resolve to hi.
	if got := Clamp[float32](0, 5, 1); got != 1 {
		t.Errorf("Clamp(0, 5, 1) = %v, want 1", got)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		x                   float32
		finite, infinite, n bool
	}{
		{0, true, false, false},
		{-1e30, true, false, false},
		{inf32, false, true, false},
		{-inf32, false, true, false},
		{nan32, false, false, true},
	}
	for _, tt := range tests {
		if got := IsFinite(tt.x); got != tt.finite {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.x, got, tt.finite)
		}
		if got := IsInfinite(tt.x); got != tt.infinite {
			t.Errorf("IsInfinite(%v) = %v, want %v", tt.x, got, tt.infinite)
		}
		if got := IsNaN(tt.x); got != tt.n {
			t.Errorf("IsNaN(%v) = %v, want %v", tt.x, got, tt.n)
		}
	}
}

// TestFMASingleRounding uses operands where rounding the product to
// float32 before the add loses the low bit that the fused result keeps.
func TestFMASingleRounding(t *testing.T) {
	a := float32(1 + 1.0/4096) // 1 + 2^-12
	c := float32(-1)

	naive := float32(a*a) + c
	fused := FMA(a, a, c)
	want := float32(1.0/2048 + 1.0/16777216) // 2^-11 + 2^-24

	if fused != want {
		t.Errorf("FMA(%v, %v, %v) = %v, want %v", a, a, c, fused, want)
	}
	if naive == fused {
		t.Errorf("separate multiply and add should round differently, both gave %v", naive)
	}
}

// TestFMALargeCancellation exercises the 1e8*1e8 - 1e16 shape: the low
// bits of the product vanish when it is rounded to float32 first.
func TestFMALargeCancellation(t *testing.T) {
	a := float32(100000008)
	b := float32(99999992)
	c := float32(-1e16)

	exact := new(big.Float).SetPrec(200).Mul(big.NewFloat(float64(a)), big.NewFloat(float64(b)))
	want, _ := exact.Add(exact, big.NewFloat(float64(c))).Float32()

	got := FMA(a, b, c)
	if got != want {
		t.Errorf("FMA(%v, %v, %v) = %v, want %v", a, b, c, got, want)
	}
	if naive := float32(a*b) + c; naive == got {
		t.Errorf("separate multiply and add should round differently, both gave %v", naive)
	}
}

// TestFMAMatchesExact compares against an exact big.Float evaluation
// rounded once to float32.
func TestFMAMatchesExact(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randFloat := func() float32 {
		mant := rng.Float64()*2 - 1
		exp := rng.IntN(60) - 30
		return float32(math.Ldexp(mant, exp))
	}

	for i := 0; i < 20000; i++ {
		a, b, c := randFloat(), randFloat(), randFloat()
		// Bias c towards cancelling the product so ties and sticky bits
		// actually get exercised.
		if i%2 == 0 {
			c = -float32(a * b)
			c = math.Float32frombits(math.Float32bits(c) ^ uint32(rng.IntN(4)))
		}

		exact := new(big.Float).SetPrec(1000)
		exact.Mul(big.NewFloat(float64(a)), big.NewFloat(float64(b)))
		exact.Add(exact, big.NewFloat(float64(c)))
		want, _ := exact.Float32()

		if got := FMA(a, b, c); got != want {
			t.Fatalf("FMA(%v, %v, %v) = %v, want %v", a, b, c, got, want)
		}
	}
}

func TestFMASpecialValues(t *testing.T) {
	if got := FMA(inf32, 0, 1); !IsNaN(got) {
		t.Errorf("FMA(Inf, 0, 1) = %v, want NaN", got)
	}
	if got := FMA(inf32, 1, 1); got != inf32 {
		t.Errorf("FMA(Inf, 1, 1) = %v, want +Inf", got)
	}
	if got := FMA(nan32, 1, 1); !IsNaN(got) {
		t.Errorf("FMA(NaN, 1, 1) = %v, want NaN", got)
	}
	// Overflow of the rounded float32 result.
	if got := FMA[float32](3e38, 2, 0); got != inf32 {
		t.Errorf("FMA(3e38, 2, 0) = %v, want +Inf", got)
	}
}

func TestFMAFloat64(t *testing.T) {
	a, b, c := 0.1, 10.0, -1.0
	if got, want := FMA(a, b, c), math.FMA(a, b, c); got != want {
		t.Errorf("FMA(%v, %v, %v) = %v, want %v", a, b, c, got, want)
	}
}

func TestFAMArgumentOrder(t *testing.T) {
	// FAM(a, b, c) = b*c + a
	if got := FAM[float32](1, 2, 3); got != 7 {
		t.Errorf("FAM(1, 2, 3) = %v, want 7", got)
	}
	if got := FMA[float32](1, 2, 3); got != 5 {
		t.Errorf("FMA(1, 2, 3) = %v, want 5", got)
	}
}
