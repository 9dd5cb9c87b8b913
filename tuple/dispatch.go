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
	"os"
	"strconv"
)

// DispatchLevel identifies the loop strategy kernels use.
type DispatchLevel int

const (
	// DispatchGeneric reads and writes every component through the
	// Source and Sink interfaces.
	DispatchGeneric DispatchLevel = iota

	// DispatchSlice recognizes operands that are plain Vec slices or
	// broadcast Scalars and runs direct slice loops over them. Other
	// operands still take the generic path.
	DispatchSlice
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchGeneric:
		return "generic"
	case DispatchSlice:
		return "slice"
	default:
		return "unknown"
	}
}

// currentLevel is the loop strategy for this process.
// Set by init() below; tests flip it to cover both paths.
var currentLevel DispatchLevel

// hasFMA reports a hardware fused multiply-add instruction.
// Set by detectCPUFeatures() in dispatch_*.go files.
var hasFMA bool

func init() {
	detectCPUFeatures()

	if NoFastPathEnv() {
		currentLevel = DispatchGeneric
		return
	}
	currentLevel = DispatchSlice
}

// CurrentLevel returns the loop strategy being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current level.
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA reports whether the CPU has a fused multiply-add instruction.
//
// Results do not depend on it: scalar.FMA rounds once on every platform.
// It only tells whether math.FMA, used for float64, runs in hardware.
func HasFMA() bool {
	return hasFMA
}

// NoFastPathEnv checks if the TUPLE_NO_FASTPATH environment variable is set.
// When set, kernels always use the generic Source/Sink path. This is
// useful for testing and debugging storage backends.
func NoFastPathEnv() bool {
	val := os.Getenv("TUPLE_NO_FASTPATH")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func fastPath() bool {
	return currentLevel == DispatchSlice
}
