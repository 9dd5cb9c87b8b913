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

// Command tupleinfo reports how the tuple kernels run on this machine and
// evaluates single operations on literal vectors.
//
// Usage:
//
//	tupleinfo                          # platform, dispatch level, CPU features
//	tupleinfo bands                    # epsilon bands used by the EM predicates
//	tupleinfo ops                      # every operation eval understands
//	tupleinfo eval add 1,2 3,4         # [4 6]
//	tupleinfo eval reverse-div 2,4 8   # [4 2]
//	tupleinfo eval --layout float16 mul 0.1,1 3
//
// A comma-separated argument is a vector; a single number is broadcast to
// every component. Set TUPLE_NO_FASTPATH=1 to force the generic kernel path.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
