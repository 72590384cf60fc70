// Copyright 2025 walteh LLC
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

package selection

import (
	"math/rand/v2"
)

// 🎲 Rand is the part of a pseudo-random generator the sampler needs
type Rand interface {
	IntN(n int) int
}

// 🏭 NewRand builds the generator for one run. A seed gives a reproducible
// PCG stream; nil seeds from the runtime entropy source.
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// 🔀 Shuffle returns a Fisher-Yates permutation of candidates. The input is
// left untouched. The whole slice is shuffled even when only a few elements
// are wanted, so the permutation for a seed never depends on the count.
func Shuffle(rng Rand, candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// 🎯 Sample shuffles candidates and keeps the first count of them.
// Asking for more than exist returns all of them.
func Sample(rng Rand, candidates []Candidate, count int) []Candidate {
	shuffled := Shuffle(rng, candidates)
	if count < 0 {
		count = 0
	}
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
