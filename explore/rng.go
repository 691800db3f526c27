// Package explore - randomness used to choose among unexplored exits.
//
// Goals:
//   - Determinism: same seed ⇒ identical recorded paths on the same map.
//   - Encapsulation: the driver never touches a global source; a Picker is
//     injected at construction.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A RandPicker belongs to one run.
package explore

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Picker chooses one of n candidates. Pick must return a value in [0, n) for n > 0.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func(n int) int

// Pick calls f(n).
func (f PickerFunc) Pick(n int) int { return f(n) }

// RandPicker picks uniformly using a *rand.Rand.
type RandPicker struct {
	rng *rand.Rand
}

// NewRandPicker returns a deterministic picker.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewRandPicker(seed int64) *RandPicker {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return &RandPicker{rng: rand.New(rand.NewSource(seed))}
}

// NewUnseededPicker returns a picker seeded from the clock, for production runs.
func NewUnseededPicker() *RandPicker {
	return &RandPicker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Pick returns a uniform index in [0, n). It returns 0 for n <= 1.
func (p *RandPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return p.rng.Intn(n)
}
