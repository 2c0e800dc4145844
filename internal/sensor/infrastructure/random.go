package infrastructure

import (
	"math/rand/v2"
	"sync"
	"time"
)

// LockedRandom is a process-wide PCG source safe for concurrent handlers
type LockedRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a random source. A zero seed seeds from the clock.
func NewRandom(seed uint64) *LockedRandom {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &LockedRandom{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Float64 returns a float in [0, 1)
func (r *LockedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
