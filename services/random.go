package services

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource wraps a seedable rand.Rand behind a mutex so the swipe roll,
// coupon pick, fallback sampling and reply delay can share one source. Tests
// seed it to force outcomes.
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a source seeded from the clock.
func NewRandomSource() *RandomSource {
	return NewSeededRandomSource(time.Now().UnixNano())
}

// NewSeededRandomSource returns a deterministic source for tests.
func NewSeededRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0.0, 1.0).
func (r *RandomSource) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Intn returns a uniform value in [0, n).
func (r *RandomSource) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// DurationBetween returns a uniform duration in [min, max). Returns min when
// the bounds collapse.
func (r *RandomSource) DurationBetween(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + time.Duration(r.rng.Int63n(int64(max-min)))
}
