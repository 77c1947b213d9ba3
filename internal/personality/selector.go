package personality

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Selector picks phrases from the banks. The random source is injectable so
// tests can seed it; a Selector is safe for concurrent use.
type Selector struct {
	mu    sync.Mutex
	rng   *rand.Rand
	fixed bool
}

// NewSelector creates a Selector drawing from src. A nil src uses a
// time-seeded PCG generator.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &Selector{rng: rand.New(src)}
}

// NewFixedSelector creates a Selector whose Pick always returns the first
// phrase, for reproducible output.
func NewFixedSelector() *Selector {
	return &Selector{fixed: true}
}

// Pick returns a uniformly random phrase of the category at the given
// fierceness level.
func (s *Selector) Pick(fierceness int, category PhraseCategory) string {
	if s.fixed {
		return s.First(fierceness, category)
	}
	candidates := mustCandidates(fierceness, category)
	if len(candidates) == 1 {
		return candidates[0]
	}
	s.mu.Lock()
	i := s.rng.IntN(len(candidates))
	s.mu.Unlock()
	return candidates[i]
}

// First returns the first phrase of the category at the given level.
func (s *Selector) First(fierceness int, category PhraseCategory) string {
	return mustCandidates(fierceness, category)[0]
}

// mustCandidates panics on an empty category: banks are validated at init,
// so an empty result means an unknown category was passed in.
func mustCandidates(fierceness int, category PhraseCategory) []string {
	candidates := Phrases(fierceness).Get(category)
	if len(candidates) == 0 {
		panic("personality: no phrases for category " + string(category))
	}
	return candidates
}
