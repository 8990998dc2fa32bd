// Package faults decides when a stage should reject an otherwise valid request.
package faults

import (
	"math/rand/v2"
	"sync"
)

// Policy rolls a 1-in-denominator failure.
type Policy interface {
	ShouldFail(denominator int) bool
}

// PolicyFunc adapts a plain function into a Policy.
type PolicyFunc func(denominator int) bool

// ShouldFail calls f.
func (f PolicyFunc) ShouldFail(denominator int) bool {
	return f(denominator)
}

var (
	// Never disables fault injection.
	Never Policy = PolicyFunc(func(int) bool { return false })
	// Always fails every roll.
	Always Policy = PolicyFunc(func(int) bool { return true })
)

// Random draws from the process-wide math/rand/v2 source, which is safe for concurrent use.
type Random struct{}

// NewRandom returns the production policy.
func NewRandom() Random {
	return Random{}
}

// ShouldFail reports true with probability 1/denominator. Non-positive denominators never fail.
func (Random) ShouldFail(denominator int) bool {
	if denominator <= 0 {
		return false
	}
	return rand.IntN(denominator) == 0
}

// Sequence replays scripted outcomes in order and keeps repeating the last one.
type Sequence struct {
	mu       sync.Mutex
	outcomes []bool
	next     int
	rolls    []int
}

// NewSequence builds a Sequence. With no outcomes it behaves like Never.
func NewSequence(outcomes ...bool) *Sequence {
	return &Sequence{outcomes: append([]bool(nil), outcomes...)}
}

// ShouldFail returns the next scripted outcome and records the denominator it was asked for.
func (s *Sequence) ShouldFail(denominator int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls = append(s.rolls, denominator)
	if len(s.outcomes) == 0 {
		return false
	}
	idx := s.next
	if idx >= len(s.outcomes) {
		idx = len(s.outcomes) - 1
	} else {
		s.next++
	}
	return s.outcomes[idx]
}

// Rolls returns the denominators requested so far.
func (s *Sequence) Rolls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.rolls...)
}

// FromEnv picks Never when disabled is true and the random policy otherwise.
func FromEnv(disabled bool) Policy {
	if disabled {
		return Never
	}
	return NewRandom()
}
