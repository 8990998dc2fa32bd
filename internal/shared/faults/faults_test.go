package faults

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandom_DenominatorOneAlwaysFails(t *testing.T) {
	policy := NewRandom()
	for i := 0; i < 100; i++ {
		require.True(t, policy.ShouldFail(1))
	}
}

func TestRandom_NonPositiveDenominatorNeverFails(t *testing.T) {
	policy := NewRandom()
	require.False(t, policy.ShouldFail(0))
	require.False(t, policy.ShouldFail(-3))
}

func TestRandom_RateRoughlyMatchesDenominator(t *testing.T) {
	policy := NewRandom()
	const rolls = 20000
	failures := 0
	for i := 0; i < rolls; i++ {
		if policy.ShouldFail(5) {
			failures++
		}
	}
	// expected 4000; the bound is far outside any realistic deviation
	require.InDelta(t, rolls/5, failures, 800)
}

func TestRandom_ConcurrentCallers(t *testing.T) {
	policy := NewRandom()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				_ = policy.ShouldFail(10)
			}
		}()
	}
	wg.Wait()
}

func TestSequence_ReplaysThenRepeatsLast(t *testing.T) {
	seq := NewSequence(false, true)
	require.False(t, seq.ShouldFail(5))
	require.True(t, seq.ShouldFail(10))
	require.True(t, seq.ShouldFail(10))
	require.Equal(t, []int{5, 10, 10}, seq.Rolls())
}

func TestSequence_EmptyNeverFails(t *testing.T) {
	seq := NewSequence()
	require.False(t, seq.ShouldFail(2))
}

func TestFromEnv(t *testing.T) {
	require.False(t, FromEnv(true).ShouldFail(1))
	require.True(t, FromEnv(false).ShouldFail(1))
	require.True(t, Always.ShouldFail(1000))
	require.False(t, Never.ShouldFail(1))
}
