package retry_test

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/wavegrid/retry"
	"github.com/katalvlaran/wavegrid/wfc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// failNTimes returns an attempt that fails with a contradiction n times,
// then succeeds with v, and the counter of invocations.
func failNTimes(n int, v int) (retry.Func[int], *atomic.Int64) {
	var calls atomic.Int64

	return func(*rand.Rand) (int, error) {
		if calls.Add(1) <= int64(n) {
			return 0, wfc.ErrContradiction
		}

		return v, nil
	}, &calls
}

// TestForever_RetriesUntilSuccess verifies Forever keeps attempting
// through failures and returns the eventual result with no error channel.
func TestForever_RetriesUntilSuccess(t *testing.T) {
	fn, calls := failNTimes(5, 42)
	got := retry.Forever[int]{}.Retry(fn, testRNG())

	assert.Equal(t, 42, got)
	assert.Equal(t, int64(6), calls.Load(), "five failures plus the success")
}

// TestNumTimes_FirstSuccessStops verifies NumTimes stops at the first
// success within its budget.
func TestNumTimes_FirstSuccessStops(t *testing.T) {
	fn, calls := failNTimes(2, 7)
	got, err := retry.NumTimes[int]{N: 5}.Retry(fn, testRNG())

	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, int64(3), calls.Load())
}

// TestNumTimes_Exhausted verifies the bounded failure path is a
// contradiction-class error.
func TestNumTimes_Exhausted(t *testing.T) {
	fn, calls := failNTimes(100, 0)
	_, err := retry.NumTimes[int]{N: 3}.Retry(fn, testRNG())

	assert.ErrorIs(t, err, retry.ErrAttemptsExhausted)
	assert.ErrorIs(t, err, wfc.ErrContradiction, "exhaustion is contradiction-class")
	assert.Equal(t, int64(3), calls.Load())
}

// TestNumTimes_ZeroFailsImmediately verifies NumTimes(0) fails with a
// contradiction-class error without ever invoking the solving engine.
func TestNumTimes_ZeroFailsImmediately(t *testing.T) {
	fn, calls := failNTimes(0, 1)
	_, err := retry.NumTimes[int]{N: 0}.Retry(fn, testRNG())

	assert.ErrorIs(t, err, wfc.ErrContradiction)
	assert.Equal(t, int64(0), calls.Load(), "attempt must not be invoked")
}

// TestParNumTimes_FirstSuccessWins verifies the parallel policy returns a
// successful result when at least one attempt can succeed.
func TestParNumTimes_FirstSuccessWins(t *testing.T) {
	var calls atomic.Int64
	fn := func(rng *rand.Rand) (int, error) {
		// roughly half the attempts fail, independent of ordering
		if calls.Add(1)%2 == 0 {
			return 0, wfc.ErrContradiction
		}

		return 9, nil
	}
	got, err := retry.ParNumTimes[int]{N: 8, Workers: 4}.Retry(fn, testRNG())

	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

// TestParNumTimes_AllFail verifies a single aggregated contradiction
// failure after every worker's budget is spent.
func TestParNumTimes_AllFail(t *testing.T) {
	var calls atomic.Int64
	fn := func(*rand.Rand) (int, error) {
		calls.Add(1)

		return 0, wfc.ErrContradiction
	}
	_, err := retry.ParNumTimes[int]{N: 6, Workers: 3}.Retry(fn, testRNG())

	assert.ErrorIs(t, err, retry.ErrAttemptsExhausted)
	assert.ErrorIs(t, err, wfc.ErrContradiction)
	assert.Equal(t, int64(6), calls.Load(), "every attempt in the budget runs")
}

// TestParNumTimes_ZeroFailsImmediately mirrors the sequential contract.
func TestParNumTimes_ZeroFailsImmediately(t *testing.T) {
	fn, calls := failNTimes(0, 1)
	_, err := retry.ParNumTimes[int]{N: 0}.Retry(fn, testRNG())

	assert.ErrorIs(t, err, wfc.ErrContradiction)
	assert.Equal(t, int64(0), calls.Load())
}

// TestParNumTimes_DeterministicSeedDerivation verifies the parent source
// is consumed identically regardless of worker scheduling: two runs with
// equal parent seeds see the same per-attempt seeds.
func TestParNumTimes_DeterministicSeedDerivation(t *testing.T) {
	collect := func() []int64 {
		seeds := make(chan int64, 4)
		fn := func(rng *rand.Rand) (int, error) {
			seeds <- rng.Int63()

			return 0, wfc.ErrContradiction
		}
		_, _ = retry.ParNumTimes[int]{N: 4, Workers: 1}.Retry(fn, rand.New(rand.NewSource(99)))
		close(seeds)
		var out []int64
		for s := range seeds {
			out = append(out, s)
		}

		return out
	}

	assert.Equal(t, collect(), collect())
}
