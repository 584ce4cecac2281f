package retry

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wavegrid/wfc"
)

// ErrAttemptsExhausted indicates every attempt of a bounded policy
// failed with a contradiction. It wraps wfc.ErrContradiction so callers
// can classify it with errors.Is.
var ErrAttemptsExhausted = fmt.Errorf("retry: attempts exhausted: %w", wfc.ErrContradiction)

// Func runs a single solver attempt with the supplied randomness source,
// returning the attempt result or a contradiction-class error.
type Func[T any] func(rng *rand.Rand) (T, error)

// Forever retries fn until it succeeds. Its contract assumes eventual
// success; the return carries no failure case. The caller accepts
// unbounded retry cost.
type Forever[T any] struct{}

// Retry runs fn until the first success and returns its result.
func (Forever[T]) Retry(fn Func[T], rng *rand.Rand) T {
	for {
		v, err := fn(rng)
		if err == nil {
			return v
		}
	}
}

// NumTimes attempts fn up to N times sequentially.
type NumTimes[T any] struct {
	// N bounds the number of attempts; N ≤ 0 fails immediately.
	N int
}

// Retry runs fn up to N times, returning the first success or
// ErrAttemptsExhausted once the bound is spent. With N ≤ 0 the attempt
// is never invoked.
func (p NumTimes[T]) Retry(fn Func[T], rng *rand.Rand) (T, error) {
	for i := 0; i < p.N; i++ {
		v, err := fn(rng)
		if err == nil {
			return v, nil
		}
	}
	var zero T

	return zero, ErrAttemptsExhausted
}

// ParNumTimes spreads up to N attempts across Workers goroutines; the
// first success cancels the remaining workers and their results are
// discarded. fn must be safe for concurrent use; each worker owns a
// private rand.Rand seeded from the parent source, so the parent is
// touched only before any worker starts.
type ParNumTimes[T any] struct {
	// N bounds the total number of attempts; N ≤ 0 fails immediately.
	N int
	// Workers is the concurrency level; ≤ 0 selects GOMAXPROCS-many,
	// capped at N.
	Workers int
}

// Retry runs up to N attempts concurrently, returning the first success
// or ErrAttemptsExhausted after every attempt budget is spent.
func (p ParNumTimes[T]) Retry(fn Func[T], rng *rand.Rand) (T, error) {
	var zero T
	if p.N <= 0 {
		return zero, ErrAttemptsExhausted
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > p.N {
		workers = p.N
	}

	// Derive every attempt seed up front from the parent source; workers
	// then advance independent generators only.
	seeds := make([]int64, p.N)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var next atomic.Int64
	found := make(chan T, 1)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				i := next.Add(1) - 1
				if i >= int64(len(seeds)) {
					return nil
				}
				v, err := fn(rand.New(rand.NewSource(seeds[i])))
				if err != nil {
					continue
				}
				select {
				case found <- v:
					cancel()
				default:
				}

				return nil
			}
		})
	}
	_ = g.Wait() // workers only signal via found; they never return errors

	select {
	case v := <-found:
		return v, nil
	default:
		return zero, ErrAttemptsExhausted
	}
}
