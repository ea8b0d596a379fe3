package shamir

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// reconstructParallel evaluates candidate subsets on Workers goroutines.
// First-found-wins is settled by a single compare-and-set: the winner
// publishes its result and closes the stop channel, which unblocks the
// producer. Losing candidates already in flight run to completion and are
// discarded.
func (s *Solver) reconstructParallel(shares []Share, k, budget int) (*Result, error) {
	candidates := make(chan []int, s.Workers)
	stop := make(chan struct{})
	winner := make(chan *Result, 1)

	var found atomic.Bool
	var wg sync.WaitGroup

	go func() {
		defer close(candidates)

		forEachCombination(len(shares), k, func(idx []int) bool {
			next := append([]int(nil), idx...)

			select {
			case candidates <- next:
				return false
			case <-stop:
				return true
			}
		})
	}()

	for w := 0; w < s.Workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for idx := range candidates {
				if found.Load() {
					continue // drain what the producer already queued.
				}

				res, ok := s.evaluate(shares, idx, budget)
				if !ok {
					continue
				}

				if found.CompareAndSwap(false, true) {
					winner <- res
					close(stop)
				}
			}
		}()
	}

	wg.Wait()
	close(winner)

	if res := <-winner; res != nil {
		return res, nil
	}

	return nil, fmt.Errorf("%w: exhausted every %d-subset of %d shares",
		ErrNoConsistentSubset, k, len(shares))
}
