package haf

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunkPlan resolves (workers, chunkSize) into a concrete list of
// [x0, x0+count) ranges covering [0, total), per §5's "expose task
// granularity as a parameter to the work-sharing pool" recommendation.
func chunkPlan(total uint64, o Options) []struct{ x0, count uint64 } {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunkSize := uint64(o.ChunkSize)
	if chunkSize == 0 {
		chunkSize = (total + uint64(workers) - 1) / uint64(workers)
		if chunkSize == 0 {
			chunkSize = 1
		}
	}

	plan := make([]struct{ x0, count uint64 }, 0, (total+chunkSize-1)/chunkSize)
	for x0 := uint64(0); x0 < total; x0 += chunkSize {
		count := chunkSize
		if x0+count > total {
			count = total - x0
		}
		plan = append(plan, struct{ x0, count uint64 }{x0, count})
	}

	return plan
}

// dispatchReal fans a real-valued subset worker out across goroutines via
// errgroup.Group, one goroutine per chunk writing to a private slot; no
// locks guard the accumulator, only the final sequential sum over slots.
// errgroup.Group (not WithContext) is used deliberately: per §5, a failing
// task must not cancel its siblings — every chunk runs to completion and
// the first error is surfaced after the join.
func dispatchReal(m int, o Options, worker func(x0, count uint64) (float64, error)) (float64, error) {
	total := uint64(1) << uint(m)
	plan := chunkPlan(total, o)

	partials := make([]float64, len(plan))

	var g errgroup.Group
	for i, rng := range plan {
		i, rng := i, rng
		g.Go(func() error {
			v, err := worker(rng.x0, rng.count)
			if err != nil {
				return err
			}
			partials[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum float64
	for _, v := range partials {
		sum += v
	}

	return sum, nil
}

// dispatchComplex is dispatchReal for a complex-valued subset worker.
func dispatchComplex(m int, o Options, worker func(x0, count uint64) (complex128, error)) (complex128, error) {
	total := uint64(1) << uint(m)
	plan := chunkPlan(total, o)

	partials := make([]complex128, len(plan))

	var g errgroup.Group
	for i, rng := range plan {
		i, rng := i, rng
		g.Go(func() error {
			v, err := worker(rng.x0, rng.count)
			if err != nil {
				return err
			}
			partials[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	var sum complex128
	for _, v := range partials {
		sum += v
	}

	return sum, nil
}
