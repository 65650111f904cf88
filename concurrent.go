package sieve

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// FilterConcurrent is Filter with match calls fanned out over a goroutine
// pool. Matchers are pure and carry no internal state, so concurrent
// matching against different documents needs no locking; the result
// preserves the original item order regardless of completion order.
//
// workers <= 0 uses one worker per available CPU. Worth it only when
// documents are large or plentiful; for small collections plain Filter is
// faster.
func FilterConcurrent[T any](items []T, q any, workers int) ([]T, error) {
	m, err := Compile(q)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	matched := make([]bool, len(items))
	var wg sync.WaitGroup
	for i := range items {
		i := i // per-iteration copy; required while go.mod targets go < 1.22
		wg.Add(1)
		task := func() {
			defer wg.Done()
			matched[i] = m.Match(items[i])
		}
		if submitErr := pool.Submit(task); submitErr != nil {
			// Pool rejected the task (released or overloaded); evaluate
			// inline rather than dropping the item.
			task()
		}
	}
	wg.Wait()

	out := make([]T, 0, len(items))
	for i, ok := range matched {
		if ok {
			out = append(out, items[i])
		}
	}
	return out, nil
}
