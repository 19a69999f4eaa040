package lexico

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ScanFiles loads and scans paths on jobs workers. Units come back in input
// order; a unit that failed to load is nil and its error is part of the
// returned one. Cancelling ctx stops handing out files.
func ScanFiles(ctx context.Context, paths []string, cfg Config, jobs int) ([]*Unit, error) {
	if jobs < 1 {
		jobs = 1
	}

	units := make([]*Unit, len(paths))
	errs := make([]error, len(paths), len(paths)+1)
	work := make(chan int)

	wg := new(sync.WaitGroup)
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				unit, err := LoadUnitFromFile(paths[idx])
				if err != nil {
					errs[idx] = fmt.Errorf("loading unit '%s' failed: %w", paths[idx], err)
					continue
				}
				unit.Scan(cfg)
				units[idx] = unit
			}
		}()
	}

feed:
	for idx := range paths {
		select {
		case work <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(work)
	wg.Wait()

	return units, errors.Join(append(errs, ctx.Err())...)
}
