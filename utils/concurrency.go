package utils

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/CPU-commits/LMS_Backend/res"
)

// Concurrency runs do(0..count-1) with at most semWeight in flight and
// returns the first error any of them set.
func Concurrency(
	semWeight int64,
	count int,
	do func(index int) *res.ErrorRes,
) *res.ErrorRes {
	var wg sync.WaitGroup
	var lock sync.Mutex
	var firstErr *res.ErrorRes

	sem := semaphore.NewWeighted(semWeight)
	ctx := context.Background()

	wg.Add(count)
	for i := 0; i < count; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Done()
			return &res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusInternalServerError,
			}
		}
		go func(index int) {
			defer wg.Done()
			defer sem.Release(1)

			if errRes := do(index); errRes != nil {
				lock.Lock()
				if firstErr == nil {
					firstErr = errRes
				}
				lock.Unlock()
			}
		}(i)
	}
	wg.Wait()
	return firstErr
}
