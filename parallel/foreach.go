// package parallel contains a bounded parallel ForEach used to collate batches concurrently.
package parallel

import (
	"sync"
	"sync/atomic"
)

// ForEach calls body for every integer from 0 to length on at most limit goroutines.
// A non-positive limit uses Threads(). It returns when all calls have returned.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return // No iterations to perform
	}
	if limit <= 0 {
		limit = Threads()
	}
	if limit > length {
		limit = length
	}
	if limit == 1 {
		for i := 0; i < length; i++ {
			body(i)
		}
		return
	}

	var (
		next atomic.Int64   // next index to hand out
		wg   sync.WaitGroup // workers
	)
	wg.Add(limit)
	for n := 0; n < limit; n++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= length {
					return
				}
				body(i)
			}
		}()
	}
	wg.Wait()
}
