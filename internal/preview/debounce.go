package preview

import (
	"context"
	"sync"
	"time"
)

// newDebouncer returns a request channel and a trigger. Each trigger restarts
// the quiet period; one request is sent once it elapses.
func newDebouncer(quiet time.Duration) (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(quiet, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	return rebuildReq, trigger
}

// startRebuildWorker runs rebuild for each request. Requests arriving while a
// rebuild runs collapse into one follow-up rebuild.
func startRebuildWorker(ctx context.Context, rebuildReq chan struct{}, rebuild func()) {
	var mu sync.Mutex
	running := false
	pending := false

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-rebuildReq:
				mu.Lock()
				if running {
					pending = true
					mu.Unlock()
					continue
				}
				running = true
				mu.Unlock()

				go func() {
					rebuild()

					mu.Lock()
					running = false
					again := pending
					pending = false
					mu.Unlock()
					if again {
						select {
						case rebuildReq <- struct{}{}:
						default:
						}
					}
				}()
			}
		}
	}()
}
