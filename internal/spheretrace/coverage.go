package spheretrace

import (
	"math/rand"
	"runtime"
	"sync"
	"time"
)

// estimateCoverage fires `trials` random primary rays and returns the
// fraction whose first bounce hits a shape.
func estimateCoverage(scene *Scene, width, height, trials int) Real {
	if trials <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	per, rem := trials/workers, trials%workers
	var wg sync.WaitGroup
	hitsCh := make(chan int, workers)

	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		wg.Add(1)
		go func(wid, n int) {
			defer wg.Done()
			// independent RNG per worker
			seed := time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))
			hits := 0
			for i := 0; i < n; i++ {
				r := scene.Camera.PrimaryRay(rng.Intn(width), rng.Intn(height), width, height)
				if _, _, ok := scene.pick(r, 0, false); ok {
					hits++
				}
			}
			hitsCh <- hits
		}(w, n)
	}
	wg.Wait()
	close(hitsCh)

	total := 0
	for h := range hitsCh {
		total += h
	}
	p := Real(total) / Real(trials)
	DebugLog("Coverage estimate: %d/%d rays hit (%.4f)", total, trials, p)
	return p
}
