package field

import "sync"

// Parallel splits evaluation of f across the given number of worker
// goroutines. Fields are pure, so disjoint coordinate subsets need no
// coordination and the result is identical to evaluating f directly.
func Parallel(f Func, workers int) Func {
	if workers <= 1 {
		return f
	}
	return func(x, y []float64) []float64 {
		checkLen(x, y)
		n := len(x)
		if n == 0 {
			return []float64{}
		}
		chunk := (n + workers - 1) / workers
		out := make([]float64, n)
		var wg sync.WaitGroup
		for lo := 0; lo < n; lo += chunk {
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				copy(out[lo:hi], f(x[lo:hi], y[lo:hi]))
			}(lo, hi)
		}
		wg.Wait()
		return out
	}
}
