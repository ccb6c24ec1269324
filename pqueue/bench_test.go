package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/pqueue"
)

// BenchmarkInsertExtract pushes 10k random priorities and drains the queue.
// Complexity: O(n log n) per iteration.
func BenchmarkInsertExtract(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	prios := make([]float64, n)
	for i := range prios {
		prios[i] = r.Float64() * 1000
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.New[int](n)
		for j, p := range prios {
			q.Insert(p, j)
		}
		for q.Len() > 0 {
			_, _ = q.ExtractMin()
		}
	}
}
