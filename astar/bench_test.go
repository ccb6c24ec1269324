package astar_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazepath/astar"
)

// openField returns a w×h maze with every node cell and passage open.
func openField(w, h int) string {
	row := strings.Repeat("-", 2*w-1)
	var b strings.Builder
	for y := 0; y < 2*h-1; y++ {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("#", len(row)))
	b.WriteByte('\n')

	return b.String()
}

// BenchmarkSearch_OpenField measures corner-to-corner search on a 200×200 open maze,
// where lazy duplicates in the queue are most frequent.
func BenchmarkSearch_OpenField(b *testing.B) {
	g := mustGraph(b, openField(200, 200))
	root, _ := g.First()
	goal, _ := g.Last()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, root, goal)
	}
}
