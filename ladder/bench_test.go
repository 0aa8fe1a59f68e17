package ladder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordindex"
)

// benchIndex draws 20k five-letter words; dense enough that most pairs connect.
func benchIndex(b *testing.B) (*wordindex.Index, []string) {
	b.Helper()
	ix, err := wordindex.Build(randomWords(rand.New(rand.NewSource(5)), 20000, 5, "abcdefghijklm"))
	if err != nil {
		b.Fatal(err)
	}
	return ix, ix.Words()
}

// BenchmarkFindPath measures sequential bidirectional search.
func BenchmarkFindPath(b *testing.B) {
	ix, words := benchIndex(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ladder.FindPath(ix, nil, words[i%len(words)], words[(i*7919)%len(words)])
	}
}

// BenchmarkFindPath_Workers4 measures the same queries with intra-layer fan-out.
func BenchmarkFindPath_Workers4(b *testing.B) {
	ix, words := benchIndex(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ladder.FindPath(ix, nil, words[i%len(words)], words[(i*7919)%len(words)], ladder.WithWorkers(4))
	}
}
