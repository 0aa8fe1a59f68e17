package wordindex_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/wordindex"
)

var ladderWords = []string{"cat", "cot", "cog", "dog", "dot", "dat"}

// TestBuild_Errors verifies that invalid dictionaries and options are rejected.
func TestBuild_Errors(t *testing.T) {
	_, err := wordindex.Build(nil)
	require.ErrorIs(t, err, wordindex.ErrEmptyDictionary)
	require.ErrorIs(t, err, wordindex.ErrIndexBuild)

	_, err = wordindex.Build([]string{"", ""})
	require.ErrorIs(t, err, wordindex.ErrEmptyWord)

	_, err = wordindex.Build([]string{"cat", "dogs"})
	require.ErrorIs(t, err, wordindex.ErrMixedLengths)
	require.ErrorIs(t, err, wordindex.ErrIndexBuild)
	assert.Contains(t, err.Error(), `"dogs"`)

	_, err = wordindex.Build(ladderWords, wordindex.WithWildcard('q'))
	require.ErrorIs(t, err, wordindex.ErrOptionViolation)
}

// TestBuild_Accessors checks sizes, ids and insertion order.
func TestBuild_Accessors(t *testing.T) {
	ix, err := wordindex.Build([]string{"cat", "cot", "cat", "dog"})
	require.NoError(t, err)

	assert.Equal(t, 3, ix.WordLen())
	assert.Equal(t, 3, ix.Len(), "duplicates are dropped")
	assert.Equal(t, []string{"cat", "cot", "dog"}, ix.Words())
	assert.True(t, ix.Contains("cot"))
	assert.False(t, ix.Contains("cog"))

	id, ok := ix.ID("dog")
	require.True(t, ok)
	assert.Equal(t, 2, id)
	assert.Equal(t, "dog", ix.Word(id))

	_, ok = ix.ID("zzz")
	assert.False(t, ok)

	// cat, cot, dog: 9 memberships, "c*t" shared by cat and cot.
	assert.Equal(t, 8, ix.Buckets())
	assert.Equal(t, []string{"cat", "cot"}, ix.Bucket("c*t"))
	assert.Empty(t, ix.Bucket("x*x"))
}

// TestWords_ReturnsCopy ensures callers cannot mutate the index.
func TestWords_ReturnsCopy(t *testing.T) {
	ix, err := wordindex.Build(ladderWords)
	require.NoError(t, err)

	ws := ix.Words()
	ws[0] = "zzz"
	assert.Equal(t, "cat", ix.Word(0))
}

// TestPattern covers the wildcard placement and a custom wildcard.
func TestPattern(t *testing.T) {
	assert.Equal(t, "*at", wordindex.Pattern("cat", 0, '*'))
	assert.Equal(t, "ca_", wordindex.Pattern("cat", 2, '_'))

	ix, err := wordindex.Build(ladderWords, wordindex.WithWildcard('#'))
	require.NoError(t, err)
	assert.Equal(t, byte('#'), ix.Wildcard())
	assert.Equal(t, "c#t", ix.Pattern("cat", 1))
	assert.Equal(t, []string{"cat", "cot"}, ix.Bucket("c#t"))
}

// TestNeighbors_Order checks the position-major, insertion-ordered output.
func TestNeighbors_Order(t *testing.T) {
	ix, err := wordindex.Build(ladderWords)
	require.NoError(t, err)

	nb, err := ix.Neighbors("cat")
	require.NoError(t, err)
	// "*at" → dat, "c*t" → cot, "ca*" → none
	assert.Equal(t, []string{"dat", "cot"}, nb)

	nb, err = ix.Neighbors("dot")
	require.NoError(t, err)
	assert.Equal(t, []string{"cot", "dat", "dog"}, nb)
}

// TestNeighbors_NonMember allows querying words outside the dictionary.
func TestNeighbors_NonMember(t *testing.T) {
	ix, err := wordindex.Build(ladderWords)
	require.NoError(t, err)

	nb, err := ix.Neighbors("cut")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot"}, nb)

	nb, err = ix.Neighbors("dig")
	require.NoError(t, err)
	assert.Equal(t, []string{"dog"}, nb)

	nb, err = ix.Neighbors("xyz")
	require.NoError(t, err)
	assert.Empty(t, nb)
}

// TestNeighbors_LengthMismatch rejects words of a different length.
func TestNeighbors_LengthMismatch(t *testing.T) {
	ix, err := wordindex.Build(ladderWords)
	require.NoError(t, err)

	_, err = ix.Neighbors("cats")
	require.True(t, errors.Is(err, wordindex.ErrLengthMismatch))
	_, err = ix.Neighbors("")
	require.ErrorIs(t, err, wordindex.ErrLengthMismatch)
}

// TestAppendNeighborIDs matches Neighbors and appends after existing elements.
func TestAppendNeighborIDs(t *testing.T) {
	ix, err := wordindex.Build(ladderWords)
	require.NoError(t, err)

	for id := 0; id < ix.Len(); id++ {
		want, err := ix.Neighbors(ix.Word(id))
		require.NoError(t, err)

		got := ix.AppendNeighborIDs([]int32{-7}, id)
		require.Equal(t, int32(-7), got[0])
		words := make([]string, 0, len(got)-1)
		for _, n := range got[1:] {
			words = append(words, ix.Word(int(n)))
		}
		assert.Equal(t, want, words, "word %q", ix.Word(id))
	}
}

// TestNeighbors_BruteForce cross-checks every neighbor set against an
// O(n²) pairwise comparison on random small dictionaries.
func TestNeighbors_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		words := randomWords(rng, 150, 3, "abcde")
		ix, err := wordindex.Build(words)
		require.NoError(t, err)

		all := ix.Words()
		for _, w := range all {
			got, err := ix.Neighbors(w)
			require.NoError(t, err)

			var want []string
			for _, o := range all {
				if hamming(w, o) == 1 {
					want = append(want, o)
				}
			}
			sort.Strings(got)
			sort.Strings(want)
			require.Equal(t, want, got, "round %d word %q", round, w)
		}
	}
}

// randomWords draws n words (duplicates possible) of length l over alphabet.
func randomWords(rng *rand.Rand, n, l int, alphabet string) []string {
	out := make([]string, n)
	b := make([]byte, l)
	for i := range out {
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}
	return out
}

func hamming(a, b string) int {
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}
