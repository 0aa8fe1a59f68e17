package ladder_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordindex"
)

// set is a minimal Dictionary used to diverge from the index contents.
type set map[string]bool

func (s set) Contains(w string) bool { return s[w] }

func mustIndex(t testing.TB, words ...string) *wordindex.Index {
	t.Helper()
	ix, err := wordindex.Build(words)
	require.NoError(t, err)
	return ix
}

// requireValidLadder checks that consecutive words differ in one position
// and every word is indexed.
func requireValidLadder(t *testing.T, ix *wordindex.Index, path []string) {
	t.Helper()
	for i, w := range path {
		require.True(t, ix.Contains(w), "word %q not in dictionary", w)
		if i > 0 {
			require.Equal(t, 1, hamming(path[i-1], w), "step %q → %q", path[i-1], w)
		}
	}
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

// LadderSuite exercises FindPath on hand-made dictionaries.
type LadderSuite struct {
	suite.Suite
	square *wordindex.Index
}

func (s *LadderSuite) SetupTest() {
	s.square = mustIndex(s.T(), "cat", "cot", "cog", "dog", "dot", "dat")
}

// TestCatToDog finds a three-step ladder and reports the meeting word.
func (s *LadderSuite) TestCatToDog() {
	res, err := ladder.FindPath(s.square, nil, "cat", "dog")
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Len(s.T(), res.Path, 4)
	require.Equal(s.T(), 3, res.Len())
	require.Equal(s.T(), "cat", res.Path[0])
	require.Equal(s.T(), "dog", res.Path[3])
	requireValidLadder(s.T(), s.square, res.Path)

	// cat expands first, then dog, then the cat side meets at dot.
	require.Equal(s.T(), []string{"cat", "dat", "dot", "dog"}, res.Path)
	require.Equal(s.T(), "dot", res.Meeting)
	require.Equal(s.T(), ladder.Stats{Expanded: 4, ForwardLayers: 2, BackwardLayers: 1}, res.Stats)
	require.NoError(s.T(), res.Err())
}

// TestReverseQuery runs the same pair the other way round.
func (s *LadderSuite) TestReverseQuery() {
	res, err := ladder.FindPath(s.square, nil, "dog", "cat")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Len())
	requireValidLadder(s.T(), s.square, res.Path)
	require.Equal(s.T(), "dog", res.Path[0])
	require.Equal(s.T(), "cat", res.Path[3])
}

// TestNeighbours covers a one-step ladder.
func (s *LadderSuite) TestNeighbours() {
	res, err := ladder.FindPath(s.square, nil, "cat", "cot")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"cat", "cot"}, res.Path)
	require.Equal(s.T(), "cot", res.Meeting)
}

// TestSameWord returns the one-word path without expanding anything.
func (s *LadderSuite) TestSameWord() {
	layers := 0
	res, err := ladder.FindPath(s.square, nil, "cog", "cog",
		ladder.WithOnLayer(func(ladder.Direction, int, int) { layers++ }))
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), []string{"cog"}, res.Path)
	require.Equal(s.T(), 0, res.Len())
	require.Zero(s.T(), layers)
	require.Zero(s.T(), res.Stats)
}

// TestSingleWordDictionary is the degenerate one-word case.
func (s *LadderSuite) TestSingleWordDictionary() {
	ix := mustIndex(s.T(), "aaa")
	res, err := ladder.FindPath(ix, nil, "aaa", "aaa")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"aaa"}, res.Path)
}

// TestNoBridge reports NoPathFound as a value, not an error.
func (s *LadderSuite) TestNoBridge() {
	ix := mustIndex(s.T(), "aaaa", "bbbb")
	res, err := ladder.FindPath(ix, nil, "aaaa", "bbbb")
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)
	require.Nil(s.T(), res.Path)
	require.Empty(s.T(), res.Meeting)
	require.Equal(s.T(), -1, res.Len())
	require.ErrorIs(s.T(), res.Err(), ladder.ErrNoPath)
}

// TestDisconnectedComponents stops once one side is exhausted.
func (s *LadderSuite) TestDisconnectedComponents() {
	ix := mustIndex(s.T(), "aaa", "aab", "abb", "zzz", "zzy")
	var dirs []ladder.Direction
	res, err := ladder.FindPath(ix, nil, "aaa", "zzz",
		ladder.WithOnLayer(func(d ladder.Direction, _, _ int) { dirs = append(dirs, d) }))
	require.NoError(s.T(), err)
	require.False(s.T(), res.Found)
	// Layers stay tied at one word, so the start side keeps expanding until
	// it runs dry: [aaa]→[aab]→[abb]→[]. The end side is never touched.
	require.Equal(s.T(), []ladder.Direction{ladder.Forward, ladder.Forward, ladder.Forward}, dirs)
	require.Equal(s.T(), ladder.Stats{Expanded: 3, ForwardLayers: 3}, res.Stats)
}

// TestConfigErrors rejects bad words before any layer is expanded.
func (s *LadderSuite) TestConfigErrors() {
	layers := 0
	hook := ladder.WithOnLayer(func(ladder.Direction, int, int) { layers++ })

	_, err := ladder.FindPath(nil, nil, "cat", "dog")
	require.ErrorIs(s.T(), err, ladder.ErrIndexNil)
	require.ErrorIs(s.T(), err, ladder.ErrConfiguration)

	_, err = ladder.FindPath(s.square, nil, "cat", "pig", hook)
	require.ErrorIs(s.T(), err, ladder.ErrWordNotFound)
	require.ErrorIs(s.T(), err, ladder.ErrConfiguration)
	var cfgErr *ladder.ConfigError
	require.True(s.T(), errors.As(err, &cfgErr))
	require.Equal(s.T(), "end", cfgErr.Role)
	require.Equal(s.T(), "pig", cfgErr.Word)
	require.Contains(s.T(), err.Error(), `"pig"`)

	_, err = ladder.FindPath(s.square, nil, "kitten", "dog", hook)
	require.ErrorIs(s.T(), err, ladder.ErrLengthMismatch)
	require.True(s.T(), errors.As(err, &cfgErr))
	require.Equal(s.T(), "start", cfgErr.Role)

	// Missing from the dictionary even though the index has it.
	_, err = ladder.FindPath(s.square, set{"cat": true}, "cat", "dog", hook)
	require.ErrorIs(s.T(), err, ladder.ErrWordNotFound)

	// Same word but not a member is still an error.
	_, err = ladder.FindPath(s.square, nil, "pig", "pig", hook)
	require.ErrorIs(s.T(), err, ladder.ErrWordNotFound)

	require.Zero(s.T(), layers)
}

// TestOptionViolation rejects non-positive worker counts.
func (s *LadderSuite) TestOptionViolation() {
	_, err := ladder.FindPath(s.square, nil, "cat", "dog", ladder.WithWorkers(0))
	require.ErrorIs(s.T(), err, ladder.ErrOptionViolation)
}

// TestCancelled aborts with the context error.
func (s *LadderSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ladder.FindPath(s.square, nil, "cat", "dog", ladder.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestLogging emits a debug record per layer and one at the end.
func (s *LadderSuite) TestLogging() {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := ladder.FindPath(s.square, nil, "cat", "dog", ladder.WithLogger(zap.New(core)))
	require.NoError(s.T(), err)

	require.Equal(s.T(), 3, logs.FilterMessage("layer expanded").Len())
	finished := logs.FilterMessage("search finished").All()
	require.Len(s.T(), finished, 1)
	fields := finished[0].ContextMap()
	require.Equal(s.T(), true, fields["found"])
	require.Equal(s.T(), int64(3), fields["steps"])
	require.Equal(s.T(), "cat", fields["start"])
}

func TestLadderSuite(t *testing.T) {
	suite.Run(t, new(LadderSuite))
}

// TestFindPath_MatchesBFS cross-validates path lengths against a plain
// single-source BFS on random small dictionaries.
func TestFindPath_MatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		ix := mustIndex(t, randomWords(rng, 40, 3, "abcd")...)
		words := ix.Words()

		for q := 0; q < 10; q++ {
			start := words[rng.Intn(len(words))]
			end := words[rng.Intn(len(words))]

			ref, err := bfs.BFS(ix, start)
			require.NoError(t, err)

			res, err := ladder.FindPath(ix, nil, start, end)
			require.NoError(t, err)
			require.Equal(t, ref.Reached(end), res.Found, "round %d %s→%s", round, start, end)
			if !res.Found {
				continue
			}
			require.Equal(t, ref.Depth[end], res.Len(), "round %d %s→%s", round, start, end)
			require.Equal(t, start, res.Path[0])
			require.Equal(t, end, res.Path[len(res.Path)-1])
			requireValidLadder(t, ix, res.Path)
		}
	}
}

// TestFindPath_Deterministic returns the same path on every call.
func TestFindPath_Deterministic(t *testing.T) {
	ix := mustIndex(t, randomWords(rand.New(rand.NewSource(3)), 400, 4, "abcde")...)
	words := ix.Words()

	first, err := ladder.FindPath(ix, nil, words[0], words[len(words)-1])
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ladder.FindPath(ix, nil, words[0], words[len(words)-1])
		require.NoError(t, err)
		if diff := cmp.Diff(first.Path, again.Path); diff != "" {
			t.Fatalf("path changed between runs (-first +again):\n%s", diff)
		}
	}
}

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
