package ladder

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/wordindex"
)

// unvisited marks a word not yet reached by a frontier.
const unvisited int32 = -1

// minParallelLayer is the smallest layer worth fanning out.
const minParallelLayer = 64

// frontier is one side of the search. parent[id] is the word that
// discovered id; the root is its own parent.
type frontier struct {
	dir    Direction
	parent []int32
	layer  []int32
	depth  int
}

func newFrontier(dir Direction, n int, root int32) *frontier {
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = unvisited
	}
	parent[root] = root
	return &frontier{dir: dir, parent: parent, layer: []int32{root}}
}

func (f *frontier) visited(id int32) bool { return f.parent[id] != unvisited }

// searcher holds the state of one FindPath call.
type searcher struct {
	idx   *wordindex.Index
	opts  Options
	log   *zap.Logger
	fwd   *frontier
	bwd   *frontier
	stats Stats
	buf   []int32
}

// FindPath returns a shortest ladder from start to end.
//
// Both words must have the index word length and belong to dict and to idx;
// otherwise a *ConfigError is returned and no search is attempted. A nil
// dict means idx itself is the dictionary. When start == end the result is
// the one-word path. Disconnected words yield Found == false with a nil
// error. Context cancellation aborts the search with the context error.
func FindPath(idx *wordindex.Index, dict Dictionary, start, end string, opts ...Option) (*Result, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}
	if dict == nil {
		dict = idx
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	startID, err := resolve(idx, dict, "start", start)
	if err != nil {
		return nil, err
	}
	endID, err := resolve(idx, dict, "end", end)
	if err != nil {
		return nil, err
	}

	if startID == endID {
		return &Result{Found: true, Path: []string{start}}, nil
	}

	began := time.Now()
	s := &searcher{
		idx:  idx,
		opts: o,
		log:  o.Logger.With(zap.String("start", start), zap.String("end", end)),
		fwd:  newFrontier(Forward, idx.Len(), startID),
		bwd:  newFrontier(Backward, idx.Len(), endID),
	}

	meet, err := s.run()
	if err != nil {
		return nil, err
	}

	res := &Result{Stats: s.stats}
	if meet != unvisited {
		res.Found = true
		res.Meeting = idx.Word(int(meet))
		res.Path = s.path(meet)
	}
	s.log.Debug("search finished",
		zap.Bool("found", res.Found),
		zap.Int("steps", res.Len()),
		zap.Int("expanded", res.Stats.Expanded),
		zap.Duration("elapsed", time.Since(began)),
	)

	return res, nil
}

// resolve validates one query word and returns its index id.
func resolve(idx *wordindex.Index, dict Dictionary, role, word string) (int32, error) {
	if len(word) != idx.WordLen() {
		return 0, &ConfigError{
			Role: role,
			Word: word,
			Err:  fmt.Errorf("%w: length %d, want %d", ErrLengthMismatch, len(word), idx.WordLen()),
		}
	}
	id, ok := idx.ID(word)
	if !ok || !dict.Contains(word) {
		return 0, &ConfigError{Role: role, Word: word, Err: ErrWordNotFound}
	}
	return int32(id), nil
}

// run alternates expansions, smaller layer first, until the frontiers meet
// or one of them is exhausted.
func (s *searcher) run() (int32, error) {
	for len(s.fwd.layer) > 0 && len(s.bwd.layer) > 0 {
		if err := s.opts.Ctx.Err(); err != nil {
			return unvisited, err
		}

		cur, other := s.fwd, s.bwd
		if len(s.bwd.layer) < len(s.fwd.layer) {
			cur, other = s.bwd, s.fwd
		}

		meet, err := s.expand(cur, other)
		if err != nil {
			return unvisited, err
		}
		if meet != unvisited {
			return meet, nil
		}
	}
	return unvisited, nil
}

// expand replaces cur.layer with the unvisited neighbors of its words, then
// returns the first new word already seen by other, or unvisited.
func (s *searcher) expand(cur, other *frontier) (int32, error) {
	next := make([]int32, 0, len(cur.layer))

	if s.opts.Workers > 1 && len(cur.layer) >= minParallelLayer {
		lists, err := s.fanOut(cur.layer)
		if err != nil {
			return unvisited, err
		}
		for i, u := range cur.layer {
			next = cur.claim(next, u, lists[i])
		}
	} else {
		for _, u := range cur.layer {
			s.buf = s.idx.AppendNeighborIDs(s.buf[:0], int(u))
			next = cur.claim(next, u, s.buf)
		}
	}

	s.stats.Expanded += len(cur.layer)
	cur.layer = next
	cur.depth++
	if cur.dir == Forward {
		s.stats.ForwardLayers++
	} else {
		s.stats.BackwardLayers++
	}

	s.log.Debug("layer expanded",
		zap.Stringer("direction", cur.dir),
		zap.Int("depth", cur.depth),
		zap.Int("size", len(next)),
	)
	s.opts.OnLayer(cur.dir, cur.depth, len(next))

	for _, v := range next {
		if other.visited(v) {
			return v, nil
		}
	}
	return unvisited, nil
}

// claim gives every unvisited neighbor of u the parent u. The first
// discoverer in layer order wins.
func (f *frontier) claim(next []int32, u int32, neighbors []int32) []int32 {
	for _, v := range neighbors {
		if f.visited(v) {
			continue
		}
		f.parent[v] = u
		next = append(next, v)
	}
	return next
}

// fanOut looks up the neighbors of every layer word on opts.Workers
// goroutines. lists[i] belongs to layer[i]; the index is only read.
func (s *searcher) fanOut(layer []int32) ([][]int32, error) {
	lists := make([][]int32, len(layer))
	workers := min(s.opts.Workers, len(layer))
	chunk := (len(layer) + workers - 1) / workers

	g, ctx := errgroup.WithContext(s.opts.Ctx)
	for lo := 0; lo < len(layer); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(layer))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%64 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				lists[i] = s.idx.AppendNeighborIDs(nil, int(layer[i]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

// path joins the start-side chain, the meeting word and the end-side chain.
func (s *searcher) path(meet int32) []string {
	var ids []int32
	for v := meet; ; v = s.fwd.parent[v] {
		ids = append(ids, v)
		if s.fwd.parent[v] == v {
			break
		}
	}
	slices.Reverse(ids)
	for v := meet; s.bwd.parent[v] != v; {
		v = s.bwd.parent[v]
		ids = append(ids, v)
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = s.idx.Word(int(id))
	}
	return out
}
