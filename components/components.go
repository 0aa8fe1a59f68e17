package components

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/wordindex"
)

var (
	// ErrIndexNil indicates Label was called without an index.
	ErrIndexNil = errors.New("components: index is nil")
	// ErrWordNotFound indicates a query word is not part of the index.
	ErrWordNotFound = errors.New("components: word not in index")
	// ErrComponentIndex indicates a requested component id is invalid.
	ErrComponentIndex = errors.New("components: component index out of range")
)

// Labels maps every indexed word to its component.
type Labels struct {
	idx   *wordindex.Index
	comp  []int // by word id
	sizes []int // by component id
}

// Label assigns a component id to every word of idx.
// Options are passed to each underlying BFS (e.g. bfs.WithContext).
func Label(idx *wordindex.Index, opts ...bfs.Option) (*Labels, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}
	n := idx.Len()
	l := &Labels{idx: idx, comp: make([]int, n)}
	for i := range l.comp {
		l.comp[i] = -1
	}

	for id := 0; id < n; id++ {
		if l.comp[id] >= 0 {
			continue
		}
		c := len(l.sizes)
		l.sizes = append(l.sizes, 0)

		mark := bfs.WithOnVisit(func(word string, _ int) error {
			wid, _ := idx.ID(word)
			l.comp[wid] = c
			l.sizes[c]++
			return nil
		})
		runOpts := append(append(make([]bfs.Option, 0, len(opts)+1), opts...), mark)
		if _, err := bfs.BFS(idx, idx.Word(id), runOpts...); err != nil {
			return nil, fmt.Errorf("components: labelling from %q: %w", idx.Word(id), err)
		}
	}

	return l, nil
}

// Count returns the number of components.
func (l *Labels) Count() int { return len(l.sizes) }

// Of returns the component id of word.
func (l *Labels) Of(word string) (int, error) {
	id, ok := l.idx.ID(word)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}
	return l.comp[id], nil
}

// Connected reports whether a ladder exists between a and b.
// Unknown words are never connected.
func (l *Labels) Connected(a, b string) bool {
	ca, err := l.Of(a)
	if err != nil {
		return false
	}
	cb, err := l.Of(b)
	if err != nil {
		return false
	}
	return ca == cb
}

// Sizes returns the size of every component, indexed by component id.
func (l *Labels) Sizes() []int {
	out := make([]int, len(l.sizes))
	copy(out, l.sizes)
	return out
}

// Members returns the words of component c in insertion order.
func (l *Labels) Members(c int) ([]string, error) {
	if c < 0 || c >= len(l.sizes) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrComponentIndex, c, len(l.sizes))
	}
	out := make([]string, 0, l.sizes[c])
	for id, cc := range l.comp {
		if cc == c {
			out = append(out, l.idx.Word(id))
		}
	}
	return out, nil
}

// Largest returns up to n component ids, biggest first; equal sizes keep
// id order. n <= 0 returns all of them.
func (l *Labels) Largest(n int) []int {
	ids := make([]int, len(l.sizes))
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return l.sizes[ids[i]] > l.sizes[ids[j]]
	})
	if n > 0 && n < len(ids) {
		ids = ids[:n]
	}
	return ids
}
