// Package bfs provides breadth-first search over a word graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores words in increasing distance from a start word,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartWordNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g Graph, start string, opts ...Option) (*BFSResult, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartWordNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &BFSResult{
			Start:  start,
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	// Seed queue with start word (no parent)
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// isNil catches typed nil pointers hidden inside the Graph interface.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// enqueue records depth and parent for word, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(word string, d int, parent string) {
	w.res.Depth[word] = d
	if d > 0 {
		w.res.Parent[word] = parent
	}
	w.opts.OnEnqueue(word, d)
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the next item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.word, item.depth)
	return item
}

// visit records the word in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.word)
	if err := w.opts.OnVisit(item.word, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.word, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.word)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.word, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.word, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth, item.word)
		}
	}
	return nil
}
