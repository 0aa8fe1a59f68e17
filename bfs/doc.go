// Package bfs provides single-source breadth-first search over an implicit
// word graph, returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore words in non-decreasing distance (letter substitutions) from a
//     start word.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from word → distance from start
//   - Parent: map from word → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a word is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Distances from one word to every reachable word in O(V + E).
//   - Component discovery (see package components).
//   - A plain reference for the bidirectional search in package ladder.
//
// Determinism
//
//	Graph.Neighbors must return neighbors in a fixed order
//	(*wordindex.Index does); BFS enqueues them in that order, so the visit
//	sequence is reproducible.
//
// Complexity (V = reachable words, E = steps between them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	idx, _ := wordindex.Build(words)
//	res, err := bfs.BFS(idx, "cold", bfs.WithMaxDepth(4))
//	if err != nil {
//		// ErrGraphNil, ErrStartWordNotFound, ErrOptionViolation,
//		// ErrNeighbors, context errors or hook errors
//	}
//	path, _ := res.PathTo("warm")
//
// Errors
//
//   - ErrGraphNil            if the graph is nil.
//   - ErrStartWordNotFound   if the start word is not in the graph.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors           if Graph.Neighbors fails for any word.
//   - ErrNoPath              from PathTo when dest was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
