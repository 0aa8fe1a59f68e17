// Package ladder finds the shortest word ladder between two dictionary words
// with a bidirectional breadth-first search over a wordindex.Index.
//
// What
//
//   - Two frontiers grow layer by layer, one from the start word and one
//     from the end word. Each frontier maps a word to the word that
//     discovered it.
//   - The frontier with the smaller current layer is expanded next
//     (ties go to the start side). After a full layer the new words are
//     checked against the opposite frontier; the first hit is the meeting
//     word.
//   - The path is the start-side parent chain (reversed), the meeting word,
//     then the end-side parent chain.
//   - When one frontier runs out of words its whole component has been
//     seen without touching the other side, so no path exists.
//
// Why
//
//   - A single-source BFS touches every word up to distance d; two searches
//     of depth d/2 touch far fewer on sparse word graphs.
//   - Expanding complete layers before checking keeps the result a shortest
//     path: every meeting word found in the same round has the same total
//     distance.
//
// Determinism
//
//	Layers are ordered slices and neighbors come out of the index in a fixed
//	order, so a given dictionary order always produces the same path. With
//	WithWorkers(n) the neighbor lookups of a layer are spread over n
//	goroutines, but parents are still claimed by one goroutine in layer
//	order, so the result is identical to the sequential search.
//
// Results and errors
//
//   - A found ladder: Result.Found == true, Result.Path from start to end.
//   - No ladder: Result.Found == false and a nil error. Result.Err turns
//     this into ErrNoPath for callers that prefer a sentinel.
//   - Configuration problems are returned before any search work. A bad
//     start or end word yields a *ConfigError naming the word and matching
//     ErrConfiguration plus ErrLengthMismatch or ErrWordNotFound; a nil
//     index yields ErrIndexNil.
//
// Complexity (b = branching factor, d = ladder length)
//
//   - Time:   O(b^(d/2)) neighbor lookups in the typical case, O(n·L·bucket) worst case
//   - Memory: O(n) for the two parent arrays
package ladder
