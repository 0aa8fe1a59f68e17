// Package wordladder finds the shortest word ladder between two words of
// equal length: each step changes exactly one letter and every word on the
// way belongs to a fixed dictionary.
//
// What is inside?
//
//	• dictionary/ — extract fixed-length words from a raw list, load a clean word set
//	• wordindex/  — implicit graph: wildcard pattern buckets, neighbor queries
//	• ladder/     — bidirectional breadth-first search, path reconstruction
//	• bfs/        — single-source breadth-first traversal over the same graph
//	• components/ — connected components of the word graph
//	• cmd/        — the wordladder command-line tool
//
// Quick example:
//
//	cat ─ cot ─ cog ─ dog
//	 │                 │
//	dat ─────── dot ───┘
//
// Both routes are three steps long; the search returns one of them, always
// the same one for a given dictionary order.
//
//	idx, _ := wordindex.Build(dict.Words())
//	res, _ := ladder.FindPath(idx, dict, "cat", "dog")
//	fmt.Println(res.Path) // [cat cot cog dog]
package wordladder
