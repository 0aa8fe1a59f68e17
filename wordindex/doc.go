// Package wordindex builds the implicit graph behind word ladders.
//
// What
//
//   - Two words are adjacent when they have the same length and differ in
//     exactly one position.
//   - Instead of materialising edges, every word is filed under L patterns
//     (L = word length): the word with one position replaced by a wildcard.
//     "cat" lands in "*at", "c*t" and "ca*".
//   - A bucket holds all words that share a pattern, so the neighbors of w are
//     the union of w's L buckets minus w itself.
//
// Why
//
//   - An explicit adjacency list can grow to O(n²) edges; the buckets cost
//     O(L·n) and answer a neighbor query in O(L·bucket size).
//   - A word shares at most one bucket with any other word, so the union
//     needs no deduplication.
//
// Determinism
//
//	Words keep the order in which they were passed to Build (duplicates are
//	dropped, first occurrence wins). Neighbors come out position-major and,
//	inside a bucket, in that insertion order.
//
// Complexity (n = |words|, L = word length, b = average bucket size)
//
//   - Build:     O(n·L) time, O(n·L) memory
//   - Neighbors: O(L·b)
//
// Errors
//
//   - ErrIndexBuild        base error for every Build failure.
//   - ErrEmptyDictionary   no words were supplied.
//   - ErrEmptyWord         the words have length zero.
//   - ErrMixedLengths      words disagree in length.
//   - ErrLengthMismatch    a query word has the wrong length.
//   - ErrOptionViolation   invalid Option (e.g. a letter as wildcard).
package wordindex
