// Package components splits the word graph into connected components
// ("islands" of words reachable from each other by single-letter steps).
//
// What:
//
//   - Label walks the index in insertion order and runs one bfs.BFS per
//     unlabelled word; every word it reaches joins the same component.
//   - Component ids are dense and ordered by their first word.
//   - Connected(a, b) answers "is there any ladder?" in O(1) once labelled,
//     so callers can skip hopeless searches.
//
// Complexity:
//
//   - Label: O(n·L·b) time (every word expanded once), O(n) memory.
//   - Of, Connected, Count: O(1).
//
// Errors:
//
//   - ErrIndexNil: Label got a nil index.
//   - ErrWordNotFound: a query word is not indexed.
//   - ErrComponentIndex: requested component id out of range.
package components
