package wordindex

import "fmt"

// Index is an immutable pattern-bucket index over a fixed-length word set.
// It is safe for concurrent readers once Build returns.
type Index struct {
	wordLen  int
	wildcard byte

	// words[id] is the id-th distinct word in insertion order.
	words []string
	ids   map[string]int32

	// buckets maps a pattern to the ids of its words, ascending.
	buckets map[string][]int32
}

// Build indexes words under their wildcard patterns.
// It fails with ErrEmptyDictionary, ErrEmptyWord or ErrMixedLengths (all
// wrapping ErrIndexBuild), or ErrOptionViolation for a bad Option.
// Duplicate words are ignored.
func Build(words []string, opts ...Option) (*Index, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}

	wl := len(words[0])
	if wl == 0 {
		return nil, ErrEmptyWord
	}

	ix := &Index{
		wordLen:  wl,
		wildcard: o.Wildcard,
		words:    make([]string, 0, len(words)),
		ids:      make(map[string]int32, len(words)),
		buckets:  make(map[string][]int32, len(words)),
	}

	buf := make([]byte, wl)
	for _, w := range words {
		if len(w) != wl {
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrMixedLengths, w, len(w), wl)
		}
		if _, dup := ix.ids[w]; dup {
			continue
		}
		id := int32(len(ix.words))
		ix.ids[w] = id
		ix.words = append(ix.words, w)

		copy(buf, w)
		for i := 0; i < wl; i++ {
			buf[i] = ix.wildcard
			key := string(buf)
			ix.buckets[key] = append(ix.buckets[key], id)
			buf[i] = w[i]
		}
	}

	return ix, nil
}

// WordLen returns the length shared by all indexed words.
func (ix *Index) WordLen() int { return ix.wordLen }

// Len returns the number of distinct indexed words.
func (ix *Index) Len() int { return len(ix.words) }

// Buckets returns the number of distinct patterns.
func (ix *Index) Buckets() int { return len(ix.buckets) }

// Wildcard returns the byte used to build patterns.
func (ix *Index) Wildcard() byte { return ix.wildcard }

// Contains reports whether w was indexed.
func (ix *Index) Contains(w string) bool {
	_, ok := ix.ids[w]
	return ok
}

// ID returns the id of w, if indexed.
func (ix *Index) ID(w string) (int, bool) {
	id, ok := ix.ids[w]
	return int(id), ok
}

// Word returns the word with the given id. It panics if id is out of range,
// like a slice index.
func (ix *Index) Word(id int) string { return ix.words[id] }

// Words returns a copy of the indexed words in insertion order.
func (ix *Index) Words() []string {
	out := make([]string, len(ix.words))
	copy(out, ix.words)
	return out
}

// Pattern returns w with position i replaced by the index wildcard.
func (ix *Index) Pattern(w string, i int) string {
	return Pattern(w, i, ix.wildcard)
}

// Pattern returns w with position i replaced by wildcard.
// It panics if i is outside [0, len(w)).
func Pattern(w string, i int, wildcard byte) string {
	b := []byte(w)
	b[i] = wildcard
	return string(b)
}

// Bucket returns the words filed under pattern, in insertion order.
func (ix *Index) Bucket(pattern string) []string {
	ids := ix.buckets[pattern]
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = ix.words[id]
	}
	return out
}

// Neighbors returns every indexed word that differs from w in exactly one
// position. w itself need not be indexed, but it must have length WordLen,
// otherwise ErrLengthMismatch is returned.
func (ix *Index) Neighbors(w string) ([]string, error) {
	if len(w) != ix.wordLen {
		return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrLengthMismatch, w, len(w), ix.wordLen)
	}
	self := int32(-1)
	if id, ok := ix.ids[w]; ok {
		self = id
	}

	ids := ix.appendNeighbors(nil, w, self, make([]byte, ix.wordLen))
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = ix.words[id]
	}
	return out, nil
}

// AppendNeighborIDs appends the ids of the neighbors of the word with the
// given id to dst and returns the extended slice. It is the allocation-light
// path used by the searches; id must be valid.
func (ix *Index) AppendNeighborIDs(dst []int32, id int) []int32 {
	return ix.appendNeighbors(dst, ix.words[id], int32(id), make([]byte, ix.wordLen))
}

// appendNeighbors walks the L buckets of w. buf is scratch space of length
// wordLen; the map lookup through string(buf) does not allocate.
func (ix *Index) appendNeighbors(dst []int32, w string, self int32, buf []byte) []int32 {
	copy(buf, w)
	for i := 0; i < ix.wordLen; i++ {
		buf[i] = ix.wildcard
		for _, id := range ix.buckets[string(buf)] {
			if id != self {
				dst = append(dst, id)
			}
		}
		buf[i] = w[i]
	}
	return dst
}
