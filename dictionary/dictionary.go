// Package dictionary prepares word lists for the ladder search: Extract
// filters a raw list down to clean words of one length, Load reads such a
// list back into a membership set.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrEmpty is returned when a list holds no words.
	ErrEmpty = errors.New("dictionary: no words")
	// ErrInvalidWord is returned for words that are not lowercase ASCII letters.
	ErrInvalidWord = errors.New("dictionary: invalid word")
	// ErrMixedLengths is returned when words differ in length.
	ErrMixedLengths = errors.New("dictionary: words have inconsistent lengths")
	// ErrInvalidLength is returned for a non-positive extraction length.
	ErrInvalidLength = errors.New("dictionary: word length must be positive")
)

// Dictionary is an ordered set of lowercase words sharing one length.
// It is read-only after construction.
type Dictionary struct {
	words   []string
	set     map[string]struct{}
	wordLen int
}

// New validates words and returns them as a Dictionary. Duplicates are
// dropped; the first occurrence keeps its position.
func New(words []string) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{}, len(words))}
	for i, w := range words {
		if err := d.add(w, i+1); err != nil {
			return nil, err
		}
	}
	if len(d.words) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Load reads one word per line. Blank lines are skipped and surrounding
// whitespace (including CR) is ignored.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		if err := d.add(w, line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	if len(d.words) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Dictionary) add(w string, line int) error {
	if !IsWord(w) {
		return fmt.Errorf("%w: line %d: %q", ErrInvalidWord, line, w)
	}
	if d.wordLen == 0 {
		d.wordLen = len(w)
	} else if len(w) != d.wordLen {
		return fmt.Errorf("%w: line %d: %q has length %d, want %d", ErrMixedLengths, line, w, len(w), d.wordLen)
	}
	if _, dup := d.set[w]; dup {
		return nil
	}
	d.set[w] = struct{}{}
	d.words = append(d.words, w)
	return nil
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// WordLen returns the shared word length.
func (d *Dictionary) WordLen() int { return d.wordLen }

// Words returns a copy of the words in load order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// IsWord reports whether s is a non-empty run of lowercase ASCII letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
