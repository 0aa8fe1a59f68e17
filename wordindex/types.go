package wordindex

import (
	"errors"
	"fmt"
)

// DefaultWildcard marks the substituted position inside a pattern.
const DefaultWildcard byte = '*'

// Sentinel errors for index construction and queries.
var (
	// ErrIndexBuild is wrapped by every error Build returns.
	ErrIndexBuild = errors.New("wordindex: cannot build index")

	// ErrEmptyDictionary is returned when Build receives no words.
	ErrEmptyDictionary = fmt.Errorf("%w: dictionary is empty", ErrIndexBuild)

	// ErrEmptyWord is returned when the dictionary words have zero length.
	ErrEmptyWord = fmt.Errorf("%w: words must not be empty", ErrIndexBuild)

	// ErrMixedLengths is returned when the dictionary words differ in length.
	ErrMixedLengths = fmt.Errorf("%w: words have inconsistent lengths", ErrIndexBuild)

	// ErrLengthMismatch is returned when a query word does not have the index length.
	ErrLengthMismatch = errors.New("wordindex: word length does not match index")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wordindex: invalid option supplied")
)

// Option configures Build.
type Option func(*Options)

// Options holds the parameters of an index build.
type Options struct {
	// Wildcard replaces one position of a word to form a pattern.
	// It must lie outside the lowercase alphabet.
	Wildcard byte

	err error
}

// DefaultOptions returns Options with DefaultWildcard.
func DefaultOptions() Options {
	return Options{Wildcard: DefaultWildcard}
}

// WithWildcard sets the pattern wildcard. Lowercase ASCII letters are
// rejected with ErrOptionViolation because they would collide with words.
func WithWildcard(c byte) Option {
	return func(o *Options) {
		if c >= 'a' && c <= 'z' {
			o.err = fmt.Errorf("%w: wildcard %q is a letter", ErrOptionViolation, c)
			return
		}
		o.Wildcard = c
	}
}
