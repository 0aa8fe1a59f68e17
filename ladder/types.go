package ladder

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for path finding.
var (
	// ErrConfiguration is matched by every error caused by bad input.
	ErrConfiguration = errors.New("ladder: configuration error")

	// ErrIndexNil is returned when FindPath receives a nil index.
	ErrIndexNil = fmt.Errorf("%w: index is nil", ErrConfiguration)

	// ErrWordNotFound is returned when start or end is not a dictionary word.
	ErrWordNotFound = fmt.Errorf("%w: word not in dictionary", ErrConfiguration)

	// ErrLengthMismatch is returned when start or end has a different length
	// than the indexed words.
	ErrLengthMismatch = fmt.Errorf("%w: word length does not match index", ErrConfiguration)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrNoPath is what Result.Err reports when the words are not connected.
	ErrNoPath = errors.New("ladder: no path found")
)

// ConfigError names the word that made a query invalid.
type ConfigError struct {
	// Role is "start" or "end".
	Role string
	Word string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s word %q: %v", e.Role, e.Word, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Dictionary answers membership queries. *dictionary.Dictionary and
// *wordindex.Index both satisfy it.
type Dictionary interface {
	Contains(word string) bool
}

// Direction identifies one of the two search frontiers.
type Direction int

const (
	// Forward grows from the start word.
	Forward Direction = iota
	// Backward grows from the end word.
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Option configures FindPath.
type Option func(*Options)

// Options holds the parameters of a search.
type Options struct {
	// Ctx is checked between layers and while fanning out lookups.
	Ctx context.Context

	// Workers is the number of goroutines used for the neighbor lookups of
	// one layer. 1 keeps the search on the calling goroutine.
	Workers int

	// Logger receives debug records for the search and each layer.
	Logger *zap.Logger

	// OnLayer is called after a layer has been expanded, with the frontier,
	// the new depth of that frontier and the size of the new layer.
	OnLayer func(dir Direction, depth, size int)

	err error
}

// DefaultOptions returns sequential Options with a background context,
// a no-op logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  zap.NewNop(),
		OnLayer: func(Direction, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers spreads intra-layer neighbor lookups over n goroutines.
// n < 1 is rejected with ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLayer registers a callback run after every layer expansion.
func WithOnLayer(fn func(dir Direction, depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// Stats describes the work a search did.
type Stats struct {
	// Expanded counts words whose neighbors were enumerated.
	Expanded int
	// ForwardLayers and BackwardLayers count completed layers per frontier.
	ForwardLayers  int
	BackwardLayers int
}

// Result is the outcome of FindPath.
type Result struct {
	// Found reports whether start and end are connected.
	Found bool
	// Path runs from start to end; nil when Found is false.
	Path []string
	// Meeting is the word where the two frontiers met. Empty when start
	// equals end or no path exists.
	Meeting string
	Stats   Stats
}

// Len returns the number of steps in the path, or -1 without a path.
func (r *Result) Len() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Err returns ErrNoPath when no path was found and nil otherwise.
func (r *Result) Err() error {
	if !r.Found {
		return ErrNoPath
	}
	return nil
}
