package differ

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
)

var (
	// ErrMaxDepth is returned when input nesting exceeds the configured
	// maximum depth, which is also how cyclic input surfaces
	ErrMaxDepth = errors.New("maximum depth exceeded")
)

const (
	// DefaultMaxDepth matches the nesting limit of the standard JSON decoder
	DefaultMaxDepth = 10000
	// DefaultLargeSequence is the number of element pairs above which a
	// sequence comparison logs a warning
	DefaultLargeSequence = 250000
)

// Compare computes the difference between two values. Compare is total: any
// two values can be compared, and the result is a pure function of the
// inputs. It performs no depth checking, see Differ for a bounded variant
func Compare(left, right Value) *Diff {
	c := newComparer(context.Background(), &Config{Logger: log.Log})
	d, _ := c.compare(left, right, 0)
	return d
}

// Config are any possible configuration parameters for calculating diffs
type Config struct {
	// MaxDepth bounds how deeply nested input may be. zero means unbounded
	MaxDepth int
	// LargeSequence is the pair count (len(left) * len(right)) above which
	// sequence comparisons log a warning. zero disables the warning
	LargeSequence int
	// Logger receives engine log output, defaults to the apex/log package
	// logger
	Logger log.Interface
}

// DiffOption is a function that adjust a config, zero or more DiffOptions
// can be passed to the New function
type DiffOption func(cfg *Config)

// OptionMaxDepth sets the maximum nesting depth
func OptionMaxDepth(depth int) DiffOption {
	return func(cfg *Config) {
		cfg.MaxDepth = depth
	}
}

// OptionLargeSequence sets the large sequence warning threshold
func OptionLargeSequence(pairs int) DiffOption {
	return func(cfg *Config) {
		cfg.LargeSequence = pairs
	}
}

// OptionLogger sets the logger a Differ writes to
func OptionLogger(l log.Interface) DiffOption {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// Differ is a configured comparison engine. Differs hold no state between
// calls & are safe for concurrent use
type Differ struct {
	cfg *Config
}

// New creates a Differ with any provided configuration
func New(opts ...DiffOption) *Differ {
	cfg := &Config{
		MaxDepth:      DefaultMaxDepth,
		LargeSequence: DefaultLargeSequence,
		Logger:        log.Log,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Log
	}

	return &Differ{cfg: cfg}
}

// Diff classifies two native go values with FromInterface & compares them
func (d *Differ) Diff(ctx context.Context, a, b interface{}) (*Diff, error) {
	diff, _, err := d.StatDiff(ctx, a, b)
	return diff, err
}

// StatDiff compares two native go values, returning a diff and statistics
// about the comparison
func (d *Differ) StatDiff(ctx context.Context, a, b interface{}) (*Diff, *Stats, error) {
	left, err := fromInterface(a, 0, d.cfg.MaxDepth)
	if err != nil {
		return nil, nil, fmt.Errorf("left: %w", err)
	}
	right, err := fromInterface(b, 0, d.cfg.MaxDepth)
	if err != nil {
		return nil, nil, fmt.Errorf("right: %w", err)
	}
	return d.compare(ctx, left, right)
}

// Compare computes the difference between two values. The only possible
// errors are ErrMaxDepth and context cancellation
func (d *Differ) Compare(ctx context.Context, left, right Value) (*Diff, error) {
	diff, _, err := d.compare(ctx, left, right)
	return diff, err
}

func (d *Differ) compare(ctx context.Context, left, right Value) (*Diff, *Stats, error) {
	start := time.Now()
	c := newComparer(ctx, d.cfg)
	c.stats.Left = left.Weight()
	c.stats.Right = right.Weight()

	diff, err := c.compare(left, right, 0)
	if err != nil {
		return nil, nil, err
	}

	c.log.WithFields(log.Fields{
		"distance":    diff.Distance,
		"comparisons": c.stats.Comparisons,
		"pairs":       c.stats.Pairs,
		"matches":     c.stats.Matches,
		"elapsed":     time.Since(start).String(),
	}).Debug("diff complete")

	st := c.stats
	return diff, &st, nil
}

// comparer carries the state of a single comparison
type comparer struct {
	ctx   context.Context
	cfg   *Config
	log   log.Interface
	stats Stats
}

func newComparer(ctx context.Context, cfg *Config) *comparer {
	return &comparer{ctx: ctx, cfg: cfg, log: cfg.Logger}
}

// compare is the recursive distance function. depth is the nesting level of
// left & right, zero at the root
func (c *comparer) compare(left, right Value, depth int) (*Diff, error) {
	if c.cfg.MaxDepth > 0 && depth > c.cfg.MaxDepth {
		return nil, fmt.Errorf("%w: %d", ErrMaxDepth, c.cfg.MaxDepth)
	}
	c.stats.Comparisons++
	if depth > c.stats.Depth {
		c.stats.Depth = depth
	}

	if left.Equal(right) {
		return &Diff{Kind: KindScalar, Distance: 0, Left: left, Right: right}, nil
	}

	switch {
	case left.kind == KindMap && right.kind == KindMap:
		if err := c.ctx.Err(); err != nil {
			return nil, err
		}
		return c.compareMaps(left, right, depth)
	case left.kind == KindSequence && right.kind == KindSequence:
		if err := c.ctx.Err(); err != nil {
			return nil, err
		}
		return c.compareSequences(left, right, depth)
	}

	return &Diff{Kind: KindScalar, Distance: 1, Left: left, Right: right}, nil
}
