package freealg

import "errors"

// Sentinel errors for free-algebra construction.
var (
	// ErrNilBase is returned if a nil base algebra is passed to Build.
	ErrNilBase = errors.New("freealg: base algebra is nil")

	// ErrGeneratorCount is returned for a generator count below 1.
	// A zero-generator free algebra is degenerate and deliberately rejected.
	ErrGeneratorCount = errors.New("freealg: generator count must be at least 1")

	// ErrClosureBound is returned when the closure exceeds the configured
	// universe bound before stabilizing. Retrying with a larger bound is a
	// caller-level policy.
	ErrClosureBound = errors.New("freealg: closure exceeded universe bound")
)

// DefaultMaxUniverse bounds the closure universe when no option overrides it.
// Large enough for every free algebra worth tabulating in memory; small
// enough to stop a non-terminating closure within seconds.
const DefaultMaxUniverse = 1 << 16

// Internal panic messages (programmer error only; no magic strings).
const (
	panicMaxUniverseInvalid = "freealg: WithMaxUniverse: limit must be at least 1"
	panicClosureInvariant   = "freealg: closure invariant violated: derived value missing from universe"
)

// Option configures free-algebra construction via functional arguments.
// Constructors panic only on nonsensical values (programmer error);
// invalid builder inputs always surface as sentinel errors from Build.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them against documented defaults via gatherOptions.
type Options struct {
	maxUniverse int
}

// WithMaxUniverse sets the closure universe bound.
//
// Behavior highlights:
//   - Closure fails with ErrClosureBound once the universe would exceed limit.
//   - The bound is the sole termination guard; a full pass that adds no
//     tuple always terminates the closure on its own.
//
// Panics with a stable message when limit < 1.
// Complexity: O(1).
func WithMaxUniverse(limit int) Option {
	if limit < 1 {
		panic(panicMaxUniverseInvalid)
	}

	return func(o *Options) { o.maxUniverse = limit }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxUniverse: DefaultMaxUniverse,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
