package memograph

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// Selector is a memoized derived computation. Each distinct argument tuple
// gets its own cache slot; a cached result is returned as long as replaying
// the recorded observer calls yields equal values, and recomputed on demand
// otherwise.
type Selector struct {
	ctx            *Context
	compute        func(args []any) any
	cache          Cache
	serialize      Serializer
	recomputations atomic.Uint64
	log            zerolog.Logger
}

// NewSelector creates a selector wrapping the given compute function, any
// function returning exactly one value. Observers and selectors the
// function reaches during evaluation become dependencies of the cached
// result.
func (c *Context) NewSelector(compute any, opts ...SelectorOption) (*Selector, error) {
	fn, err := newCompute(compute)
	if err != nil {
		c.log.Debug().Err(err).Msg("selector rejected")
		return nil, err
	}

	s := &Selector{
		ctx:       c,
		compute:   fn,
		cache:     newMapCache(),
		serialize: defaultSerialize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = c.log.With().Str("selector", uuid.NewString()[:8]).Logger()
	s.log.Debug().Msg("selector created")
	return s, nil
}

// Get returns the selector's result for the given argument tuple, from
// cache when the recorded dependencies still hold, recomputing otherwise.
//
// A panicking compute propagates to the caller with the evaluation stack
// popped; no usable result is left under the cache key, so the next
// invocation recomputes.
func (s *Selector) Get(args ...any) any {
	key := s.serialize(args)

	comp, ok := s.cache.Get(key)
	if ok && comp.result.IsPresent() && !comp.changed() {
		s.log.Debug().Str("key", key).Msg("selector hit")
		s.mergeBelow(comp)
		return comp.result.MustGet()
	}

	if !ok {
		comp = newComputation(key)
	}

	// Store the slot result-less before running: if compute panics the
	// entry is left unusable and the next lookup is a miss. The counter
	// covers every path that ran compute, including panicking ones.
	comp.result = mo.None[any]()
	s.cache.Set(key, comp)
	s.recomputations.Add(1)

	pushFrame(comp)
	result := func() any {
		defer popFrame()
		return s.compute(args)
	}()
	comp.result = mo.Some(result)

	s.log.Debug().
		Str("key", key).
		Uint64("recomputations", s.recomputations.Load()).
		Int("dependencies", len(comp.calls)).
		Msg("selector recomputed")

	s.mergeBelow(comp)
	return result
}

// mergeBelow propagates this computation's dependency set into every
// computation still being built, so enclosing selectors inherit it whether
// this invocation hit or recomputed.
func (s *Selector) mergeBelow(comp *Computation) {
	for _, parent := range evalStack {
		parent.merge(comp)
	}
}

// Key returns the cache key an invocation with the given arguments would
// use.
func (s *Selector) Key(args ...any) string {
	return s.serialize(args)
}

// Dependencies returns the observer keys recorded for the computation at
// the given argument tuple's cache key, in registration order. The result
// is empty when nothing is cached under that key.
func (s *Selector) Dependencies(args ...any) []string {
	comp, ok := s.cache.Get(s.serialize(args))
	if !ok {
		return []string{}
	}
	return comp.Keys()
}

// Recomputations returns the number of times compute has run, counting
// panicking runs.
func (s *Selector) Recomputations() uint64 {
	return s.recomputations.Load()
}

// ClearCache resets the selector's cache; the next invocation is a
// guaranteed miss.
func (s *Selector) ClearCache() {
	s.cache.Clear()
	s.log.Debug().Msg("cache cleared")
}

// Mock prepares a canned result for the cache key of the given argument
// tuple. The installed computation has an empty dependency set, so it
// persists until ClearCache or an explicit overwrite.
func (s *Selector) Mock(args ...any) *Mock {
	return &Mock{sel: s, key: s.serialize(args)}
}

// Mock installs canned selector results for one cache key.
type Mock struct {
	sel *Selector
	key string
}

// Result installs value under the mock's cache key. Subsequent invocations
// with that key return value without running compute and without touching
// the recomputation counter.
func (m *Mock) Result(value any) {
	comp := newComputation(m.key)
	comp.result = mo.Some(value)
	m.sel.cache.Set(m.key, comp)
	m.sel.log.Debug().Str("key", m.key).Msg("mock installed")
}
