package memograph

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// observerCall records one observer invocation inside a selector
// computation. It carries everything change detection needs to replay the
// read without consulting the originating Observer again: the argument, the
// observed result, a replay closure over the observer's reader and context
// state, and the observer's equality predicate.
type observerCall struct {
	id      string
	key     string
	arg     any
	hasArg  bool
	result  any
	replay  func() any
	isEqual func(a, b any) bool
}

// Computation is the cached product of one selector invocation: a result
// plus the observer calls needed to decide whether that result is still
// valid. The dependency index is keyed by observer key; the ordered call
// list is regenerated from the index after every mutation so the two always
// have the same membership.
//
// A computation with no result (never completed, or poisoned by a panicking
// compute) is treated as a miss on lookup.
type Computation struct {
	cacheKey string
	result   mo.Option[any]
	order    []string
	index    map[string]observerCall
	calls    []observerCall
}

func newComputation(cacheKey string) *Computation {
	return &Computation{
		cacheKey: cacheKey,
		result:   mo.None[any](),
		index:    make(map[string]observerCall),
	}
}

// CacheKey returns the key this computation is stored under.
func (c *Computation) CacheKey() string {
	return c.cacheKey
}

// Keys returns the observer keys of the recorded dependencies in
// registration order.
func (c *Computation) Keys() []string {
	return lo.Map(c.calls, func(call observerCall, _ int) string {
		return call.key
	})
}

// record inserts or overwrites a dependency by its observer key. An
// observer invoked several times during one computation keeps a single
// entry reflecting the latest observed value.
func (c *Computation) record(call observerCall) {
	if _, ok := c.index[call.key]; !ok {
		c.order = append(c.order, call.key)
	}
	c.index[call.key] = call
	c.regenerate()
}

// merge assigns another computation's dependency entries over this one.
// This is how a child selector's dependency set propagates into every
// enclosing computation.
func (c *Computation) merge(other *Computation) {
	for _, key := range other.order {
		if _, ok := c.index[key]; !ok {
			c.order = append(c.order, key)
		}
		c.index[key] = other.index[key]
	}
	c.regenerate()
}

func (c *Computation) regenerate() {
	c.calls = lo.Map(c.order, func(key string, _ int) observerCall {
		return c.index[key]
	})
}

// changed replays every recorded observer call against its context's
// current state and reports whether any observed value differs from the
// recorded one, short-circuiting on the first inequality. Replay bypasses
// the evaluation stack, so it never registers dependencies.
func (c *Computation) changed() bool {
	for _, call := range c.calls {
		if !call.isEqual(call.result, call.replay()) {
			return true
		}
	}
	return false
}
