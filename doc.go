// Package memograph is a reactive memoization engine for derived
// computations over a shared state value.
//
// The package offers two primitives:
//   - Observers: cheap, non-memoized readers of the current state
//   - Selectors: memoized derived computations
//
// Dependencies between them are discovered automatically: while a selector
// computes, every observer it reaches (directly or through nested
// selectors) is recorded against that computation. A selector returns its
// cached result until one of the observed values changes, at which point
// the result is recomputed on demand. The engine is pull-based; it never
// calls back into consumers.
//
// Basic usage:
//
//	ctx := memograph.New(map[string]int{"a": 1, "b": 2})
//
//	getA, _ := ctx.NewObserver(func(s map[string]int) int { return s["a"] })
//	getB, _ := ctx.NewObserver(func(s map[string]int) int { return s["b"] })
//
//	sum, _ := ctx.NewSelector(func() int {
//		return getA.Get().(int) + getB.Get().(int)
//	})
//
//	sum.Get() // 3, computed
//	sum.Get() // 3, cached
//
//	ctx.SetState(map[string]int{"a": 1, "b": 5})
//	sum.Get() // 6, recomputed because getB's value changed
//
// A process-wide default Context is created eagerly; NewObserver,
// NewSelector and SetState at package level operate on it.
//
// Selectors accept arguments; each distinct argument tuple gets its own
// cache slot. The cache is replaceable per selector via WithCache (see
// Cache and RistrettoCache), and the argument-to-key serialization via
// WithSerializer.
//
// Concurrency: the engine is cooperative and single-threaded. SetState may
// be called from any goroutine, but observer and selector invocations must
// be confined to a single goroutine. Recomputations counters may be read
// from anywhere.
package memograph
