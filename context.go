package memograph

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context is the unit of isolation: it owns a state value and assigns
// identifiers to the observers created through it. State is replaced
// wholesale by SetState and never mutated by the engine itself.
//
// SetState is safe to call from any goroutine. Observer and selector
// invocations must be confined to a single goroutine.
type Context struct {
	id        string
	mu        sync.RWMutex
	state     any
	observers atomic.Int64
	log       zerolog.Logger
}

// evalStack is the process-wide ordered sequence of computations currently
// being built, bottom to top. Observers register into every frame, not only
// the top; that is what gives enclosing selectors their transitive
// dependency sets. The stack spans contexts so that a selector composing
// observers from several contexts still discovers all of its dependencies;
// each recorded call replays against its own observer's context state, so
// contexts that are not composed together never invalidate each other.
var evalStack []*Computation

func pushFrame(comp *Computation) {
	evalStack = append(evalStack, comp)
}

func popFrame() {
	evalStack = evalStack[:len(evalStack)-1]
}

// New creates a Context seeded with the given initial state.
func New(initialState any) *Context {
	id := uuid.NewString()[:8]
	c := &Context{
		id:    id,
		state: initialState,
	}
	c.log = Logger.With().Str("context", id).Logger()
	c.log.Debug().Msg("context created")
	return c
}

// ID returns the context's identifier, as used in log fields.
func (c *Context) ID() string {
	return c.id
}

// SetState replaces the context's state value. The next selector lookup
// decides cache validity against the new state; no cached computation is
// mutated here.
func (c *Context) SetState(newState any) {
	c.mu.Lock()
	c.state = newState
	c.mu.Unlock()
	c.log.Debug().Msg("state replaced")
}

func (c *Context) currentState() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Context) nextObserverID() string {
	return strconv.FormatInt(c.observers.Add(1), 10)
}

// defaultContext is the process-wide Context backing the package-level
// entry points.
var defaultContext = New(nil)

// Default returns the process-wide default Context.
func Default() *Context {
	return defaultContext
}

// NewObserver creates an observer on the default Context.
func NewObserver(reader any, opts ...ObserverOption) (*Observer, error) {
	return defaultContext.NewObserver(reader, opts...)
}

// NewSelector creates a selector on the default Context.
func NewSelector(compute any, opts ...SelectorOption) (*Selector, error) {
	return defaultContext.NewSelector(compute, opts...)
}

// SetState replaces the default Context's state value.
func SetState(newState any) {
	defaultContext.SetState(newState)
}
