package memograph

import (
	"reflect"

	"github.com/rs/zerolog"
)

// Observer is a non-memoized state reader with a stable identifier. On
// invocation it reads the current state of its context and registers itself
// with every in-progress selector computation.
type Observer struct {
	ctx     *Context
	id      string
	read    func(state, arg any) any
	isEqual func(a, b any) bool
	log     zerolog.Logger
}

// refEqual is the default equality predicate: Go interface equality. It
// panics on uncomparable values (slices, maps, functions); observers
// returning those should install DeepEqual or a custom predicate via
// WithIsEqual.
func refEqual(a, b any) bool {
	return a == b
}

// DeepEqual is an equality predicate for observers whose results are
// structured or uncomparable values. Install it with WithIsEqual.
func DeepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// NewObserver creates an observer wrapping the given reader. The reader is
// any function of shape func(S) R or func(S, A) R; a reader declaring more
// than two parameters fails with ErrReaderArity.
func (c *Context) NewObserver(reader any, opts ...ObserverOption) (*Observer, error) {
	read, err := newReader(reader)
	if err != nil {
		c.log.Debug().Err(err).Msg("observer rejected")
		return nil, err
	}

	o := &Observer{
		ctx:     c,
		id:      c.nextObserverID(),
		read:    read,
		isEqual: refEqual,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.log = c.log.With().Str("observer", o.id).Logger()
	o.log.Debug().Msg("observer created")
	return o, nil
}

// ID returns the observer's unique identifier within its context.
func (o *Observer) ID() string {
	return o.id
}

// Key returns the observer key an invocation with the given argument would
// register: the observer's context-qualified id, extended with the argument
// encoding. Useful for asserting dependency sets when one observer is
// invoked with several arguments.
func (o *Observer) Key(args ...any) string {
	if len(args) > 1 {
		panic(ErrTooManyArgs)
	}
	if len(args) == 0 {
		return observerKey(o.ctx.id, o.id, nil, false)
	}
	return observerKey(o.ctx.id, o.id, args[0], true)
}

// Get invokes the reader against the context's current state, with the
// optional argument. Invoking with more than one argument panics with
// ErrTooManyArgs.
//
// When selector computations are in progress, the call is recorded into
// every frame of the evaluation stack so enclosing selectors inherit the
// dependency.
func (o *Observer) Get(args ...any) any {
	if len(args) > 1 {
		panic(ErrTooManyArgs)
	}

	var arg any
	hasArg := len(args) == 1
	if hasArg {
		arg = args[0]
	}

	result := o.read(o.ctx.currentState(), arg)

	if len(evalStack) > 0 {
		call := observerCall{
			id:     o.id,
			key:    observerKey(o.ctx.id, o.id, arg, hasArg),
			arg:    arg,
			hasArg: hasArg,
			result: result,
			replay: func() any {
				return o.read(o.ctx.currentState(), arg)
			},
			isEqual: o.isEqual,
		}
		for _, comp := range evalStack {
			comp.record(call)
		}
		o.log.Debug().Str("key", call.key).Int("frames", len(evalStack)).Msg("dependency recorded")
	}

	return result
}
