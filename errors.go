package memograph

import "errors"

// Contract errors raised by observer construction and invocation.
//
// Use errors.Is to check for these errors:
//
//	_, err := ctx.NewObserver(func(s, a, b any) any { return nil })
//	if errors.Is(err, memograph.ErrReaderArity) {
//		// reader declared too many parameters
//	}
var (
	// ErrReaderArity is returned by NewObserver when the reader function
	// declares more than two parameters (state plus one optional argument).
	ErrReaderArity = errors.New("Observer methods cannot receive more than two arguments")

	// ErrTooManyArgs is the panic value raised when an observer is invoked
	// with more than one argument.
	ErrTooManyArgs = errors.New("Observer methods cannot be invoked with more than one argument")
)
