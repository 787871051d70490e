package memograph

import (
	"fmt"
	"reflect"
)

// newReader adapts a user reader function to the uniform call shape used by
// dependency recording and change-detection replay. Accepted shapes are
// func(S) R and func(S, A) R. A unary reader ignores the argument slot; a
// binary reader invoked without an argument receives the zero value, so the
// replay shape always matches the original invocation shape.
func newReader(fn any) (func(state, arg any) any, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return nil, fmt.Errorf("memograph: observer reader must be a function, got %T", fn)
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("memograph: observer reader must not be variadic")
	}
	if t.NumIn() > 2 {
		return nil, ErrReaderArity
	}
	if t.NumIn() == 0 {
		return nil, fmt.Errorf("memograph: observer reader must accept a state parameter")
	}
	if t.NumOut() != 1 {
		return nil, fmt.Errorf("memograph: observer reader must return exactly one value")
	}

	v := reflect.ValueOf(fn)
	if t.NumIn() == 1 {
		return func(state, _ any) any {
			return v.Call([]reflect.Value{conform(t.In(0), state)})[0].Interface()
		}, nil
	}
	return func(state, arg any) any {
		return v.Call([]reflect.Value{conform(t.In(0), state), conform(t.In(1), arg)})[0].Interface()
	}, nil
}

// newCompute adapts a user compute function to a call over an argument
// tuple. Any function returning exactly one value is accepted, including
// variadic ones.
func newCompute(fn any) (func(args []any) any, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return nil, fmt.Errorf("memograph: selector compute must be a function, got %T", fn)
	}
	if t.NumOut() != 1 {
		return nil, fmt.Errorf("memograph: selector compute must return exactly one value")
	}

	v := reflect.ValueOf(fn)
	return func(args []any) any {
		if t.IsVariadic() {
			if len(args) < t.NumIn()-1 {
				panic(fmt.Errorf("memograph: selector invoked with %d arguments, compute requires at least %d", len(args), t.NumIn()-1))
			}
		} else if len(args) != t.NumIn() {
			panic(fmt.Errorf("memograph: selector invoked with %d arguments, compute accepts %d", len(args), t.NumIn()))
		}

		in := make([]reflect.Value, len(args))
		for i, a := range args {
			var pt reflect.Type
			if t.IsVariadic() && i >= t.NumIn()-1 {
				pt = t.In(t.NumIn() - 1).Elem()
			} else {
				pt = t.In(i)
			}
			in[i] = conform(pt, a)
		}
		return v.Call(in)[0].Interface()
	}, nil
}

// conform prepares a value for a reflective call against a parameter type.
// nil maps to the parameter's zero value so untyped nil state and absent
// observer arguments are callable.
func conform(t reflect.Type, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != t && !rv.Type().AssignableTo(t) && rv.Type().ConvertibleTo(t) {
		return rv.Convert(t)
	}
	return rv
}
