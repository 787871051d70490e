package memograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObserver_AcceptsUnaryAndBinaryReaders(t *testing.T) {
	ctx := New(map[string]int{"a": 1})

	unary, err := ctx.NewObserver(func(s map[string]int) int { return s["a"] })
	require.NoError(t, err)
	assert.Equal(t, 1, unary.Get())

	binary, err := ctx.NewObserver(func(s map[string]int, key string) int { return s[key] })
	require.NoError(t, err)
	assert.Equal(t, 1, binary.Get("a"))
}

func TestNewObserver_RejectsTooManyParameters(t *testing.T) {
	ctx := New(nil)

	_, err := ctx.NewObserver(func(s, a, b any) any { return nil })
	require.ErrorIs(t, err, ErrReaderArity)
	assert.Equal(t, "Observer methods cannot receive more than two arguments", err.Error())
}

func TestNewObserver_RejectsInvalidReaders(t *testing.T) {
	ctx := New(nil)

	tests := []struct {
		name   string
		reader any
	}{
		{name: "not a function", reader: 42},
		{name: "nil", reader: nil},
		{name: "no parameters", reader: func() any { return nil }},
		{name: "variadic", reader: func(s any, args ...any) any { return nil }},
		{name: "no return value", reader: func(s any) {}},
		{name: "two return values", reader: func(s any) (any, error) { return nil, nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ctx.NewObserver(tt.reader)
			assert.Error(t, err)
		})
	}
}

func TestObserver_IDsAreUniqueAndStable(t *testing.T) {
	ctx := New(nil)

	seen := make(map[string]bool)
	for range 10 {
		obs, err := ctx.NewObserver(func(s any) any { return s })
		require.NoError(t, err)
		assert.NotEmpty(t, obs.ID())
		assert.False(t, seen[obs.ID()], "duplicate observer id %s", obs.ID())
		seen[obs.ID()] = true
	}
}

func TestObserver_GetRejectsMoreThanOneArgument(t *testing.T) {
	ctx := New(nil)
	obs, err := ctx.NewObserver(func(s any) any { return s })
	require.NoError(t, err)

	assert.PanicsWithError(t, "Observer methods cannot be invoked with more than one argument", func() {
		obs.Get(1, 2)
	})
}

func TestObserver_Key(t *testing.T) {
	ctx := New(nil)
	obs, err := ctx.NewObserver(func(s any, arg any) any { return arg })
	require.NoError(t, err)

	base := ctx.ID() + "/" + obs.ID()
	assert.Equal(t, base, obs.Key())
	assert.Equal(t, base+":5", obs.Key(5))
	assert.Equal(t, base+`:"a"`, obs.Key("a"))
}

func TestObserver_GetReadsCurrentState(t *testing.T) {
	ctx := New(10)
	obs, err := ctx.NewObserver(func(s int) int { return s * 2 })
	require.NoError(t, err)

	assert.Equal(t, 20, obs.Get())

	ctx.SetState(21)
	assert.Equal(t, 42, obs.Get())
}

func TestObserver_NoRegistrationOutsideSelectors(t *testing.T) {
	ctx := New(1)
	obs, err := ctx.NewObserver(func(s int) int { return s })
	require.NoError(t, err)

	require.Empty(t, evalStack)
	obs.Get()
	assert.Empty(t, evalStack)
}

func TestObserver_RegistersOnEveryFrame(t *testing.T) {
	ctx := New(1)
	obs, err := ctx.NewObserver(func(s int) int { return s })
	require.NoError(t, err)

	outer := newComputation("outer")
	inner := newComputation("inner")
	pushFrame(outer)
	pushFrame(inner)
	defer func() {
		popFrame()
		popFrame()
	}()

	obs.Get()

	assert.Equal(t, []string{obs.Key()}, outer.Keys())
	assert.Equal(t, []string{obs.Key()}, inner.Keys())
}
