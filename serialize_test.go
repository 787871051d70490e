package memograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestDefaultSerialize(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{name: "no args", args: nil, want: noArgsKey},
		{name: "empty slice", args: []any{}, want: noArgsKey},
		{name: "single int", args: []any{42}, want: "42"},
		{name: "single negative int", args: []any{-7}, want: "-7"},
		{name: "single bool", args: []any{true}, want: "true"},
		{name: "single float", args: []any{2.5}, want: "2.5"},
		{name: "single nil", args: []any{nil}, want: "nil"},
		{name: "single string routes through JSON", args: []any{"42"}, want: `["42"]`},
		{name: "empty string routes through JSON", args: []any{""}, want: `[""]`},
		{name: "two ints route through JSON", args: []any{1, 2}, want: "[1,2]"},
		{name: "mixed tuple", args: []any{"a", 1}, want: `["a",1]`},
		{name: "slice argument", args: []any{[]int{1, 2}}, want: "[[1,2]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultSerialize(tt.args))
		})
	}
}

// The empty-tuple sentinel and the stringification of any primitive must
// never collide with a JSON-encoded tuple.
func TestDefaultSerialize_NoCollisions(t *testing.T) {
	assert.NotEqual(t, defaultSerialize(nil), defaultSerialize([]any{""}))
	assert.NotEqual(t, defaultSerialize([]any{42}), defaultSerialize([]any{"42"}))
	assert.NotEqual(t, defaultSerialize([]any{true}), defaultSerialize([]any{"true"}))
	assert.NotEqual(t, defaultSerialize([]any{nil}), defaultSerialize([]any{"nil"}))
}

func TestDefaultSerialize_TupleIsValidJSON(t *testing.T) {
	doc := defaultSerialize([]any{"a", 1, map[string]int{"b": 2}})
	parsed := gjson.Parse(doc)
	assert.True(t, parsed.IsArray())
	assert.Equal(t, "a", parsed.Get("0").String())
	assert.Equal(t, int64(1), parsed.Get("1").Int())
	assert.Equal(t, int64(2), parsed.Get("2.b").Int())
}

func TestObserverKey(t *testing.T) {
	tests := []struct {
		name   string
		arg    any
		hasArg bool
		want   string
	}{
		{name: "no arg", hasArg: false, want: "c1/7"},
		{name: "int arg", arg: 5, hasArg: true, want: "c1/7:5"},
		{name: "bool arg", arg: false, hasArg: true, want: "c1/7:false"},
		{name: "nil arg", arg: nil, hasArg: true, want: "c1/7:nil"},
		{name: "string arg quoted", arg: "5", hasArg: true, want: `c1/7:"5"`},
		{name: "map arg as JSON", arg: map[string]int{"a": 1}, hasArg: true, want: `c1/7:{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, observerKey("c1", "7", tt.arg, tt.hasArg))
		})
	}
}

// Observers from different contexts commonly share a per-context id; their
// keys must still be distinct.
func TestObserverKey_QualifiedByContext(t *testing.T) {
	assert.NotEqual(t, observerKey("c1", "1", nil, false), observerKey("c2", "1", nil, false))
	assert.NotEqual(t, observerKey("c1", "1", 5, true), observerKey("c2", "1", 5, true))
}

// A string argument must never produce the same key as the primitive whose
// stringification it equals.
func TestObserverKey_StringNeverCollidesWithPrimitive(t *testing.T) {
	assert.NotEqual(t, observerKey("c1", "1", 5, true), observerKey("c1", "1", "5", true))
	assert.NotEqual(t, observerKey("c1", "1", true, true), observerKey("c1", "1", "true", true))
}
