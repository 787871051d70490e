package memograph

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Serializer converts a selector's argument tuple into a cache key.
// A custom Serializer installed with WithSerializer replaces the default
// wholesale; it must return a value usable as a key by the selector's Cache.
type Serializer func(args []any) string

// noArgsKey is the cache key for the empty argument tuple. JSON-encoded
// tuples always start with '[' and primitive stringifications never produce
// "()", so an empty invocation can never collide with any argument encoding
// (including an empty string, which routes through JSON as [""]).
const noArgsKey = "()"

// defaultSerialize maps an argument tuple to a cache key:
//   - empty tuple: noArgsKey
//   - exactly one primitive (nil, bool, integer, float; not string): its
//     stringification
//   - anything else: JSON encoding of the tuple
//
// Strings route through JSON so a string argument can never collide with
// the stringification of a number or bool.
func defaultSerialize(args []any) string {
	switch {
	case len(args) == 0:
		return noArgsKey
	case len(args) == 1 && isPrimitive(args[0]):
		return primitiveString(args[0])
	default:
		return jsonTuple(args)
	}
}

// observerKey identifies an (observer, argument) dependency edge. The
// observer id is qualified with its context identity: ids are monotonic per
// context, so two contexts both own an observer "1", and computations can
// record dependencies from several contexts at once.
func observerKey(ctxID, id string, arg any, hasArg bool) string {
	qualified := ctxID + "/" + id
	switch {
	case !hasArg:
		return qualified
	case isPrimitive(arg):
		return qualified + ":" + primitiveString(arg)
	default:
		return qualified + ":" + jsonValue(arg)
	}
}

func isPrimitive(v any) bool {
	switch v.(type) {
	case nil, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	default:
		return false
	}
}

func primitiveString(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}

// jsonTuple encodes an argument tuple as a JSON array, appending one
// element per argument.
func jsonTuple(args []any) string {
	doc := "[]"
	for _, a := range args {
		var err error
		doc, err = sjson.Set(doc, "-1", a)
		if err != nil {
			panic(fmt.Errorf("memograph: serialize argument %T: %w", a, err))
		}
	}
	return doc
}

// jsonValue returns the JSON encoding of a single value.
func jsonValue(v any) string {
	return gjson.Parse(jsonTuple([]any{v})).Get("0").Raw
}
