package memograph

// ObserverOption configures an Observer at construction.
type ObserverOption func(*Observer)

// WithIsEqual replaces the default reference-equality predicate used during
// change detection against this observer's results.
func WithIsEqual(isEqual func(a, b any) bool) ObserverOption {
	return func(o *Observer) {
		if isEqual != nil {
			o.isEqual = isEqual
		}
	}
}

// SelectorOption configures a Selector at construction.
type SelectorOption func(*Selector)

// WithCache replaces the selector's default unbounded cache.
func WithCache(cache Cache) SelectorOption {
	return func(s *Selector) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithSerializer replaces the selector's default argument serializer.
func WithSerializer(serialize Serializer) SelectorOption {
	return func(s *Selector) {
		if serialize != nil {
			s.serialize = serialize
		}
	}
}
