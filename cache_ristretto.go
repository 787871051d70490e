package memograph

import (
	"errors"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog"
)

// RistrettoConfig configures the Ristretto-backed bounded cache.
type RistrettoConfig struct {
	// NumCounters is the number of 4-bit access counters.
	// Recommended: 10x expected max entries for optimal admission policy.
	NumCounters int64

	// MaxCost is the maximum number of computations the cache can hold.
	// Each stored computation has cost 1.
	MaxCost int64

	// BufferItems is the number of keys per Get buffer.
	// Recommended: 64 (default).
	BufferItems int64
}

// DefaultRistrettoConfig returns a RistrettoConfig with sensible defaults:
// room for ~10,000 cached computations.
func DefaultRistrettoConfig() RistrettoConfig {
	return RistrettoConfig{
		NumCounters: 100_000,
		MaxCost:     10_000,
		BufferItems: 64,
	}
}

// RistrettoCache is a bounded Cache backed by dgraph-io/ristretto. Unlike
// the default unbounded store, entries may be evicted once the number of
// stored computations exceeds MaxCost; eviction only ever causes an extra
// recomputation, never a stale result.
type RistrettoCache struct {
	cache *ristretto.Cache[string, *Computation]
	log   zerolog.Logger
}

var _ Cache = (*RistrettoCache)(nil)

// NewRistrettoCache creates a bounded cache with the given configuration.
func NewRistrettoCache(cfg RistrettoConfig) (*RistrettoCache, error) {
	if cfg.MaxCost <= 0 {
		return nil, errors.New("memograph: ristretto max_cost must be positive")
	}
	if cfg.NumCounters <= 0 {
		return nil, errors.New("memograph: ristretto num_counters must be positive")
	}

	bufferItems := cfg.BufferItems
	if bufferItems <= 0 {
		bufferItems = 64 // default buffer items
	}

	log := Logger.With().Str("backend", "ristretto").Logger()

	cache, err := ristretto.NewCache(&ristretto.Config[string, *Computation]{
		NumCounters:        cfg.NumCounters,
		MaxCost:            cfg.MaxCost,
		BufferItems:        bufferItems,
		IgnoreInternalCost: true,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create ristretto cache")
		return nil, err
	}

	log.Debug().
		Int64("num_counters", cfg.NumCounters).
		Int64("max_cost", cfg.MaxCost).
		Int64("buffer_items", bufferItems).
		Msg("ristretto cache created")

	return &RistrettoCache{cache: cache, log: log}, nil
}

// Get retrieves the computation stored under key.
func (r *RistrettoCache) Get(key string) (*Computation, bool) {
	comp, ok := r.cache.Get(key)
	r.log.Debug().Str("key", key).Bool("hit", ok).Msg("cache get")
	return comp, ok
}

// Set stores a computation under key with cost 1. The write buffer is
// drained before returning so the entry is observable by the next Get.
func (r *RistrettoCache) Set(key string, comp *Computation) {
	r.cache.Set(key, comp, 1)
	r.cache.Wait()
	r.log.Debug().Str("key", key).Msg("cache set")
}

// Clear removes all entries.
func (r *RistrettoCache) Clear() {
	r.cache.Clear()
	r.log.Debug().Msg("cache cleared")
}

// Close releases resources associated with the cache.
func (r *RistrettoCache) Close() {
	r.cache.Close()
}
