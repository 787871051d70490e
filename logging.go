package memograph

import (
	"github.com/rs/zerolog"
)

// Logger is the package-level logger, a no-op until configured. Contexts
// capture it at construction, so install it first:
//
//	memograph.SetLogger(zerolog.New(os.Stdout).Level(zerolog.DebugLevel))
var Logger = zerolog.Nop()

// SetLogger enables debug logging of cache hits, recomputations and state
// swaps, tagging every event with component: memograph.
func SetLogger(l zerolog.Logger) {
	Logger = l.With().Str("component", "memograph").Logger()
}
