package auth

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// replayGuard remembers accepted signatures for twice the freshness window,
// long enough that any replay of a still-fresh signature hits the cache.
type replayGuard struct {
	c *gocache.Cache
}

func newReplayGuard(window time.Duration) *replayGuard {
	ttl := 2 * window
	return &replayGuard{c: gocache.New(ttl, window)}
}

// remember records the signature and reports whether it was seen before.
// Add is atomic, so two concurrent replays cannot both pass.
func (g *replayGuard) remember(signature string) (seen bool) {
	return g.c.Add(signature, struct{}{}, gocache.DefaultExpiration) != nil
}
