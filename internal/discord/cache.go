package discord

import (
	"context"
	"time"

	"github.com/bluele/gcache"
)

// CachedGuilds memoises successful guild lookups so the connectivity check
// and the execution context of the same target share one fetch. Failures are
// never cached; an unreachable guild is asked again on the next lookup.
type CachedGuilds struct {
	inner GuildFetcher
	cache gcache.Cache
}

var _ GuildFetcher = (*CachedGuilds)(nil)

// NewCachedGuilds wraps inner with a bounded LRU. A non-positive ttl keeps
// entries until evicted by size.
func NewCachedGuilds(inner GuildFetcher, size int, ttl time.Duration) *CachedGuilds {
	if size <= 0 {
		size = 16
	}
	builder := gcache.New(size).LRU()
	if ttl > 0 {
		builder = builder.Expiration(ttl)
	}
	return &CachedGuilds{inner: inner, cache: builder.Build()}
}

// GetGuild returns a cached guild or fetches it from the wrapped fetcher.
func (c *CachedGuilds) GetGuild(ctx context.Context, id Snowflake) (*Guild, error) {
	if v, err := c.cache.Get(id); err == nil {
		return v.(*Guild), nil
	}

	guild, err := c.inner.GetGuild(ctx, id)
	if err != nil {
		return nil, err
	}
	// Set only fails for a nil key.
	_ = c.cache.Set(id, guild)
	return guild, nil
}
