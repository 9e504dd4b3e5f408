package discord

import (
	"time"

	"github.com/specialistvlad/porygon/internal/events"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	ApplicationID  Snowflake
	Environment    Environment
	Events         *events.Registry
	GuildCacheSize int
	GuildCacheTTL  time.Duration
}

// Session is the long-lived, read-only handle passed to every setup step. It
// is shared across all scopes and never mutated after construction.
type Session struct {
	api    API
	guilds GuildFetcher
	appID  Snowflake
	env    Environment
	events *events.Registry
}

// NewSession bundles api with the process-level settings. Guild lookups made
// through the session are cached.
func NewSession(api API, opts SessionOptions) *Session {
	if opts.Events == nil {
		opts.Events = events.NewRegistry()
	}
	return &Session{
		api:    api,
		guilds: NewCachedGuilds(api, opts.GuildCacheSize, opts.GuildCacheTTL),
		appID:  opts.ApplicationID,
		env:    opts.Environment,
		events: opts.Events,
	}
}

// API returns the REST capability.
func (s *Session) API() API { return s.api }

// Guilds returns the cached guild fetcher.
func (s *Session) Guilds() GuildFetcher { return s.guilds }

// ApplicationID returns the bot's application id.
func (s *Session) ApplicationID() Snowflake { return s.appID }

// Environment returns the runtime environment.
func (s *Session) Environment() Environment { return s.env }

// Events returns the shared event registry.
func (s *Session) Events() *events.Registry { return s.events }
