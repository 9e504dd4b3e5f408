package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/porygon/internal/discord"
)

var (
	// ErrMissingToken means no bot token was configured.
	ErrMissingToken = errors.New("bot token is required")
	// ErrInvalidApplicationID means the application id is missing or not a
	// snowflake.
	ErrInvalidApplicationID = errors.New("application id must be a non-zero unsigned integer")
)

// Bot is everything the process needs to build its session.
type Bot struct {
	Token         string
	ApplicationID discord.Snowflake
	Environment   discord.Environment

	API        API
	GuildCache GuildCache
}

// API configures the REST client.
type API struct {
	BaseURL string
	Timeout time.Duration
}

// GuildCache configures the guild lookup cache.
type GuildCache struct {
	Size int
	TTL  time.Duration
}

// Default returns the settings used for anything a source leaves out.
func Default() *Bot {
	return &Bot{
		Environment: discord.Production,
		API: API{
			BaseURL: discord.DefaultBaseURL,
			Timeout: 10 * time.Second,
		},
		GuildCache: GuildCache{
			Size: 16,
			TTL:  5 * time.Minute,
		},
	}
}

// Validate checks the settings that have no usable default.
func (b *Bot) Validate() error {
	if b.Token == "" {
		return ErrMissingToken
	}
	if b.ApplicationID == 0 {
		return ErrInvalidApplicationID
	}
	if b.GuildCache.Size < 0 {
		return fmt.Errorf("guild cache size must not be negative, got %d", b.GuildCache.Size)
	}
	return nil
}

// ParseApplicationID parses s as an application id.
func ParseApplicationID(s string) (discord.Snowflake, error) {
	id, err := discord.ParseSnowflake(s)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidApplicationID, s)
	}
	return id, nil
}
