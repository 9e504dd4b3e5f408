package hcl

import (
	"fmt"
	"time"

	"github.com/specialistvlad/porygon/internal/config"
	"github.com/specialistvlad/porygon/internal/discord"
)

// translate applies the settings present in f on top of bot.
func translate(f *botFile, bot *config.Bot) error {
	if f.Environment != nil {
		env, err := discord.ParseEnvironment(*f.Environment)
		if err != nil {
			return err
		}
		bot.Environment = env
	}
	if f.Token != nil {
		bot.Token = *f.Token
	}
	if f.ApplicationID != nil {
		id, err := config.ParseApplicationID(*f.ApplicationID)
		if err != nil {
			return err
		}
		bot.ApplicationID = id
	}

	if f.API != nil {
		if f.API.BaseURL != nil {
			bot.API.BaseURL = *f.API.BaseURL
		}
		if err := setDuration(&bot.API.Timeout, f.API.Timeout, "api.timeout"); err != nil {
			return err
		}
	}

	if f.GuildCache != nil {
		if f.GuildCache.Size != nil {
			bot.GuildCache.Size = *f.GuildCache.Size
		}
		if err := setDuration(&bot.GuildCache.TTL, f.GuildCache.TTL, "guild_cache.ttl"); err != nil {
			return err
		}
	}

	return nil
}

func setDuration(dst *time.Duration, raw *string, field string) error {
	if raw == nil {
		return nil
	}
	d, err := time.ParseDuration(*raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	*dst = d
	return nil
}
