package config

import (
	"context"
	"os"

	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/discord"
)

// Environment variables read when no configuration file is given.
const (
	EnvToken         = "DISCORD_TOKEN"
	EnvApplicationID = "APPLICATION_ID"
	EnvEnvironment   = "PORYGON_ENVIRONMENT"
)

// EnvLoader builds the configuration from environment variables only.
type EnvLoader struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

var _ Loader = (*EnvLoader)(nil)

// Load implements Loader. Paths are ignored.
func (l *EnvLoader) Load(ctx context.Context, _ ...string) (*Bot, error) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	ctxlog.FromContext(ctx).Debug("Loading configuration from environment.")

	bot := Default()
	bot.Token, _ = lookup(EnvToken)
	if bot.Token == "" {
		return nil, ErrMissingToken
	}

	raw, ok := lookup(EnvApplicationID)
	if !ok {
		return nil, ErrInvalidApplicationID
	}
	id, err := ParseApplicationID(raw)
	if err != nil {
		return nil, err
	}
	bot.ApplicationID = id

	if raw, ok := lookup(EnvEnvironment); ok {
		env, err := discord.ParseEnvironment(raw)
		if err != nil {
			return nil, err
		}
		bot.Environment = env
	}

	if err := bot.Validate(); err != nil {
		return nil, err
	}
	return bot, nil
}
