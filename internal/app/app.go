package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/specialistvlad/porygon/internal/config"
	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/discord"
	"github.com/specialistvlad/porygon/internal/events"
	"github.com/specialistvlad/porygon/internal/setup"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	bot        *config.Bot
	session    *discord.Session
	installers []setup.Installer

	ready      atomic.Bool
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It loads the bot
// configuration through loader and builds the platform session. With no
// installers the core feature set is used.
//
// A configuration that cannot be loaded is a fatal startup error and panics.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, installers ...setup.Installer) *App {
	return newApp(outW, appConfig, loader, nil, installers)
}

// newApp is NewApp with an injectable API; nil builds the REST client from
// the loaded configuration.
func newApp(outW io.Writer, appConfig *Config, loader config.Loader, api discord.API, installers []setup.Installer) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	bot, err := loader.Load(ctx, appConfig.configPaths()...)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded.", "environment", bot.Environment, "application_id", bot.ApplicationID)

	if api == nil {
		api = discord.NewClient(discord.ClientOptions{
			BaseURL: bot.API.BaseURL,
			Token:   bot.Token,
			Timeout: bot.API.Timeout,
		})
	}

	session := discord.NewSession(api, discord.SessionOptions{
		ApplicationID:  bot.ApplicationID,
		Environment:    bot.Environment,
		Events:         events.NewRegistry(),
		GuildCacheSize: bot.GuildCache.Size,
		GuildCacheTTL:  bot.GuildCache.TTL,
	})
	logger.Debug("Session created.")

	if len(installers) == 0 {
		installers = coreInstallers
	}

	return &App{
		outW:       outW,
		logger:     logger,
		config:     appConfig,
		bot:        bot,
		session:    session,
		installers: installers,
	}
}

// Session returns the application's session. This is primarily for testing.
func (a *App) Session() *discord.Session {
	return a.session
}

// Ready reports whether setup has completed.
func (a *App) Ready() bool {
	return a.ready.Load()
}
