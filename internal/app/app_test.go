package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/specialistvlad/porygon/internal/config"
	"github.com/specialistvlad/porygon/internal/controller"
	"github.com/specialistvlad/porygon/internal/discord"
	"github.com/specialistvlad/porygon/internal/events"
	"github.com/specialistvlad/porygon/internal/initializer"
	"github.com/specialistvlad/porygon/internal/setup"
	"github.com/specialistvlad/porygon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader returns a fixed configuration and remembers the paths it got.
type stubLoader struct {
	bot   *config.Bot
	err   error
	paths []string
}

func (l *stubLoader) Load(_ context.Context, paths ...string) (*config.Bot, error) {
	l.paths = paths
	return l.bot, l.err
}

func testBot(env discord.Environment) *config.Bot {
	bot := config.Default()
	bot.Token = "secret"
	bot.ApplicationID = testutil.ApplicationID
	bot.Environment = env
	return bot
}

func setupAppTest(t *testing.T, loader config.Loader, api discord.API, installers ...setup.Installer) (*App, *testutil.SafeBuffer) {
	t.Helper()
	logs := &testutil.SafeBuffer{}
	cfg := &Config{ConfigPath: "porygon.hcl", LogLevel: "debug", LogFormat: "text"}
	return newApp(logs, cfg, loader, api, installers), logs
}

func TestNewApp_PanicsOnConfigError(t *testing.T) {
	loader := &stubLoader{err: config.ErrMissingToken}
	assert.PanicsWithError(t, "failed to load configuration: bot token is required", func() {
		NewApp(&testutil.SafeBuffer{}, &Config{}, loader)
	})
}

func TestNewApp_BuildsSessionFromConfig(t *testing.T) {
	loader := &stubLoader{bot: testBot(discord.Staging)}
	a, _ := setupAppTest(t, loader, testutil.NewFakeAPI())

	assert.Equal(t, []string{"porygon.hcl"}, loader.paths)
	assert.Equal(t, discord.Staging, a.Session().Environment())
	assert.Equal(t, testutil.ApplicationID, a.Session().ApplicationID())
	assert.Len(t, a.installers, len(coreInstallers))
}

func TestNewApp_BuildsRESTClientByDefault(t *testing.T) {
	a := NewApp(&testutil.SafeBuffer{}, &Config{}, &stubLoader{bot: testBot(discord.Production)})
	_, ok := a.Session().API().(*discord.Client)
	assert.True(t, ok)
}

func TestRun_CoreFeatures(t *testing.T) {
	api := testutil.NewFakeAPI()
	a, logs := setupAppTest(t, &stubLoader{bot: testBot(discord.Production)}, api)

	require.False(t, a.Ready())
	require.NoError(t, a.Run(context.Background()))
	assert.True(t, a.Ready())

	assert.Equal(t, 1, api.CountCalls("CreateGlobalCommand"), "ping is uploaded")
	assert.Equal(t, 1, a.Session().Events().Len(events.Ready), "activity handler is attached")
	testutil.AssertStepRan(t, logs.String(), "command:Global")
	testutil.AssertStepRan(t, logs.String(), "init:Global")
	assert.Contains(t, logs.String(), "Setup complete!")
}

func TestRun_SetupFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := func(s *setup.Setup) *setup.Setup {
		return s.AddInit(controller.Global, initializer.New("fails", func(context.Context, *initializer.Args) error {
			return boom
		}))
	}
	a, _ := setupAppTest(t, &stubLoader{bot: testBot(discord.Production)}, testutil.NewFakeAPI(), failing)

	err := a.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "setup failed")
	assert.False(t, a.Ready())
}

func TestHealthHandler(t *testing.T) {
	a, logs := setupAppTest(t, &stubLoader{bot: testBot(discord.Production)}, testutil.NewFakeAPI())

	rec := httptest.NewRecorder()
	a.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	a.ready.Store(true)
	rec = httptest.NewRecorder()
	a.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
	assert.Contains(t, logs.String(), "Health check endpoint hit.")
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{HealthcheckPort: 8080})
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HealthcheckPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Nil(t, cfg.configPaths())

	cfg, err = NewConfig(Config{LogLevel: " WARN ", LogFormat: "Json"})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	_, err = NewConfig(Config{HealthcheckPort: 70000})
	require.Error(t, err)
	_, err = NewConfig(Config{LogLevel: "trace"})
	require.ErrorIs(t, err, ErrInvalidLogLevel)
	_, err = NewConfig(Config{LogFormat: "yaml"})
	require.ErrorIs(t, err, ErrInvalidLogFormat)
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name   string
		level  string
		format string
		hidden string
		shown  string
	}{
		{"json at error", "error", "json", "hidden", `"msg":"failed"`},
		{"text at debug", "debug", "text", "", "msg=failed"},
		{"unknown values fall back to info text", "", "", "hidden", "msg=failed"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &testutil.SafeBuffer{}
			logger := newLogger(tc.level, tc.format, logs)
			if tc.hidden != "" {
				logger.Debug(tc.hidden)
			}
			logger.Error("failed")
			if tc.hidden != "" {
				assert.NotContains(t, logs.String(), tc.hidden)
			}
			assert.Contains(t, logs.String(), tc.shown)
		})
	}
}
