// Package discord is the thin REST surface the setup layer needs from the chat
// platform: guild metadata lookups and application command uploads. It also
// defines the Session handle shared by every setup step.
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the versioned REST root of the platform.
const DefaultBaseURL = "https://discord.com/api/v10"

// GuildFetcher resolves guild metadata by id.
type GuildFetcher interface {
	GetGuild(ctx context.Context, id Snowflake) (*Guild, error)
}

// API is the REST capability consumed by setup steps.
type API interface {
	GuildFetcher

	ListGlobalCommands(ctx context.Context, app Snowflake) ([]Command, error)
	ListGuildCommands(ctx context.Context, app, guild Snowflake) ([]Command, error)
	GetGlobalCommand(ctx context.Context, app, command Snowflake) (*Command, error)
	GetGuildCommand(ctx context.Context, app, guild, command Snowflake) (*Command, error)
	CreateGlobalCommand(ctx context.Context, app Snowflake, data CommandData) (*Command, error)
	CreateGuildCommand(ctx context.Context, app, guild Snowflake, data CommandData) (*Command, error)
	EditGlobalCommand(ctx context.Context, app, command Snowflake, data CommandData) (*Command, error)
	EditGuildCommand(ctx context.Context, app, guild, command Snowflake, data CommandData) (*Command, error)
}

// ClientOptions configures a REST client.
type ClientOptions struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	UserAgent string
}

// Client implements API over HTTP.
type Client struct {
	http *resty.Client
}

var _ API = (*Client)(nil)

// NewClient builds a REST client authenticating as a bot.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "DiscordBot (https://github.com/specialistvlad/porygon, 1.0)"
	}

	http := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Authorization", "Bot "+opts.Token).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		http.SetTimeout(opts.Timeout)
	}

	return &Client{http: http}
}

func (c *Client) request(ctx context.Context, result any) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&APIError{})
}

func (c *Client) do(resp *resty.Response, err error, what string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if resp.IsError() {
		apiErr, ok := resp.Error().(*APIError)
		if !ok || apiErr == nil {
			apiErr = &APIError{}
		}
		apiErr.Status = resp.StatusCode()
		return fmt.Errorf("%s: %w", what, apiErr)
	}
	return nil
}

// GetGuild fetches guild metadata.
func (c *Client) GetGuild(ctx context.Context, id Snowflake) (*Guild, error) {
	resp, err := c.request(ctx, &Guild{}).
		SetPathParam("guild", id.String()).
		Get("/guilds/{guild}")
	if err := c.do(resp, err, "get guild "+id.String()); err != nil {
		return nil, err
	}
	return resp.Result().(*Guild), nil
}

func (c *Client) ListGlobalCommands(ctx context.Context, app Snowflake) ([]Command, error) {
	resp, err := c.request(ctx, &[]Command{}).
		SetPathParam("app", app.String()).
		Get("/applications/{app}/commands")
	if err := c.do(resp, err, "list global commands"); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]Command), nil
}

func (c *Client) ListGuildCommands(ctx context.Context, app, guild Snowflake) ([]Command, error) {
	resp, err := c.request(ctx, &[]Command{}).
		SetPathParams(map[string]string{"app": app.String(), "guild": guild.String()}).
		Get("/applications/{app}/guilds/{guild}/commands")
	if err := c.do(resp, err, "list guild commands"); err != nil {
		return nil, err
	}
	return *resp.Result().(*[]Command), nil
}

func (c *Client) GetGlobalCommand(ctx context.Context, app, command Snowflake) (*Command, error) {
	resp, err := c.request(ctx, &Command{}).
		SetPathParams(map[string]string{"app": app.String(), "command": command.String()}).
		Get("/applications/{app}/commands/{command}")
	if err := c.do(resp, err, "get global command"); err != nil {
		return nil, err
	}
	return resp.Result().(*Command), nil
}

func (c *Client) GetGuildCommand(ctx context.Context, app, guild, command Snowflake) (*Command, error) {
	resp, err := c.request(ctx, &Command{}).
		SetPathParams(map[string]string{
			"app":     app.String(),
			"guild":   guild.String(),
			"command": command.String(),
		}).
		Get("/applications/{app}/guilds/{guild}/commands/{command}")
	if err := c.do(resp, err, "get guild command"); err != nil {
		return nil, err
	}
	return resp.Result().(*Command), nil
}

func (c *Client) CreateGlobalCommand(ctx context.Context, app Snowflake, data CommandData) (*Command, error) {
	resp, err := c.request(ctx, &Command{}).
		SetPathParam("app", app.String()).
		SetBody(data).
		Post("/applications/{app}/commands")
	if err := c.do(resp, err, "create global command "+data.Name); err != nil {
		return nil, err
	}
	return resp.Result().(*Command), nil
}

func (c *Client) CreateGuildCommand(ctx context.Context, app, guild Snowflake, data CommandData) (*Command, error) {
	resp, err := c.request(ctx, &Command{}).
		SetPathParams(map[string]string{"app": app.String(), "guild": guild.String()}).
		SetBody(data).
		Post("/applications/{app}/guilds/{guild}/commands")
	if err := c.do(resp, err, "create guild command "+data.Name); err != nil {
		return nil, err
	}
	return resp.Result().(*Command), nil
}

func (c *Client) EditGlobalCommand(ctx context.Context, app, command Snowflake, data CommandData) (*Command, error) {
	resp, err := c.request(ctx, &Command{}).
		SetPathParams(map[string]string{"app": app.String(), "command": command.String()}).
		SetBody(data).
		Patch("/applications/{app}/commands/{command}")
	if err := c.do(resp, err, "edit global command "+data.Name); err != nil {
		return nil, err
	}
	return resp.Result().(*Command), nil
}

func (c *Client) EditGuildCommand(ctx context.Context, app, guild, command Snowflake, data CommandData) (*Command, error) {
	resp, err := c.request(ctx, &Command{}).
		SetPathParams(map[string]string{
			"app":     app.String(),
			"guild":   guild.String(),
			"command": command.String(),
		}).
		SetBody(data).
		Patch("/applications/{app}/guilds/{guild}/commands/{command}")
	if err := c.do(resp, err, "edit guild command "+data.Name); err != nil {
		return nil, err
	}
	return resp.Result().(*Command), nil
}
