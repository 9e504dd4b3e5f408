package controller

import (
	"context"

	"github.com/specialistvlad/porygon/internal/discord"
)

// Uploader is the low-level command interface for one target: either the
// global command list or a single guild's. Obtain one from
// Controller.Uploader.
type Uploader struct {
	// guild is zero for the global command list.
	guild discord.Snowflake
}

// IsGlobal reports whether uploads go to the global command list.
func (u Uploader) IsGlobal() bool { return u.guild == 0 }

// GuildID returns the guild uploads go to, zero for global.
func (u Uploader) GuildID() discord.Snowflake { return u.guild }

// Upload creates the command, or edits it when id is non-nil.
func (u Uploader) Upload(ctx context.Context, api discord.API, app discord.Snowflake, data discord.CommandData, id *discord.Snowflake) (*discord.Command, error) {
	switch {
	case u.IsGlobal() && id != nil:
		return api.EditGlobalCommand(ctx, app, *id, data)
	case u.IsGlobal():
		return api.CreateGlobalCommand(ctx, app, data)
	case id != nil:
		return api.EditGuildCommand(ctx, app, u.guild, *id, data)
	default:
		return api.CreateGuildCommand(ctx, app, u.guild, data)
	}
}

// Get fetches a command by id.
func (u Uploader) Get(ctx context.Context, api discord.API, app, id discord.Snowflake) (*discord.Command, error) {
	if u.IsGlobal() {
		return api.GetGlobalCommand(ctx, app, id)
	}
	return api.GetGuildCommand(ctx, app, u.guild, id)
}

// List fetches every command currently registered for the target.
func (u Uploader) List(ctx context.Context, api discord.API, app discord.Snowflake) ([]discord.Command, error) {
	if u.IsGlobal() {
		return api.ListGlobalCommands(ctx, app)
	}
	return api.ListGuildCommands(ctx, app, u.guild)
}
