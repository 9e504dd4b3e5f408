// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/discord"
	"github.com/specialistvlad/porygon/internal/events"
)

// ErrStagingUnreachable means the staging guild could not be fetched while
// running in staging, where it must always be available.
var ErrStagingUnreachable = errors.New("staging guild is not reachable")

// IsConnected reports whether the bot can reach the target. Global is always
// connected; a guild is connected iff its metadata can be fetched. In staging
// every target is assumed connected.
//
// Lookup failures mean "not connected"; they are never returned as errors.
func (c Controller) IsConnected(ctx context.Context, sess *discord.Session) bool {
	if sess.Environment() == discord.Staging {
		return true
	}
	if c.IsGlobal() {
		return true
	}
	return c.TryGetGuild(ctx, sess) != nil
}

// TryGetGuild returns the target's guild metadata, or nil for Global and for
// guilds that cannot be fetched. In staging it returns the staging guild.
func (c Controller) TryGetGuild(ctx context.Context, sess *discord.Session) *discord.Guild {
	logger := ctxlog.FromContext(ctx)

	id, ok := c.guildID(sess.Environment())
	if !ok {
		return nil
	}

	guild, err := sess.Guilds().GetGuild(ctx, id)
	if err != nil {
		logger.Debug("Guild lookup failed.", "target", c.Format(sess.Environment()), "guild_id", id, "error", err)
		return nil
	}
	return guild
}

// ResolveGuild is TryGetGuild for building execution contexts. It only fails
// in staging, where the staging guild must be reachable.
func (c Controller) ResolveGuild(ctx context.Context, sess *discord.Session) (*discord.Guild, error) {
	guild := c.TryGetGuild(ctx, sess)
	if guild == nil && sess.Environment() == discord.Staging {
		return nil, fmt.Errorf("%w: %s (%d)", ErrStagingUnreachable, staging.name, staging.id)
	}
	return guild, nil
}

// MatchesGuild reports whether an event from guildID belongs to the target.
// Global matches everything; a guild only matches its own id, and zero (no
// guild) matches no guild. In staging everything matches.
func (c Controller) MatchesGuild(env discord.Environment, guildID uint64) bool {
	if env == discord.Staging || c.IsGlobal() {
		return true
	}
	return guildID != 0 && discord.Snowflake(guildID) == c.nick.ID()
}

// Matcher binds MatchesGuild for use with the event registry.
func (c Controller) Matcher(env discord.Environment) events.Matcher {
	return func(guildID uint64) bool {
		return c.MatchesGuild(env, guildID)
	}
}

// Uploader returns the command upload interface for the target. In staging
// all uploads go to the staging guild.
func (c Controller) Uploader(env discord.Environment) Uploader {
	if id, ok := c.guildID(env); ok {
		return Uploader{guild: id}
	}
	return Uploader{}
}

// guildID returns the guild id the target resolves to in env.
func (c Controller) guildID(env discord.Environment) (discord.Snowflake, bool) {
	if env == discord.Staging {
		return staging.id, true
	}
	if c.IsGlobal() {
		return 0, false
	}
	return c.nick.ID(), true
}
