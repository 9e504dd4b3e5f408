package controller

import (
	"context"

	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/discord"
	"github.com/specialistvlad/porygon/internal/step"
)

var _ = step.NameIn[Controller]

// TrySkip skips steps for targets the bot cannot currently reach. That is an
// expected condition (the bot has not joined, or lost access), not an error.
func (c Controller) TrySkip(ctx context.Context, sess *discord.Session) step.Decision {
	if c.IsConnected(ctx, sess) {
		return step.Proceed
	}

	ctxlog.FromContext(ctx).Debug("Not connected to target, skipping.", "target", c.Format(sess.Environment()))
	return step.Skip
}

// Suffix implements step.Scope.
func (c Controller) Suffix() string {
	return ":" + c.String()
}
