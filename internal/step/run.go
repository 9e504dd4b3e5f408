// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package step

import (
	"context"
	"fmt"

	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/discord"
)

// Run executes the drained pairs of one step kind strictly in order. For each
// pair the scope's skip check runs first; skipped pairs are logged and left
// out. The first execution error aborts the run and is returned, so pairs
// after it are never executed.
func Run[K Scope, S Step[K]](ctx context.Context, pairs []Pair[K, S], sess *discord.Session) error {
	logger := ctxlog.FromContext(ctx)

	for i, pair := range pairs {
		name := NameIn(pair.Step, pair.Scope)
		stepCtx, stepLogger := ctxlog.With(ctx, "step", name)

		if decision := pair.Scope.TrySkip(stepCtx, sess); decision.ShouldSkip() {
			stepLogger.Info("Setup step skipped.", "operands", pair.Step.Len())
			continue
		}

		stepLogger.Debug("Executing setup step.", "operands", pair.Step.Len(), "index", i, "of", len(pairs))
		args := Args[K]{Session: sess, Scope: pair.Scope}
		if err := pair.Step.Execute(stepCtx, args); err != nil {
			logger.Error("Setup step failed.", "step", name, "error", err, "not_run", len(pairs)-i-1)
			return fmt.Errorf("setup step %s: %w", name, err)
		}

		stepLogger.Info("Setup step complete.")
	}

	return nil
}
