// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package setup is the builder that collects setup operations from feature
// installers and runs them once at startup.
package setup

import (
	"context"

	"github.com/google/uuid"
	"github.com/specialistvlad/porygon/internal/command"
	"github.com/specialistvlad/porygon/internal/controller"
	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/discord"
	"github.com/specialistvlad/porygon/internal/initializer"
	"github.com/specialistvlad/porygon/internal/step"
)

// Installer adds a feature's setup operations to the builder and returns it,
// so installers compose with AddFrom.
type Installer func(*Setup) *Setup

// Setup is the arena of registered setup steps, one collection per step
// kind. It is built single-threaded through chained calls and consumed by
// Setup; a consumed builder panics on any further use.
type Setup struct {
	commands *step.Keyed[controller.Controller, *command.Step]
	inits    *step.Keyed[controller.Controller, *initializer.Step]
	consumed bool
}

// New creates an empty builder.
func New() *Setup {
	return &Setup{
		commands: step.NewKeyed(command.NewStep),
		inits:    step.NewKeyed(initializer.NewStep),
	}
}

// AddFrom hands the builder to installer. This is how the application
// installs whole features at once.
func (s *Setup) AddFrom(installer Installer) *Setup {
	s.mustBeOpen()
	return installer(s)
}

// AddInit registers init under c.
func (s *Setup) AddInit(c controller.Controller, init initializer.Init) *Setup {
	s.mustBeOpen()
	s.inits.Factory(c).Append(init)
	return s
}

// AddCommand registers cmd under c.
func (s *Setup) AddCommand(c controller.Controller, cmd command.Command) *Setup {
	s.mustBeOpen()
	s.commands.Factory(c).Append(cmd)
	return s
}

// Setup runs every registered step and consumes the builder. Commands are
// uploaded before initializers run. The first step that fails aborts the
// whole run and its error is returned.
func (s *Setup) Setup(ctx context.Context, sess *discord.Session) error {
	s.mustBeOpen()
	s.consumed = true

	ctx, logger := ctxlog.With(ctx, "setup_run", uuid.NewString())
	logger.Info("Starting setup.", "environment", sess.Environment(), "commands", s.commands.Len(), "inits", s.inits.Len())

	if err := step.Run(ctx, s.commands.Drain(), sess); err != nil {
		return err
	}
	if err := step.Run(ctx, s.inits.Drain(), sess); err != nil {
		return err
	}

	logger.Info("Setup complete.")
	return nil
}

func (s *Setup) mustBeOpen() {
	if s.consumed {
		panic("setup: builder used after Setup")
	}
}
