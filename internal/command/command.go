// Package command implements the "command" setup step, which makes sure every
// application command a feature registers exists on its target with the
// registered definition.
package command

import (
	"context"
	"fmt"

	"github.com/specialistvlad/porygon/internal/controller"
	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/discord"
	"github.com/specialistvlad/porygon/internal/step"
)

// Command is an application command definition. Name identifies it within a
// target.
type Command struct {
	Name        string
	Description string
	Type        discord.CommandType
	Options     []discord.CommandOption
}

// Data converts the definition to its upload payload. Type defaults to a
// slash command.
func (c Command) Data() discord.CommandData {
	typ := c.Type
	if typ == 0 {
		typ = discord.ChatInput
	}
	return discord.CommandData{
		Name:        c.Name,
		Description: c.Description,
		Type:        typ,
		Options:     c.Options,
	}
}

// Step uploads every command registered under one controller.
type Step struct {
	controller controller.Controller
	order      []string
	commands   map[string]Command
}

var _ step.Step[controller.Controller] = (*Step)(nil)

// NewStep creates the empty command step for c.
func NewStep(c controller.Controller) *Step {
	return &Step{
		controller: c,
		commands:   make(map[string]Command),
	}
}

// Name implements step.Step.
func (s *Step) Name() string { return "command" }

// Len implements step.Step.
func (s *Step) Len() int { return len(s.commands) }

// Append adds cmd, replacing any earlier command with the same name.
func (s *Step) Append(cmd Command) {
	if cmd.Name == "" {
		panic("command: empty name")
	}
	if _, ok := s.commands[cmd.Name]; !ok {
		s.order = append(s.order, cmd.Name)
	}
	s.commands[cmd.Name] = cmd
}

// Names lists the registered commands in upload order.
func (s *Step) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Execute implements step.Step. Commands that already exist on the target
// are edited; the rest are created. Commands present on the target but not
// registered here are left alone.
func (s *Step) Execute(ctx context.Context, args step.Args[controller.Controller]) error {
	logger := ctxlog.FromContext(ctx)
	sess := args.Session
	uploader := s.controller.Uploader(sess.Environment())

	existing, err := uploader.List(ctx, sess.API(), sess.ApplicationID())
	if err != nil {
		return fmt.Errorf("listing commands: %w", err)
	}
	ids := make(map[string]discord.Snowflake, len(existing))
	for _, c := range existing {
		ids[c.Name] = c.ID
	}

	for _, name := range s.order {
		var id *discord.Snowflake
		if found, ok := ids[name]; ok {
			id = &found
		}

		uploaded, err := uploader.Upload(ctx, sess.API(), sess.ApplicationID(), s.commands[name].Data(), id)
		if err != nil {
			return fmt.Errorf("uploading command %q: %w", name, err)
		}
		logger.Debug("Command uploaded.", "command", name, "target", s.controller.Format(sess.Environment()), "id", uploaded.ID, "edited", id != nil)
	}

	return nil
}
