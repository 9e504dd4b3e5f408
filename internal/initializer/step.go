package initializer

import (
	"context"
	"fmt"

	"github.com/specialistvlad/porygon/internal/controller"
	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/step"
)

// Step runs every initializer registered under one controller.
type Step struct {
	controller controller.Controller
	order      []string
	inits      map[string]Init
}

var _ step.Step[controller.Controller] = (*Step)(nil)

// NewStep creates the empty init step for c.
func NewStep(c controller.Controller) *Step {
	return &Step{
		controller: c,
		inits:      make(map[string]Init),
	}
}

// Name implements step.Step.
func (s *Step) Name() string { return "init" }

// Len implements step.Step.
func (s *Step) Len() int { return len(s.inits) }

// Append adds init. An init with the same name is overwritten in place.
func (s *Step) Append(init Init) {
	if _, ok := s.inits[init.name]; !ok {
		s.order = append(s.order, init.name)
	}
	s.inits[init.name] = init
}

// Names lists the registered initializers in the order they will run.
func (s *Step) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Execute implements step.Step.
func (s *Step) Execute(ctx context.Context, args step.Args[controller.Controller]) error {
	logger := ctxlog.FromContext(ctx)

	guild, err := s.controller.ResolveGuild(ctx, args.Session)
	if err != nil {
		return err
	}

	initArgs := &Args{
		session:    args.Session,
		controller: s.controller,
		guild:      guild,
	}
	target := s.controller.Format(args.Session.Environment())

	for _, name := range s.order {
		logger.Debug("Running initializer.", "init", name, "target", target)
		if err := s.inits[name].Exec(ctx, initArgs); err != nil {
			return fmt.Errorf("initializer %q: %w", name, err)
		}
	}

	return nil
}
