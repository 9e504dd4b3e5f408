// Package initializer implements the "init" setup step: named functions that
// run at the end of setup, once per target the bot can reach. Most
// initializers attach event handlers.
package initializer

import (
	"context"
	"fmt"

	"github.com/specialistvlad/porygon/internal/controller"
	"github.com/specialistvlad/porygon/internal/discord"
	"github.com/specialistvlad/porygon/internal/events"
)

// Func is the body of an initializer.
type Func func(ctx context.Context, args *Args) error

// Init is a named initializer. Build one with New.
type Init struct {
	name string
	exec Func
}

// New registers fn under name. Names must be unique within a target; a later
// init with the same name replaces the earlier one.
func New(name string, fn Func) Init {
	if name == "" {
		panic("initializer: empty name")
	}
	if fn == nil {
		panic(fmt.Sprintf("initializer: nil function for %q", name))
	}
	return Init{name: name, exec: fn}
}

// Name returns the initializer's name.
func (i Init) Name() string { return i.name }

// Exec runs the initializer.
func (i Init) Exec(ctx context.Context, args *Args) error {
	return i.exec(ctx, args)
}

// Args is what a running initializer gets to work with.
type Args struct {
	session    *discord.Session
	controller controller.Controller
	guild      *discord.Guild
}

// Session returns the shared session handle.
func (a *Args) Session() *discord.Session { return a.session }

// Controller returns the target the initializer was registered under.
func (a *Args) Controller() controller.Controller { return a.controller }

// Guild returns the target's guild metadata, or nil for Global and for
// guilds that could not be fetched.
func (a *Args) Guild() *discord.Guild { return a.guild }

// On registers handler for events of kind that belong to the initializer's
// target.
func (a *Args) On(kind events.Kind, handler events.Handler) {
	a.session.Events().Add(kind, a.controller.Matcher(a.session.Environment()), handler)
}
