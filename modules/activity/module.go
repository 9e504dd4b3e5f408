// Package activity picks the status line the bot shows.
package activity

import (
	"context"
	"math/rand/v2"

	"github.com/specialistvlad/porygon/internal/controller"
	"github.com/specialistvlad/porygon/internal/ctxlog"
	"github.com/specialistvlad/porygon/internal/events"
	"github.com/specialistvlad/porygon/internal/initializer"
	"github.com/specialistvlad/porygon/internal/setup"
)

// Messages is every status line the bot can pick.
var Messages = []string{
	"cyberduck supreme",
	"just vibing",
	"drunk internet duck",
	"Duck Game",
	"downloading more ram",
	"plotting against dakota",
	"planning a coup",
	"high on potenuse",
	"hacking the mainframe",
	"deleting the database",
	"beep boop. error",
	"how are you?",
	"taking a nap",
	"sleeping in class",
	"in a duck pond",
	"ducking around",
	"calculating...",
	"using math for evil",
	"writing more statuses",
	"press ctrl-c to quit",
	"dumb",
	"committing crimes",
	"being gay, doing crimes",
	"MCR - Black Parade",
	"quacking in the matrix",
	"porygone to the store",
	"stanning inky",
	"beating up geese",
	"eatin quackers",
	"doing hot bot shit",
	"playing with firequackers",
	"hey got any grapes",
	"remaking the remakes",
	"duck duck goose",
	"daffy-duck",
	"watching an*me",
	"release the quacken!",
	"hugging minecraft bee",
	"doing communism",
	"when i was a young duck",
	"no thots head empty",
}

// Pick is the message source. Tests replace it.
var Pick = func() string {
	return Messages[rand.IntN(len(Messages))]
}

// Init chooses an activity and announces it once the gateway is ready.
var Init = initializer.New("activity", func(ctx context.Context, args *initializer.Args) error {
	message := Pick()
	ctxlog.FromContext(ctx).Info("Activity chosen.", "activity", message)

	args.On(events.Ready, func(ctx context.Context, _ events.Event) {
		ctxlog.FromContext(ctx).Info("Setting activity.", "activity", message)
	})
	return nil
})

// Installer installs the activity feature.
func Installer(s *setup.Setup) *setup.Setup {
	return s.AddInit(controller.Global, Init)
}
