// Package ping provides the /ping health command.
package ping

import (
	"github.com/specialistvlad/porygon/internal/command"
	"github.com/specialistvlad/porygon/internal/controller"
	"github.com/specialistvlad/porygon/internal/setup"
)

// Command is the definition uploaded for /ping.
var Command = command.Command{
	Name:        "ping",
	Description: "Check whether the bot is alive.",
}

// Installer installs the ping feature.
func Installer(s *setup.Setup) *setup.Setup {
	return s.AddCommand(controller.Global, Command)
}
