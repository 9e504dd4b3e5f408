package app

import (
	"github.com/specialistvlad/porygon/internal/setup"
	"github.com/specialistvlad/porygon/modules/activity"
	"github.com/specialistvlad/porygon/modules/ping"
)

// coreInstallers is the definitive list of features compiled into the
// porygon binary.
var coreInstallers = []setup.Installer{
	activity.Installer,
	ping.Installer,
}

// installer composes installers into the single entry point handed to the
// setup builder.
func installer(installers []setup.Installer) setup.Installer {
	return func(s *setup.Setup) *setup.Setup {
		for _, install := range installers {
			s = s.AddFrom(install)
		}
		return s
	}
}
