// Package provision applies the battery stack install steps in their fixed
// order. Every step is a side-effecting external call; the filesystem and
// the service manager are the only state, so a failing step aborts the run
// and leaves prior effects in place.
package provision

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/tinwind/deckprov/entity"
)

type Provisioner struct {
	Config    entity.Config
	AssumeYes bool
}

type step struct {
	desc string
	fn   func() error
}

func (p Provisioner) Apply() error {
	steps := []step{
		{"Installing packages", p.installPackages},
		{"Downloading battery scripts", p.downloadScripts},
		{"Downloading systemd units", p.downloadUnits},
		{"Marking scripts executable", p.markScriptsExecutable},
		{"Installing widget bundle", p.installWidgetBundle},
		{"Installing desktop entries", p.installDesktopEntries},
		{"Activating services", p.activateServices},
		{"Installing device tree overlay", p.installOverlay},
		{"Updating boot config", p.updateBootConfig},
	}

	for _, s := range steps {
		fmt.Printf("\n %s %s\n", color.YellowString("▶"), s.desc)
		if err := s.fn(); err != nil {
			return err
		}
	}

	fmt.Printf("\n %s Installation complete\n", color.GreenString("✓"))
	return p.maybeReboot()
}
