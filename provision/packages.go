package provision

import (
	"fmt"

	"github.com/tinwind/deckprov/internal"
	"github.com/tinwind/deckprov/packages"
)

func (p Provisioner) installPackages() error {
	installer := packages.Installer{Pkg: packages.Apt{}}

	if err := installer.Refresh(); err != nil {
		return fmt.Errorf("error refreshing package index: %w", err)
	}

	desired := internal.SetFromList(p.Config.Packages)
	if err := installer.Install(desired); err != nil {
		return fmt.Errorf("error installing packages: %w", err)
	}

	return nil
}
