package provision

import (
	"fmt"

	"github.com/tinwind/deckprov/internal"
	"github.com/tinwind/deckprov/remote"
)

func (p Provisioner) downloadUnits() error {
	for _, unit := range p.Config.Units {
		url := unit.URL(p.Config.BaseURL)
		target := unit.Target(p.Config.UnitDir)

		internal.Log.Infof("Downloading %s to %s", url, target)
		if err := remote.Download(url, target); err != nil {
			return fmt.Errorf("error downloading %s: %v", url, err)
		}
	}

	return nil
}
