package provision

import (
	"fmt"

	"github.com/tinwind/deckprov/internal"
	"github.com/tinwind/deckprov/remote"
)

func (p Provisioner) installDesktopEntries() error {
	for _, desktop := range p.Config.Desktop {
		url := desktop.URL(p.Config.BaseURL)
		target := desktop.Target("")

		internal.Log.Infof("Downloading %s to %s", url, target)
		if err := remote.Download(url, target); err != nil {
			return fmt.Errorf("error downloading %s: %v", url, err)
		}
	}

	return nil
}
