package provision

import (
	"fmt"

	"github.com/tinwind/deckprov/internal"
	"github.com/tinwind/deckprov/remote"
)

func (p Provisioner) installOverlay() error {
	overlay := p.Config.Overlay
	url := overlay.URL(p.Config.BaseURL)
	target := overlay.Target("")

	internal.Log.Infof("Downloading %s to %s", url, target)
	if err := remote.Download(url, target); err != nil {
		return fmt.Errorf("error downloading %s: %v", url, err)
	}

	return nil
}
