package provision

import (
	"fmt"
	"os"

	"github.com/tinwind/deckprov/internal"
	"github.com/tinwind/deckprov/remote"
)

const scriptPerms = 0o755

func (p Provisioner) downloadScripts() error {
	for _, script := range p.Config.Scripts {
		url := script.URL(p.Config.BaseURL)
		target := script.Target(p.Config.ScriptDir)

		internal.Log.Infof("Downloading %s to %s", url, target)
		if err := remote.Download(url, target); err != nil {
			return fmt.Errorf("error downloading %s: %v", url, err)
		}
	}

	return nil
}

func (p Provisioner) markScriptsExecutable() error {
	for _, script := range p.Config.Scripts {
		target := script.Target(p.Config.ScriptDir)

		internal.Log.Debugf("Marking %s executable", target)
		if err := os.Chmod(target, scriptPerms); err != nil {
			return fmt.Errorf("error marking %s executable: %v", target, err)
		}
	}

	return nil
}
