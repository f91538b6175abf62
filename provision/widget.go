package provision

import (
	"fmt"
	"os"
	"path"

	"github.com/tinwind/deckprov/common"
	"github.com/tinwind/deckprov/entity"
	"github.com/tinwind/deckprov/internal"
)

const widgetPerms = 0o755

func installWidget(widget entity.WidgetBundle, scriptDir string) error {
	if err := internal.EnsureDirExists(widget.Dir); err != nil {
		return fmt.Errorf("error creating directory %s: %v", widget.Dir, err)
	}

	src := path.Join(scriptDir, widget.Source)
	dst := path.Join(widget.Dir, widget.InstalledName())

	internal.Log.Infof("Copying %s to %s", src, dst)
	if err := common.CopyFile(src, dst); err != nil {
		return err
	}

	// The copy loses the .py suffix, so the installed name is the one to
	// mark executable.
	if err := os.Chmod(dst, widgetPerms); err != nil {
		return fmt.Errorf("error marking %s executable: %v", dst, err)
	}

	return nil
}

func (p Provisioner) installWidgetBundle() error {
	return installWidget(p.Config.Widget, p.Config.ScriptDir)
}
