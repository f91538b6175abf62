package provision

import (
	"fmt"
	"os"
	"strings"

	"github.com/tinwind/deckprov/common"
	"github.com/tinwind/deckprov/entity"
	"github.com/tinwind/deckprov/internal"
)

// backupAndAppend copies the boot config aside, then appends the hardware
// configuration block. The append carries no marker check, so running the
// installer again duplicates the block; the backup taken at the start of
// each run is the way back.
func backupAndAppend(bootConfig entity.BootConfig) error {
	backup := bootConfig.BackupPath()
	internal.Log.Infof("Backing up %s to %s", bootConfig.Path, backup)
	if err := common.CopyFile(bootConfig.Path, backup); err != nil {
		return fmt.Errorf("error backing up %s: %v", bootConfig.Path, err)
	}

	fd, err := os.OpenFile(bootConfig.Path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening %s: %v", bootConfig.Path, err)
	}
	defer fd.Close()

	block := bootConfig.Block
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}

	internal.Log.Infof("Appending hardware configuration to %s", bootConfig.Path)
	if _, err = fd.WriteString("\n" + block); err != nil {
		return fmt.Errorf("error appending to %s: %v", bootConfig.Path, err)
	}

	return nil
}

func (p Provisioner) updateBootConfig() error {
	return backupAndAppend(p.Config.BootConfig)
}
