package internal

import (
	"fmt"
	"os"
)

func EnsureDirExists(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return nil
	}

	if !os.IsNotExist(err) {
		return err
	}

	err = os.MkdirAll(dir, 0o755)
	if err == nil {
		return nil
	} else if !os.IsPermission(err) {
		return err
	}

	return MaybeRunWithSudo(fmt.Sprintf("mkdir -p %s", dir))
}
