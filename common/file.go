package common

import (
	"fmt"
	"io"
	"os"
)

const defaultFileMode = 0o644

// CopyFile copies src to dst, truncating dst if it already exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("error opening %s: %v", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(defaultFileMode))
	if err != nil {
		return fmt.Errorf("error opening %s: %v", dst, err)
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	if err != nil {
		return fmt.Errorf("error copying %s to %s: %v", src, dst, err)
	}

	return out.Sync()
}
