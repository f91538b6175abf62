package internal

import (
	"path"
	"strings"
)

func FilenameWithoutSuffix(filename, suffix string) string {
	return strings.TrimSuffix(path.Base(filename), suffix)
}
