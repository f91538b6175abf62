package entity

import (
	"fmt"
	"path"
	"strings"
)

// RemoteFile is one entry of the download manifest: a file fetched from the
// release repo into a fixed directory, overwriting whatever is there.
type RemoteFile struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir,omitempty"`
}

func (r RemoteFile) URL(baseURL string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(baseURL, "/"), r.Name)
}

// Target returns the destination path, using defaultDir for entries which
// don't set their own directory.
func (r RemoteFile) Target(defaultDir string) string {
	dir := r.Dir
	if dir == "" {
		dir = defaultDir
	}
	return path.Join(dir, r.Name)
}
