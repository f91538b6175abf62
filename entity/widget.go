package entity

import (
	"github.com/tinwind/deckprov/internal"
)

const sourceSuffix = ".py"

// WidgetBundle describes the tray application install: one script copied
// out of the script directory into its own bundle directory, losing the
// interpreter suffix on the way.
type WidgetBundle struct {
	Dir    string `yaml:"dir"`
	Source string `yaml:"source"`
	Target string `yaml:"target,omitempty"`
}

func (w WidgetBundle) InstalledName() string {
	if w.Target != "" {
		return w.Target
	}

	return internal.FilenameWithoutSuffix(w.Source, sourceSuffix)
}
