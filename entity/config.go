package entity

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinwind/deckprov/internal"
)

//go:embed deckprov.yml
var defaultManifest []byte

type Config struct {
	BaseURL    string       `yaml:"base_url"`
	Packages   []string     `yaml:"package"`
	Scripts    []RemoteFile `yaml:"script"`
	ScriptDir  string       `yaml:"script_dir"`
	Units      []RemoteFile `yaml:"unit"`
	UnitDir    string       `yaml:"unit_dir"`
	Desktop    []RemoteFile `yaml:"desktop"`
	Widget     WidgetBundle `yaml:"widget"`
	Services   []string     `yaml:"service"`
	Overlay    RemoteFile   `yaml:"overlay"`
	BootConfig BootConfig   `yaml:"boot_config"`
}

// UnmarshalConfig parses the given manifest file, falling back to the
// built-in manifest when no file is given.
func UnmarshalConfig(filename string) (Config, error) {
	var config Config

	content := defaultManifest
	if filename != "" {
		var err error
		content, err = os.ReadFile(internal.ExpandUser(filename))
		if err != nil {
			return config, err
		}
	}

	err := yaml.Unmarshal(content, &config)
	return config, err
}
