package provision

import (
	"fmt"

	marecmd "github.com/femnad/mare/cmd"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tinwind/deckprov/internal"
)

var (
	actions = map[string]string{
		"enable": "is-enabled",
		"start":  "is-active",
	}
	gerunds = map[string]string{
		"enable": "enabling",
		"start":  "starting",
	}
)

func systemctlCmd(verb, unit string) string {
	return fmt.Sprintf("systemctl %s %s", verb, unit)
}

func ensureUnit(unit, action string) error {
	checkVerb, ok := actions[action]
	if !ok {
		return fmt.Errorf("unknown action: %s", action)
	}

	out, _ := marecmd.Run(marecmd.Input{Command: systemctlCmd(checkVerb, unit)})
	if out.Code == 0 {
		internal.Log.Debugf("Unit %s passes %s check", unit, checkVerb)
		return nil
	}

	caser := cases.Title(language.Und)
	verb := caser.String(gerunds[action])
	internal.Log.Infof("%s unit %s", verb, unit)

	if err := internal.MaybeRunWithSudo(systemctlCmd(action, unit)); err != nil {
		return fmt.Errorf("error %s unit %s: %w", gerunds[action], unit, err)
	}

	return nil
}

func (p Provisioner) activateServices() error {
	if err := internal.MaybeRunWithSudo("systemctl daemon-reload"); err != nil {
		return fmt.Errorf("error reloading unit files: %w", err)
	}

	for _, unit := range p.Config.Services {
		for _, action := range []string{"enable", "start"} {
			if err := ensureUnit(unit, action); err != nil {
				return err
			}
		}
	}

	return nil
}
