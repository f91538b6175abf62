package provision

import (
	"fmt"

	"github.com/Songmu/prompter"

	"github.com/tinwind/deckprov/internal"
)

func (p Provisioner) printSummary() {
	fmt.Println("\nInstalled components:")
	for _, script := range p.Config.Scripts {
		fmt.Printf("  %s\n", script.Target(p.Config.ScriptDir))
	}
	for _, unit := range p.Config.Units {
		fmt.Printf("  %s\n", unit.Target(p.Config.UnitDir))
	}
	fmt.Printf("  %s\n", p.Config.Overlay.Target(""))
	fmt.Println("\nA reboot is required to load the device tree overlay.")
}

func (p Provisioner) maybeReboot() error {
	p.printSummary()

	reboot := p.AssumeYes || prompter.YN("Reboot now?", false)
	if !reboot {
		fmt.Println("Reboot manually later to finish the installation.")
		return nil
	}

	internal.Log.Notice("Rebooting")
	return internal.MaybeRunWithSudo("reboot")
}
