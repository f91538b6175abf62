package packages

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	marecmd "github.com/femnad/mare/cmd"

	"github.com/tinwind/deckprov/common"
	"github.com/tinwind/deckprov/internal"
)

type PkgManager interface {
	ListPkgsHeader() string
	PkgExec() string
	PkgEnv() map[string]string
	PkgNameSeparator() string
}

func maybeRunWithSudo(env map[string]string, cmds ...string) error {
	isRoot, err := internal.IsUserRoot()
	if err != nil {
		return err
	}

	input := marecmd.Input{Command: strings.Join(cmds, " "), Env: env, Sudo: !isRoot}
	out, err := marecmd.RunFmtErr(input)
	if err != nil {
		return internal.CmdError{Code: out.Code, Err: err}
	}

	return nil
}

type Installer struct {
	Pkg PkgManager
}

func setToSlice[T comparable](set mapset.Set[T]) []T {
	var items []T
	set.Each(func(t T) bool {
		items = append(items, t)
		return false
	})

	return items
}

// Refresh updates the package index before any install attempt.
func (i Installer) Refresh() error {
	internal.Log.Info("Refreshing package index")
	return maybeRunWithSudo(i.Pkg.PkgEnv(), i.Pkg.PkgExec(), "update")
}

func (i Installer) Install(desired mapset.Set[string]) error {
	available, err := i.installedPackages()
	if err != nil {
		return err
	}

	missing := desired.Difference(available)
	missingPkgs := setToSlice(missing)

	if len(missingPkgs) == 0 {
		internal.Log.Debug("All desired packages are installed")
		return nil
	}

	sort.Strings(missingPkgs)
	internal.Log.Infof("Packages to install: %s", strings.Join(missingPkgs, " "))

	installCmd := []string{i.Pkg.PkgExec(), "install", "-y"}
	installCmd = append(installCmd, missingPkgs...)
	return maybeRunWithSudo(i.Pkg.PkgEnv(), installCmd...)
}

func (i Installer) installedPackages() (mapset.Set[string], error) {
	listCmd := fmt.Sprintf("%s list --installed", i.Pkg.PkgExec())
	out, err := marecmd.RunFmtErr(marecmd.Input{Command: listCmd})
	if err != nil {
		return nil, err
	}

	return i.parseInstalled(out.Stdout), nil
}

func (i Installer) parseInstalled(output string) mapset.Set[string] {
	installedPackages := mapset.NewSet[string]()
	for _, line := range strings.Split(output, "\n") {
		if line == "" || line == i.Pkg.ListPkgsHeader() {
			continue
		}

		pkgAndVers := strings.Split(line, " ")[0]
		packageName, _ := common.SplitLast(pkgAndVers, i.Pkg.PkgNameSeparator())
		installedPackages.Add(packageName)
	}

	return installedPackages
}
