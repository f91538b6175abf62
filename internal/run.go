package internal

import (
	"strings"

	marecmd "github.com/femnad/mare/cmd"
)

func maybeWarnPasswordRequired(cmdStr string) {
	out, _ := marecmd.Run(marecmd.Input{Command: "sudo -Nnv"})
	if out.Code == 0 {
		return
	}

	cmdHead := strings.Split(cmdStr, " ")[0]
	Log.Warningf("Sudo authentication required for escalating privileges to run command %s", cmdHead)
}

func MaybeRunWithSudo(cmdStr string) error {
	isRoot, err := IsUserRoot()
	if err != nil {
		return err
	}

	if !isRoot {
		maybeWarnPasswordRequired(cmdStr)
	}

	cmd := marecmd.Input{Command: cmdStr, Sudo: !isRoot}
	out, err := marecmd.RunFmtErr(cmd)
	if err != nil {
		return CmdError{Code: out.Code, Err: err}
	}

	return nil
}

// CmdError carries the failing command's exit code so the process can
// terminate with it.
type CmdError struct {
	Code int
	Err  error
}

func (c CmdError) Error() string {
	return c.Err.Error()
}

func (c CmdError) Unwrap() error {
	return c.Err
}
