package internal

import (
	"errors"
	"fmt"
	"testing"
)

func TestCmdErrorCodeSurvivesWrapping(t *testing.T) {
	cmdErr := CmdError{Code: 100, Err: errors.New("exit status 100")}
	wrapped := fmt.Errorf("error refreshing package index: %w", cmdErr)

	var unwrapped CmdError
	if !errors.As(wrapped, &unwrapped) {
		t.Fatalf("errors.As() found no CmdError in %v", wrapped)
	}
	if unwrapped.Code != 100 {
		t.Errorf("Code = %d, want 100", unwrapped.Code)
	}
	if wrapped.Error() != "error refreshing package index: exit status 100" {
		t.Errorf("unexpected wrapped message: %s", wrapped.Error())
	}
}
