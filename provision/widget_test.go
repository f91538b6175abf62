package provision

import (
	"os"
	"path"
	"testing"

	"github.com/tinwind/deckprov/entity"
)

func TestInstallWidget(t *testing.T) {
	scriptDir := t.TempDir()
	widgetScript := "#!/usr/bin/env python3\nprint('widget')\n"
	if err := os.WriteFile(path.Join(scriptDir, "battery-widget.py"), []byte(widgetScript), 0o644); err != nil {
		t.Fatal(err)
	}

	widget := entity.WidgetBundle{
		Dir:    path.Join(t.TempDir(), "battery-widget"),
		Source: "battery-widget.py",
	}

	if err := installWidget(widget, scriptDir); err != nil {
		t.Fatalf("installWidget() error = %v", err)
	}

	installed := path.Join(widget.Dir, "battery-widget")
	info, err := os.Stat(installed)
	if err != nil {
		t.Fatalf("installed widget missing: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("installed widget not executable, mode %v", info.Mode())
	}

	content, err := os.ReadFile(installed)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != widgetScript {
		t.Errorf("installed widget content = %q, want %q", content, widgetScript)
	}

	// Only the renamed copy exists in the bundle directory.
	if _, err = os.Stat(path.Join(widget.Dir, "battery-widget.py")); err == nil {
		t.Error("bundle directory contains the suffixed filename")
	}
}

func TestInstallWidgetMissingSource(t *testing.T) {
	widget := entity.WidgetBundle{
		Dir:    path.Join(t.TempDir(), "battery-widget"),
		Source: "battery-widget.py",
	}

	if err := installWidget(widget, t.TempDir()); err == nil {
		t.Error("installWidget() expected an error for missing source script")
	}
}
