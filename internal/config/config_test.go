package config

import (
	"strings"
	"testing"

	"github.com/atomicstack/infotainment-menu/internal/app"
	"github.com/google/go-cmp/cmp"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{Mode: app.ModeAuto, Theme: "classic"}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("app config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"INFOTAINMENT_MENU_MODE=tui",
		"INFOTAINMENT_MENU_THEME=eco",
		"INFOTAINMENT_MENU_WIDTH=50",
		"INFOTAINMENT_MENU_TRACE=true",
		"INFOTAINMENT_MENU_LOG_FILE=/tmp/env.log",
		"MALFORMED",
	}
	args := []string{"-mode", "Console", "-start", "Media", "-height", "10", "-footer"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{
		Mode:       app.ModeConsole,
		Theme:      "eco",
		StartPath:  "Media",
		Width:      50,
		Height:     10,
		ShowFooter: true,
	}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("app config mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("expected logging from environment, got %#v", cfg.Logging)
	}
	if cfg.Flags["start"] != "Media" || cfg.Flags["height"] != "10" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
	if diff := cmp.Diff(args, cfg.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadArgsIgnoresBadEnvNumbers(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"INFOTAINMENT_MENU_WIDTH=wide", "INFOTAINMENT_MENU_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks, got %#v", cfg.App)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	tests := map[string][]string{
		"negative width":  {"-width", "-1"},
		"negative height": {"-height", "-3"},
		"unknown flag":    {"-colour", "red"},
		"positional":      {"extra"},
	}
	for name, args := range tests {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs([]string{"-mode", "gui"}, nil)
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Fatalf("expected unknown mode error, got %v", err)
	}
	cfg, _ = LoadArgs([]string{"-theme", "neon"}, nil)
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "unknown theme") {
		t.Fatalf("expected unknown theme error, got %v", err)
	}
	cfg, _ = LoadArgs([]string{"-theme", "Sport"}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected Sport to validate, got %v", err)
	}
}
