package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "")
	config, _, err := parseConfig([]string{"-config", path}, envOf(nil))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config != DefaultConfig() {
		t.Fatalf("config=%+v, want defaults %+v", config, DefaultConfig())
	}
}

func TestParseConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
text = "from file"
notify_delay = "250ms"
clipboard = "osc52"
mouse = false
char_limit = 100
log_level = "debug"
`)
	config, _, err := parseConfig([]string{"-config", path}, envOf(nil))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.Text != "from file" {
		t.Errorf("Text=%q", config.Text)
	}
	if config.NotifyDelay != 250*time.Millisecond {
		t.Errorf("NotifyDelay=%v", config.NotifyDelay)
	}
	if config.Clipboard != "osc52" || config.Mouse || config.CharLimit != 100 || config.LogLevel != "debug" {
		t.Errorf("config=%+v", config)
	}
	if !config.AltScreen {
		t.Errorf("keys absent from the file should keep their defaults")
	}
}

func TestParseConfig_Precedence(t *testing.T) {
	path := writeConfig(t, `
text = "from file"
clipboard = "osc52"
log_level = "warn"
`)
	env := envOf(map[string]string{
		"TINTYPE_TEXT":      "from env",
		"TINTYPE_CLIPBOARD": "memory",
	})
	args := []string{"-config", path, "-text", "from flag"}

	config, _, err := parseConfig(args, env)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.Text != "from flag" {
		t.Errorf("Text=%q, want flag value", config.Text)
	}
	if config.Clipboard != "memory" {
		t.Errorf("Clipboard=%q, want env value", config.Clipboard)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel=%q, want file value", config.LogLevel)
	}
}

func TestParseConfig_BoolFlagOverridesEnv(t *testing.T) {
	path := writeConfig(t, "")
	env := envOf(map[string]string{"TINTYPE_MOUSE": "false"})

	config, _, err := parseConfig([]string{"-config", path}, env)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.Mouse {
		t.Fatalf("env should disable mouse")
	}

	config, _, err = parseConfig([]string{"-config", path, "-mouse=true"}, env)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if !config.Mouse {
		t.Fatalf("explicit flag should win over env")
	}
}

func TestParseConfig_EnvBools(t *testing.T) {
	path := writeConfig(t, "")
	tests := []struct {
		name      string
		env       map[string]string
		mouse     bool
		altScreen bool
	}{
		{name: "Numeric true", env: map[string]string{"TINTYPE_MOUSE": "1", "TINTYPE_ALT_SCREEN": "1"}, mouse: true, altScreen: true},
		{name: "Upper case", env: map[string]string{"TINTYPE_MOUSE": "TRUE", "TINTYPE_ALT_SCREEN": "FALSE"}, mouse: true, altScreen: false},
		{name: "Zero", env: map[string]string{"TINTYPE_MOUSE": "0", "TINTYPE_ALT_SCREEN": "0"}, mouse: false, altScreen: false},
		{name: "Garbage keeps default", env: map[string]string{"TINTYPE_MOUSE": "maybe", "TINTYPE_ALT_SCREEN": "sure"}, mouse: true, altScreen: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, _, err := parseConfig([]string{"-config", path}, envOf(tt.env))
			if err != nil {
				t.Fatalf("parseConfig: %v", err)
			}
			if config.Mouse != tt.mouse || config.AltScreen != tt.altScreen {
				t.Fatalf("mouse=%v altScreen=%v, want %v %v", config.Mouse, config.AltScreen, tt.mouse, tt.altScreen)
			}
		})
	}
}

func TestParseConfig_DefaultTarget(t *testing.T) {
	path := writeConfig(t, `default_target = "background"`)
	config, _, err := parseConfig([]string{"-config", path}, envOf(nil))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.DefaultTarget != "background" {
		t.Fatalf("DefaultTarget=%q", config.DefaultTarget)
	}

	config, _, err = parseConfig([]string{"-config", path, "-target", "sideways"}, envOf(nil))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.DefaultTarget != "fg" {
		t.Fatalf("invalid target should fall back to fg, got %q", config.DefaultTarget)
	}
}

func TestParseConfig_ReportsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
text = "hi"
colour = "red"
`)
	config, warnings, err := parseConfig([]string{"-config", path}, envOf(nil))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if config.Text != "hi" {
		t.Fatalf("Text=%q", config.Text)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], `"colour"`) {
		t.Fatalf("warnings=%q, want one naming colour", warnings)
	}
}

func TestParseConfig_InvalidValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
notify_delay = "-1s"
char_limit = -5
log_level = "loud"
`)
	config, _, err := parseConfig([]string{"-config", path}, envOf(map[string]string{"TINTYPE_NOTIFY_DELAY": "soon"}))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	defaults := DefaultConfig()
	if config.NotifyDelay != defaults.NotifyDelay {
		t.Errorf("NotifyDelay=%v", config.NotifyDelay)
	}
	if config.CharLimit != defaults.CharLimit {
		t.Errorf("CharLimit=%d", config.CharLimit)
	}
	if config.LogLevel != defaults.LogLevel {
		t.Errorf("LogLevel=%q", config.LogLevel)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Missing explicit file", args: []string{"-config", filepath.Join(t.TempDir(), "nope.toml")}},
		{name: "Malformed file", args: []string{"-config", writeConfig(t, "text = ")}},
		{name: "Unknown flag", args: []string{"-bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseConfig(tt.args, envOf(nil)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
