package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("CARDEDIT_CONFIG_HOME", "/tmp/cardedit-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/cardedit-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/cardedit-config")
	}

	t.Setenv("CARDEDIT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/cardedit" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/cardedit")
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("CARDEDIT_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	def := Default()
	if cfg.Editor != def.Editor {
		t.Fatalf("Editor = %+v, want %+v", cfg.Editor, def.Editor)
	}
	if cfg.Theme != def.Theme {
		t.Fatalf("Theme = %+v, want %+v", cfg.Theme, def.Theme)
	}
	if cfg.Keymap["ctrl+a"] != "select_all" {
		t.Fatalf("keymap ctrl+a = %q, want %q", cfg.Keymap["ctrl+a"], "select_all")
	}
}

func TestLoadWithThemeAndOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CARDEDIT_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "theme", "test.toml"), `
foreground = "#111111"
background = "#222222"
cursor-background = "#333333"
`)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
max-width = 80
margin = 0
data-dir = "/tmp/cards"

[theme]
theme = "test"
selection-background = "#123456"
background = "#444444"

[keymap]
"ctrl+e" = "move_end"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.MaxWidth != 80 {
		t.Fatalf("MaxWidth = %d, want 80", cfg.Editor.MaxWidth)
	}
	if cfg.Editor.Margin != 0 {
		t.Fatalf("Margin = %d, want 0", cfg.Editor.Margin)
	}
	if cfg.Editor.DataDir != "/tmp/cards" {
		t.Fatalf("DataDir = %q, want %q", cfg.Editor.DataDir, "/tmp/cards")
	}
	if cfg.Theme.Foreground != "#111111" {
		t.Fatalf("Foreground = %q, want %q", cfg.Theme.Foreground, "#111111")
	}
	if cfg.Theme.Background != "#444444" {
		t.Fatalf("Background = %q, want %q", cfg.Theme.Background, "#444444")
	}
	if cfg.Theme.CursorBackground != "#333333" {
		t.Fatalf("CursorBackground = %q, want %q", cfg.Theme.CursorBackground, "#333333")
	}
	if cfg.Theme.SelectionBackground != "#123456" {
		t.Fatalf("SelectionBackground = %q, want %q", cfg.Theme.SelectionBackground, "#123456")
	}
	if cfg.Keymap["ctrl+e"] != "move_end" {
		t.Fatalf("keymap ctrl+e = %q, want %q", cfg.Keymap["ctrl+e"], "move_end")
	}
	if cfg.Keymap["left"] != "move_back" {
		t.Fatalf("keymap left = %q, want %q", cfg.Keymap["left"], "move_back")
	}
}

func TestLoadKeepsMarginWhenUnset(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CARDEDIT_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
max-width = 40
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.Margin != 2 {
		t.Fatalf("Margin = %d, want 2", cfg.Editor.Margin)
	}
}

func TestLoadThemeWrapped(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CARDEDIT_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "theme", "wrapped.toml"), `
[theme]
foreground = "#aaaaaa"
background = "#bbbbbb"
`)

	theme, err := LoadTheme("wrapped")
	if err != nil {
		t.Fatalf("LoadTheme error: %v", err)
	}
	if theme.Foreground != "#aaaaaa" {
		t.Fatalf("Foreground = %q, want %q", theme.Foreground, "#aaaaaa")
	}
	if theme.Background != "#bbbbbb" {
		t.Fatalf("Background = %q, want %q", theme.Background, "#bbbbbb")
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("CARDEDIT_DATA_HOME", "/tmp/cardedit-data")
	cfg := Default()
	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatalf("DataDir error: %v", err)
	}
	if dir != "/tmp/cardedit-data" {
		t.Fatalf("DataDir = %q, want %q", dir, "/tmp/cardedit-data")
	}

	t.Setenv("CARDEDIT_DATA_HOME", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err = cfg.DataDir()
	if err != nil {
		t.Fatalf("DataDir error: %v", err)
	}
	if dir != "/tmp/xdg-data/cardedit" {
		t.Fatalf("DataDir = %q, want %q", dir, "/tmp/xdg-data/cardedit")
	}

	cfg.Editor.DataDir = "/srv/cards"
	dir, err = cfg.DataDir()
	if err != nil {
		t.Fatalf("DataDir error: %v", err)
	}
	if dir != "/srv/cards" {
		t.Fatalf("DataDir = %q, want %q", dir, "/srv/cards")
	}
}
