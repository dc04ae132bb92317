package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	MaxWidth int    `toml:"max-width"`
	Margin   int    `toml:"margin"`
	DataDir  string `toml:"data-dir"`
}

type Theme struct {
	Theme               string `toml:"theme"`
	Foreground          string `toml:"foreground"`
	Background          string `toml:"background"`
	CursorForeground    string `toml:"cursor-foreground"`
	CursorBackground    string `toml:"cursor-background"`
	SelectionForeground string `toml:"selection-foreground"`
	SelectionBackground string `toml:"selection-background"`
	HeaderForeground    string `toml:"header-foreground"`
	HeaderBackground    string `toml:"header-background"`
	LabelForeground     string `toml:"label-foreground"`
	StatusForeground    string `toml:"status-foreground"`
}

type Config struct {
	Editor EditorOptions     `toml:"editor"`
	Theme  Theme             `toml:"theme"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			MaxWidth: 64,
			Margin:   2,
		},
		Theme: Theme{
			Foreground:          "#B3B1AD",
			Background:          "#0A0E14",
			CursorForeground:    "#0A0E14",
			CursorBackground:    "#E6B450",
			SelectionForeground: "#B3B1AD",
			SelectionBackground: "#27425A",
			HeaderForeground:    "#B3B1AD",
			HeaderBackground:    "#0F1419",
			LabelForeground:     "#59C2FF",
			StatusForeground:    "#E6B450",
		},
		Keymap: map[string]string{
			"right":     "move_forward",
			"left":      "move_back",
			"up":        "move_up",
			"down":      "move_down",
			"home":      "move_start",
			"end":       "move_end",
			"ctrl+a":    "select_all",
			"backspace": "backspace",
			"del":       "delete",
			"enter":     "newline",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, err
	}

	if userCfg.Editor.MaxWidth > 0 {
		cfg.Editor.MaxWidth = userCfg.Editor.MaxWidth
	}
	if md.IsDefined("editor", "margin") && userCfg.Editor.Margin >= 0 {
		cfg.Editor.Margin = userCfg.Editor.Margin
	}
	if userCfg.Editor.DataDir != "" {
		cfg.Editor.DataDir = userCfg.Editor.DataDir
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
	}
	if cfg.Theme.Theme != "" {
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	for k, v := range userCfg.Keymap {
		cfg.Keymap[k] = v
	}

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.CursorForeground != "" {
		dst.CursorForeground = src.CursorForeground
	}
	if src.CursorBackground != "" {
		dst.CursorBackground = src.CursorBackground
	}
	if src.SelectionForeground != "" {
		dst.SelectionForeground = src.SelectionForeground
	}
	if src.SelectionBackground != "" {
		dst.SelectionBackground = src.SelectionBackground
	}
	if src.HeaderForeground != "" {
		dst.HeaderForeground = src.HeaderForeground
	}
	if src.HeaderBackground != "" {
		dst.HeaderBackground = src.HeaderBackground
	}
	if src.LabelForeground != "" {
		dst.LabelForeground = src.LabelForeground
	}
	if src.StatusForeground != "" {
		dst.StatusForeground = src.StatusForeground
	}
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml. The file may hold the keys at top level
// or under a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err == nil {
		return t, nil
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return Theme{}, err
	}
	return wrap.Theme, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("CARDEDIT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "cardedit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cardedit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir is where cards are stored: the configured data-dir, else
// $CARDEDIT_DATA_HOME, else $XDG_DATA_HOME/cardedit, else ~/.local/share/cardedit.
func (c Config) DataDir() (string, error) {
	if c.Editor.DataDir != "" {
		return c.Editor.DataDir, nil
	}
	if v := os.Getenv("CARDEDIT_DATA_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "cardedit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "cardedit"), nil
}
