// Package config loads host settings from a YAML file and VI_CONSOLE_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/lixenwraith/vi-console/console"
	"github.com/lixenwraith/vi-console/core"
	"github.com/lixenwraith/vi-console/render"
)

// DefaultPath is read when no -config flag is given
const DefaultPath = "config.yml"

type Config struct {
	Speed   int  `yaml:"speed" env:"VI_CONSOLE_SPEED" env-default:"50"` // milliseconds per character
	Loop    bool `yaml:"loop" env:"VI_CONSOLE_LOOP"`
	Passive bool `yaml:"passive" env:"VI_CONSOLE_PASSIVE"`
	Focus   bool `yaml:"focus" env:"VI_CONSOLE_FOCUS"`   // default true, see Default
	Scroll  bool `yaml:"scroll" env:"VI_CONSOLE_SCROLL"` // default true, see Default

	HideTags   bool   `yaml:"hide_tags" env:"VI_CONSOLE_HIDE_TAGS"`
	ShowHeader bool   `yaml:"show_header" env:"VI_CONSOLE_SHOW_HEADER"`
	Prompt     string `yaml:"prompt" env:"VI_CONSOLE_PROMPT" env-default:"~$ "`
	ConsoleTag string `yaml:"console_tag" env:"VI_CONSOLE_CONSOLE_TAG" env-default:"console"`
	UserTag    string `yaml:"user_tag" env:"VI_CONSOLE_USER_TAG"` // defaults to ConsoleTag

	TagColor        string `yaml:"tag_color" env:"VI_CONSOLE_TAG_COLOR" env-default:"#7BC02D"`
	UserTagColor    string `yaml:"user_tag_color" env:"VI_CONSOLE_USER_TAG_COLOR"` // defaults to TagColor
	TextColor       string `yaml:"text_color" env:"VI_CONSOLE_TEXT_COLOR" env-default:"#FAFAFA"`
	BackgroundColor string `yaml:"background_color" env:"VI_CONSOLE_BACKGROUND_COLOR" env-default:"#000000"`
	HeaderColor     string `yaml:"header_color" env:"VI_CONSOLE_HEADER_COLOR" env-default:"#D9D9D9"`

	Script string `yaml:"script" env:"VI_CONSOLE_SCRIPT"` // YAML script file, empty runs the built-in demo
	Split  bool   `yaml:"split" env:"VI_CONSOLE_SPLIT"`

	Log   LogConfig   `yaml:"log"`
	Audio AudioConfig `yaml:"audio"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"VI_CONSOLE_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file" env:"VI_CONSOLE_LOG_FILE"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled" env:"VI_CONSOLE_AUDIO_ENABLED"`
	Volume  int  `yaml:"volume" env:"VI_CONSOLE_AUDIO_VOLUME" env-default:"50"` // 0-100
}

// Default returns the values cleanenv cannot express as env-default
// Defaults are only applied to zero fields, so true booleans are seeded before reading
// Focus and Scroll are on for the host; console.Options leaves both off when unset
func Default() Config {
	return Config{
		Focus:  true,
		Scroll: true,
	}
}

// Load reads path then applies environment overrides
// A missing file falls back to environment and defaults only
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config env: %w", err)
		}
	} else {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the host cannot run with
func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("invalid speed %d: must be positive", c.Speed)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("invalid audio volume %d: must be 0-100", c.Audio.Volume)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	if _, err := c.Style(); err != nil {
		return err
	}
	return nil
}

// SpeedDuration returns the typewriter interval
func (c *Config) SpeedDuration() time.Duration {
	return time.Duration(c.Speed) * time.Millisecond
}

// SessionOptions maps behavior settings onto console options
// Callbacks, collaborators and the logger are left for the host to fill
func (c *Config) SessionOptions() console.Options {
	return console.Options{
		Speed:      c.SpeedDuration(),
		Loop:       c.Loop,
		Passive:    c.Passive,
		Focus:      c.Focus,
		Scroll:     c.Scroll,
		ConsoleTag: c.ConsoleTag,
		UserTag:    c.UserTag,
		Prompt:     c.Prompt,
	}
}

// Style parses the palette into a pane style
func (c *Config) Style() (render.Style, error) {
	st := render.DefaultStyle()
	st.HideTags = c.HideTags
	st.ShowHeader = c.ShowHeader
	st.Scrollbar = c.Scroll
	st.Title = c.ConsoleTag

	userTagColor := c.UserTagColor
	if userTagColor == "" {
		userTagColor = c.TagColor
	}

	for _, f := range []struct {
		name  string
		value string
		dst   *tcell.Color
	}{
		{"tag_color", c.TagColor, &st.Tag},
		{"user_tag_color", userTagColor, &st.UserTag},
		{"text_color", c.TextColor, &st.Text},
		{"background_color", c.BackgroundColor, &st.Background},
		{"header_color", c.HeaderColor, &st.Header},
	} {
		if f.value == "" {
			continue
		}
		color, err := render.ParseColor(f.value)
		if err != nil {
			return st, fmt.Errorf("invalid %s: %w", f.name, err)
		}
		*f.dst = color
	}
	return st, nil
}

// LogOptions returns logger settings
func (c *Config) LogOptions() core.LogOptions {
	return core.LogOptions{Level: c.Log.Level, File: c.Log.File}
}

// Volume returns the audio volume scaled to 0..1
func (c *Config) Volume() float64 {
	return float64(c.Audio.Volume) / 100
}
