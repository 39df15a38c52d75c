// Package config handles loading and saving handover configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/handover/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/handover/pkg/guide"
)

// Sidebar width bounds, in terminal cells.
const (
	MinSidebarWidth     = 20
	MaxSidebarWidth     = 60
	DefaultSidebarWidth = 30
)

// Glamour style names accepted in ui.glamour_style.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// ErrUnknownSection is returned when ui.default_section names no section.
var ErrUnknownSection = errors.New("unknown section")

// UIConfig holds UI preference settings.
type UIConfig struct {
	DefaultSection string `yaml:"default_section,omitempty"` // section id or label
	SidebarWidth   int    `yaml:"sidebar_width,omitempty"`
	WordWrap       int    `yaml:"word_wrap,omitempty"`     // 0 = panel width
	GlamourStyle   string `yaml:"glamour_style,omitempty"` // auto, dark, light, notty
}

// Config is the top-level configuration for handover.
type Config struct {
	UI    UIConfig `yaml:"ui,omitempty"`
	Watch *bool    `yaml:"watch,omitempty"` // live reload while the TUI runs; default on
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			DefaultSection: string(guide.DefaultSection),
			SidebarWidth:   DefaultSidebarWidth,
			GlamourStyle:   StyleAuto,
		},
	}
}

// ConfigDir returns the XDG config directory for handover.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "handover")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "handover")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist. Values missing from the
// file keep their defaults; out-of-range values are normalized.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.UI.DefaultSection != "" {
		if _, ok := guide.ParseSectionID(c.UI.DefaultSection); !ok {
			return fmt.Errorf("ui.default_section %q: %w", c.UI.DefaultSection, ErrUnknownSection)
		}
	}
	switch strings.ToLower(c.UI.GlamourStyle) {
	case "", StyleAuto, StyleDark, StyleLight, StyleNoTTY:
	default:
		return fmt.Errorf("ui.glamour_style %q: expected auto, dark, light or notty", c.UI.GlamourStyle)
	}
	if c.UI.WordWrap < 0 {
		return fmt.Errorf("ui.word_wrap must not be negative, got %d", c.UI.WordWrap)
	}
	return nil
}

// StartSection returns the section the UI opens on.
func (c Config) StartSection() guide.SectionID {
	if id, ok := guide.ParseSectionID(c.UI.DefaultSection); ok {
		return id
	}
	return guide.DefaultSection
}

// WatchEnabled reports whether the config file should be watched.
func (c Config) WatchEnabled() bool {
	return c.Watch == nil || *c.Watch
}

func (c *Config) normalize() {
	if c.UI.SidebarWidth == 0 {
		c.UI.SidebarWidth = DefaultSidebarWidth
	}
	c.UI.SidebarWidth = ClampSidebarWidth(c.UI.SidebarWidth)
	c.UI.GlamourStyle = strings.ToLower(strings.TrimSpace(c.UI.GlamourStyle))
	if c.UI.GlamourStyle == "" {
		c.UI.GlamourStyle = StyleAuto
	}
}

// ClampSidebarWidth keeps w within the supported sidebar bounds.
func ClampSidebarWidth(w int) int {
	if w < MinSidebarWidth {
		return MinSidebarWidth
	}
	if w > MaxSidebarWidth {
		return MaxSidebarWidth
	}
	return w
}
