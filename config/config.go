package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"paneldeck/log"

	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config.yaml"
	configName     = "config"
	configType     = "yaml"
	envPrefix      = "PANELDECK"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".paneldeck"), nil
}

// Config represents the application configuration
type Config struct {
	// SplitterWidth is the width in cells of the gutter between panels.
	SplitterWidth int `mapstructure:"splitter_width"`
	// MinPanelWidth is the floor for panels that do not declare their own.
	MinPanelWidth int `mapstructure:"min_panel_width"`
	// SideDropPercent is the share of a window's width, per edge, that accepts
	// a tab dragged from elsewhere.
	SideDropPercent float64 `mapstructure:"side_drop_percent"`
	// HoverThrottleMs spaces out tab hover samples during a drag.
	HoverThrottleMs int `mapstructure:"hover_throttle_ms"`
	// DefaultPanels lists the panel kinds of a new workspace when no preset is chosen.
	DefaultPanels []string `mapstructure:"default_panels"`
	MaxWindows    int      `mapstructure:"max_windows"`
	MaxTabs       int      `mapstructure:"max_tabs"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SplitterWidth:   1,
		MinPanelWidth:   12,
		SideDropPercent: 15,
		HoverThrottleMs: 50,
		DefaultPanels:   []string{"events", "messages", "search", "bookmarks"},
		MaxWindows:      3,
		MaxTabs:         9,
	}
}

// HoverThrottle returns HoverThrottleMs as a duration.
func (c *Config) HoverThrottle() time.Duration {
	return time.Duration(c.HoverThrottleMs) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("splitter_width", d.SplitterWidth)
	v.SetDefault("min_panel_width", d.MinPanelWidth)
	v.SetDefault("side_drop_percent", d.SideDropPercent)
	v.SetDefault("hover_throttle_ms", d.HoverThrottleMs)
	v.SetDefault("default_panels", d.DefaultPanels)
	v.SetDefault("max_windows", d.MaxWindows)
	v.SetDefault("max_tabs", d.MaxTabs)
}

func newViper(configDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadConfig reads config.yaml and PANELDECK_* overrides. A missing file is
// created with the defaults; an unreadable one falls back to them.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	v := newViper(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configPath := filepath.Join(configDir, ConfigFileName)
			log.ErrorLog.Printf("failed to parse config file at %s: %v", configPath, err)
			backupCorrupt(configPath)
			return DefaultConfig()
		}
		if saveErr := saveConfig(DefaultConfig()); saveErr != nil {
			log.WarningLog.Printf("failed to save default config: %v", saveErr)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.ErrorLog.Printf("failed to decode config: %v", err)
		return DefaultConfig()
	}
	config.normalize()
	return &config
}

// normalize replaces out of range values with their defaults.
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.SplitterWidth < 0 {
		c.SplitterWidth = d.SplitterWidth
	}
	if c.MinPanelWidth < 1 {
		c.MinPanelWidth = d.MinPanelWidth
	}
	if c.SideDropPercent <= 0 || c.SideDropPercent > 50 {
		c.SideDropPercent = d.SideDropPercent
	}
	if c.HoverThrottleMs < 0 {
		c.HoverThrottleMs = d.HoverThrottleMs
	}
	if len(c.DefaultPanels) == 0 {
		c.DefaultPanels = d.DefaultPanels
	}
	if c.MaxWindows < 1 {
		c.MaxWindows = d.MaxWindows
	}
	if c.MaxTabs < 1 {
		c.MaxTabs = d.MaxTabs
	}
}

func backupCorrupt(configPath string) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return
	}
	backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
	if err := os.WriteFile(backupPath, data, 0644); err == nil {
		log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
	}
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configType)
	v.Set("splitter_width", config.SplitterWidth)
	v.Set("min_panel_width", config.MinPanelWidth)
	v.Set("side_drop_percent", config.SideDropPercent)
	v.Set("hover_throttle_ms", config.HoverThrottleMs)
	v.Set("default_panels", config.DefaultPanels)
	v.Set("max_windows", config.MaxWindows)
	v.Set("max_tabs", config.MaxTabs)

	if err := v.WriteConfigAs(filepath.Join(configDir, ConfigFileName)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
