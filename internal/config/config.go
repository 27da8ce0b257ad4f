// Package config provides configuration and saved-position persistence
// for the Xiangqi engine.
//
// Configuration is stored in ~/.xiangqi/config.toml, in TOML format.
// A saved position is stored as a FEN string in ~/.xiangqi/savegame.fen.
//
// Config directory permissions: 0755 (rwxr-xr-x)
// Config file permissions: 0644 (rw-r--r--)
// Save file permissions: 0644 (rw-r--r--)
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultSearchDepth is used by the REPL and CLI when no -depth flag is
// given and the config file specifies none.
const DefaultSearchDepth = 6

// Config holds the settings that control how the engine searches and
// displays positions.
type Config struct {
	// SearchDepth is the default iterative-deepening depth.
	SearchDepth int
	// ShowUnicode records the Unicode piece-glyph display preference.
	// It is saved and loaded with the config file; the TUI does not read
	// it and always renders raw FEN letters.
	ShowUnicode bool
	// UseColors records the Red/Black piece-colorization preference.
	// It is saved and loaded with the config file; neither Board.Display
	// nor the TUI reads it.
	UseColors bool
	// BatchConcurrency caps how many positions internal/analyze
	// evaluates at once. 0 means auto-detect from CPU count.
	BatchConcurrency int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		SearchDepth:      DefaultSearchDepth,
		ShowUnicode:      false,
		UseColors:        true,
		BatchConcurrency: 0,
	}
}

// ConfigFile is the on-disk TOML representation.
type ConfigFile struct {
	Engine  EngineConfig  `toml:"engine"`
	Display DisplayConfig `toml:"display"`
}

// EngineConfig holds search-related settings for the TOML file.
type EngineConfig struct {
	SearchDepth      int `toml:"search_depth"`
	BatchConcurrency int `toml:"batch_concurrency"`
}

// DisplayConfig holds display-related settings for the TOML file.
type DisplayConfig struct {
	ShowUnicode bool `toml:"show_unicode"`
	UseColors   bool `toml:"use_colors"`
}

func defaultConfigFile() ConfigFile {
	return ConfigFile{
		Engine: EngineConfig{
			SearchDepth:      DefaultSearchDepth,
			BatchConcurrency: 0,
		},
		Display: DisplayConfig{
			ShowUnicode: false,
			UseColors:   true,
		},
	}
}

func configFileToConfig(cf ConfigFile) Config {
	depth := cf.Engine.SearchDepth
	if depth <= 0 {
		depth = DefaultSearchDepth
	}
	return Config{
		SearchDepth:      depth,
		ShowUnicode:      cf.Display.ShowUnicode,
		UseColors:        cf.Display.UseColors,
		BatchConcurrency: cf.Engine.BatchConcurrency,
	}
}

func configToConfigFile(c Config) ConfigFile {
	depth := c.SearchDepth
	if depth <= 0 {
		depth = DefaultSearchDepth
	}
	return ConfigFile{
		Engine: EngineConfig{
			SearchDepth:      depth,
			BatchConcurrency: c.BatchConcurrency,
		},
		Display: DisplayConfig{
			ShowUnicode: c.ShowUnicode,
			UseColors:   c.UseColors,
		},
	}
}

// LoadConfig reads ~/.xiangqi/config.toml. If the file is missing or
// cannot be parsed, it returns DefaultConfig — this function never
// fails outright, since a broken config file should never block
// startup.
func LoadConfig() Config {
	configPath, err := getConfigFilePath()
	if err != nil {
		return DefaultConfig()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig()
	}

	var cf ConfigFile
	if _, err := toml.DecodeFile(configPath, &cf); err != nil {
		return DefaultConfig()
	}

	return configFileToConfig(cf)
}

// SaveConfig writes config to ~/.xiangqi/config.toml, creating the
// directory if necessary.
func SaveConfig(config Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	cf := configToConfigFile(config)

	file, err := os.OpenFile(configPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cf); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}
