package config

import (
	"os"
	"testing"
)

// TestLoadConfig_WithMissingFile tests that LoadConfig returns default config when file doesn't exist
// Note: This test temporarily renames the actual config file if it exists
func TestLoadConfig_WithMissingFile(t *testing.T) {
	configPath, err := getConfigFilePath()
	if err != nil {
		t.Fatalf("getConfigFilePath failed: %v", err)
	}

	backupPath := configPath + ".test-backup"
	if _, err := os.Stat(configPath); err == nil {
		if err := os.Rename(configPath, backupPath); err != nil {
			t.Fatalf("Failed to backup config file: %v", err)
		}
		defer func() {
			os.Rename(backupPath, configPath)
		}()
	}

	config := LoadConfig()
	expectedDefaults := DefaultConfig()
	if config.SearchDepth != expectedDefaults.SearchDepth ||
		config.ShowUnicode != expectedDefaults.ShowUnicode ||
		config.UseColors != expectedDefaults.UseColors {
		t.Error("LoadConfig did not return default config when file is missing")
	}
}

// TestSaveAndLoadConfig tests the full save and load cycle
func TestSaveAndLoadConfig(t *testing.T) {
	customConfig := Config{
		SearchDepth:      10,
		ShowUnicode:      true,
		UseColors:        false,
		BatchConcurrency: 4,
	}

	if err := SaveConfig(customConfig); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loadedConfig := LoadConfig()

	if loadedConfig.SearchDepth != customConfig.SearchDepth {
		t.Errorf("SearchDepth mismatch: got %v, want %v", loadedConfig.SearchDepth, customConfig.SearchDepth)
	}
	if loadedConfig.ShowUnicode != customConfig.ShowUnicode {
		t.Errorf("ShowUnicode mismatch: got %v, want %v", loadedConfig.ShowUnicode, customConfig.ShowUnicode)
	}
	if loadedConfig.UseColors != customConfig.UseColors {
		t.Errorf("UseColors mismatch: got %v, want %v", loadedConfig.UseColors, customConfig.UseColors)
	}
	if loadedConfig.BatchConcurrency != customConfig.BatchConcurrency {
		t.Errorf("BatchConcurrency mismatch: got %v, want %v", loadedConfig.BatchConcurrency, customConfig.BatchConcurrency)
	}
}

// TestSaveConfig_CreatesDirectory tests that SaveConfig creates the config directory if it doesn't exist
func TestSaveConfig_CreatesDirectory(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}

	defaultConfig := DefaultConfig()
	if err := SaveConfig(defaultConfig); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("SaveConfig did not create config directory")
	}
}

// TestConfigFileToConfig tests the conversion from ConfigFile to Config
func TestConfigFileToConfig(t *testing.T) {
	cf := ConfigFile{
		Engine: EngineConfig{
			SearchDepth:      8,
			BatchConcurrency: 2,
		},
		Display: DisplayConfig{
			ShowUnicode: true,
			UseColors:   false,
		},
	}

	config := configFileToConfig(cf)

	if config.SearchDepth != cf.Engine.SearchDepth {
		t.Error("SearchDepth conversion failed")
	}
	if config.BatchConcurrency != cf.Engine.BatchConcurrency {
		t.Error("BatchConcurrency conversion failed")
	}
	if config.ShowUnicode != cf.Display.ShowUnicode {
		t.Error("ShowUnicode conversion failed")
	}
	if config.UseColors != cf.Display.UseColors {
		t.Error("UseColors conversion failed")
	}
}

// TestConfigToConfigFile tests the conversion from Config to ConfigFile
func TestConfigToConfigFile(t *testing.T) {
	cfg := Config{
		SearchDepth:      12,
		ShowUnicode:      true,
		UseColors:        false,
		BatchConcurrency: 3,
	}

	cf := configToConfigFile(cfg)

	if cf.Engine.SearchDepth != cfg.SearchDepth {
		t.Error("SearchDepth conversion failed")
	}
	if cf.Engine.BatchConcurrency != cfg.BatchConcurrency {
		t.Error("BatchConcurrency conversion failed")
	}
	if cf.Display.ShowUnicode != cfg.ShowUnicode {
		t.Error("ShowUnicode conversion failed")
	}
	if cf.Display.UseColors != cfg.UseColors {
		t.Error("UseColors conversion failed")
	}
}

// TestDefaultConfigFile tests that defaultConfigFile returns expected values
func TestDefaultConfigFile(t *testing.T) {
	cf := defaultConfigFile()

	if cf.Engine.SearchDepth != DefaultSearchDepth {
		t.Errorf("Default SearchDepth should be %d", DefaultSearchDepth)
	}
	if cf.Display.UseColors != true {
		t.Error("Default UseColors should be true")
	}
	if cf.Display.ShowUnicode != false {
		t.Error("Default ShowUnicode should be false")
	}
}

// TestSearchDepthDefaultsOnZero tests that a non-positive search depth in
// the config file is normalized to DefaultSearchDepth.
func TestSearchDepthDefaultsOnZero(t *testing.T) {
	cf := ConfigFile{
		Engine: EngineConfig{SearchDepth: 0},
	}

	config := configFileToConfig(cf)

	if config.SearchDepth != DefaultSearchDepth {
		t.Errorf("Expected zero search depth to default to %d, got %d", DefaultSearchDepth, config.SearchDepth)
	}
}

// TestDefaultConfig_HasSearchDepth tests that DefaultConfig includes a
// positive search depth.
func TestDefaultConfig_HasSearchDepth(t *testing.T) {
	config := DefaultConfig()

	if config.SearchDepth != DefaultSearchDepth {
		t.Errorf("Expected default search depth to be %d, got %d", DefaultSearchDepth, config.SearchDepth)
	}
}
