package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// loadYAML resolves a game config. Search order: customPath (errors are
// fatal there, the user asked for that file) -> ~/.termcade/configs/<name>
// -> ./configs/<name> -> embedded default.
func loadYAML(customPath, name string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the per-user config file path, or empty when the
// home directory is unavailable.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termcade", "configs", name)
}

// LoadDuelpong loads the Duelpong configuration.
func LoadDuelpong(customPath string) (DuelpongConfig, error) {
	var cfg DuelpongConfig
	if err := loadYAML(customPath, "duelpong.yaml", defaultDuelpongYAML, &cfg); err != nil {
		return DefaultDuelpongConfig(), err
	}
	return cfg, nil
}

// LoadBlaster loads the Blaster configuration.
func LoadBlaster(customPath string) (BlasterConfig, error) {
	var cfg BlasterConfig
	if err := loadYAML(customPath, "blaster.yaml", defaultBlasterYAML, &cfg); err != nil {
		return DefaultBlasterConfig(), err
	}
	return cfg, nil
}

// LoadFlapper loads the Flapper configuration.
func LoadFlapper(customPath string) (FlapperConfig, error) {
	var cfg FlapperConfig
	if err := loadYAML(customPath, "flapper.yaml", defaultFlapperYAML, &cfg); err != nil {
		return DefaultFlapperConfig(), err
	}
	return cfg, nil
}
