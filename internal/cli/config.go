package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig holds optional defaults loaded from a TOML file via --config.
// Flags given on the command line take precedence over config values.
type fileConfig struct {
	Rescale rescaleConfig `toml:"rescale"`
	Render  renderConfig  `toml:"render"`
}

type rescaleConfig struct {
	Angle             float64 `toml:"angle"`
	PreserveIntensity bool    `toml:"preserve_intensity"`
}

type renderConfig struct {
	Size int `toml:"size"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		Rescale: rescaleConfig{Angle: 180},
		Render:  renderConfig{Size: 512},
	}
}

// loadConfig reads a TOML config file, layering it over the defaults.
// An empty path returns the defaults unchanged.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
