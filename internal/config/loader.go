package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	v := viper.GetViper()

	setDefaults(v)

	// Config file settings
	v.SetConfigName("swgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (SWGEN_*)
	v.SetEnvPrefix("SWGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads and parses a config file from the given path. Host build
// tools that embed the pipeline use this instead of the viper layering.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses configuration from raw bytes, layered over the
// built-in defaults.
func LoadFromBytes(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)

	cfg := Default()
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults restores required fields a config file may have blanked.
func applyDefaults(cfg *Config) {
	if cfg.SWDest == "" {
		cfg.SWDest = DefaultSWDest
	}
	if cfg.PrecacheManifestFilename == "" {
		cfg.PrecacheManifestFilename = DefaultPrecacheManifestFilename
	}
	if cfg.ImportWorkboxFrom == "" {
		cfg.ImportWorkboxFrom = DefaultImportWorkboxFrom
	}
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("sw_dest", DefaultSWDest)
	v.SetDefault("imports_directory", DefaultImportsDirectory)
	v.SetDefault("precache_manifest_filename", DefaultPrecacheManifestFilename)
	v.SetDefault("import_workbox_from", DefaultImportWorkboxFrom)
}
