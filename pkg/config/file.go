package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
)

const (
	DefaultPath       = "stegobmp.yaml"
	DefaultServerPort = 8080
	DefaultLogLevel   = "info"
)

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// FileConfig is the content of the YAML configuration file
type FileConfig struct {
	Defaults StegoConfig  `yaml:"defaults"`
	Server   ServerConfig `yaml:"server"`
	Log      LogConfig    `yaml:"log"`
}

func (c *FileConfig) PopulateUnsetConfigVars() {
	c.Defaults.PopulateUnsetConfigVars()
	if c.Server.Port <= 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Load reads the configuration at path. A missing file at DefaultPath yields the defaults
func Load(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	case err != nil:
		return nil, fmt.Errorf("error reading config file: %w", err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
	}
	cfg.PopulateUnsetConfigVars()
	return cfg, nil
}
