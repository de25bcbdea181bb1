package config

import "github.com/t-kuni/stignore/domain/model/target"

// Config holds the defaults for command line flags.
type Config struct {
	Target   target.Mode `yaml:"target"`
	Absolute bool        `yaml:"absolute"`
	Preview  bool        `yaml:"preview"`
}

func Default() *Config {
	return &Config{
		Target: target.Auto,
	}
}

type Repository interface {
	// Path returns the location of the configuration file.
	Path() (string, error)
	// Read returns Default() when the file doesn't exist.
	Read(path string) (*Config, error)
}
