package config

import (
	"github.com/mitchellh/go-homedir"
	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"github.com/t-kuni/stignore/domain/model/target"
	"github.com/t-kuni/stignore/domain/repository/config"
	"gopkg.in/yaml.v3"
	"os"
)

// PathEnv overrides the configuration file location.
const PathEnv = "STIGNORE_CONFIG"

const defaultPath = "~/.config/stignore/config.yml"

type ConfigRepository struct {
	fs afero.Fs
}

func NewConfigRepository() *ConfigRepository {
	return NewConfigRepositoryWithFs(afero.NewOsFs())
}

func NewConfigRepositoryWithFs(fs afero.Fs) *ConfigRepository {
	return &ConfigRepository{fs: fs}
}

func (r *ConfigRepository) Path() (string, error) {
	path := os.Getenv(PathEnv)
	if path == "" {
		path = defaultPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", eris.Wrapf(err, "failed to expand %s", path)
	}
	return expanded, nil
}

func (r *ConfigRepository) Read(path string) (*config.Config, error) {
	cfg := config.Default()

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, eris.Wrapf(err, "failed to read config file %s", path)
	}

	err = yaml.Unmarshal(content, cfg)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse config file %s", path)
	}

	if cfg.Target == "" {
		cfg.Target = target.Auto
	}
	if _, err := target.ParseMode(string(cfg.Target)); err != nil {
		return nil, eris.Wrapf(err, "invalid config file %s", path)
	}

	return cfg, nil
}
