// Package config loads the TOML deploy configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/longplay45/swissgrid/pkg/errors"
)

// Deploy describes one SFTP deploy target.
type Deploy struct {
	Host          string   `toml:"host"`
	Port          int      `toml:"port"`
	User          string   `toml:"user"`
	Password      string   `toml:"password"`
	Key           string   `toml:"key"`
	KeyPassphrase string   `toml:"key_passphrase"`
	Local         string   `toml:"local"`
	Remote        string   `toml:"remote"`
	Exclude       []string `toml:"exclude"`
}

// LoadDeploy reads and validates a deploy configuration file. Missing port
// defaults to 22; host, user, local, and remote are required.
func LoadDeploy(path string) (*Deploy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfig, "reading deploy config %s failed", path)
	}

	var cfg Deploy
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfig, "parsing deploy config %s failed", path)
	}

	if cfg.Port == 0 {
		cfg.Port = 22
	}
	cfg.Key = expandHome(cfg.Key)
	cfg.Local = expandHome(cfg.Local)

	switch {
	case cfg.Host == "":
		return nil, errors.New(errors.ErrCodeConfig, "deploy config is missing host")
	case cfg.User == "":
		return nil, errors.New(errors.ErrCodeConfig, "deploy config is missing user")
	case cfg.Local == "":
		return nil, errors.New(errors.ErrCodeConfig, "deploy config is missing local source directory")
	case cfg.Remote == "":
		return nil, errors.New(errors.ErrCodeConfig, "deploy config is missing remote target directory")
	}

	return &cfg, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
