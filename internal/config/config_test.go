package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/longplay45/swissgrid/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deploy.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDeploy(t *testing.T) {
	path := writeConfig(t, `
host = "example.com"
user = "i"
local = "out"
remote = "/srv/www/grids"
key = "/home/i/.ssh/id_ed25519"
exclude = ["*.tmp"]
`)

	cfg, err := LoadDeploy(path)
	if err != nil {
		t.Fatalf("LoadDeploy: %v", err)
	}
	if cfg.Host != "example.com" || cfg.User != "i" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Port != 22 {
		t.Errorf("Port = %d, want default 22", cfg.Port)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "*.tmp" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
}

func TestLoadDeployExplicitPort(t *testing.T) {
	path := writeConfig(t, `
host = "example.com"
port = 2222
user = "i"
local = "out"
remote = "/srv/www/grids"
`)

	cfg, err := LoadDeploy(path)
	if err != nil {
		t.Fatalf("LoadDeploy: %v", err)
	}
	if cfg.Port != 2222 {
		t.Errorf("Port = %d, want 2222", cfg.Port)
	}
}

func TestLoadDeployMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no host", "user = \"i\"\nlocal = \"out\"\nremote = \"/srv\"\n"},
		{"no user", "host = \"example.com\"\nlocal = \"out\"\nremote = \"/srv\"\n"},
		{"no remote", "host = \"example.com\"\nuser = \"i\"\nlocal = \"out\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDeploy(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeConfig) {
				t.Errorf("error code = %v, want CONFIG_ERROR", errors.GetCode(err))
			}
		})
	}
}

func TestLoadDeployMissingFile(t *testing.T) {
	_, err := LoadDeploy(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeConfig) {
		t.Errorf("error code = %v, want CONFIG_ERROR", errors.GetCode(err))
	}
}

func TestLoadDeployMalformed(t *testing.T) {
	_, err := LoadDeploy(writeConfig(t, "host = [not toml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.ErrCodeConfig) {
		t.Errorf("error code = %v, want CONFIG_ERROR", errors.GetCode(err))
	}
}
