package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL = "https://api.truthlinked.org"
	defaultTimeout = 30 * time.Second

	envBaseURL    = "TRUTHLINKED_BASE_URL"
	envLicenseKey = "TRUTHLINKED_LICENSE_KEY"
	envTimeout    = "TRUTHLINKED_TIMEOUT"
)

type cliConfig struct {
	BaseURL    string        `yaml:"base_url"`
	LicenseKey string        `yaml:"license_key"`
	Timeout    time.Duration `yaml:"timeout"`
}

// loadConfig resolves settings in precedence order: explicit flags beat
// environment variables, which beat the YAML config file, which beats
// built-in defaults. A .env file, when present, only fills unset
// environment variables.
func loadConfig(flags *rootFlags) (*cliConfig, error) {
	if flags.envFile != "" {
		if err := godotenv.Load(flags.envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", flags.envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &cliConfig{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}

	if err := overlayConfigFile(cfg, flags.configFile); err != nil {
		return nil, err
	}
	overlayEnv(cfg)
	overlayFlags(cfg, flags)

	if cfg.LicenseKey == "" {
		return nil, fmt.Errorf("license key is required (flag --license-key, env %s, or config file)", envLicenseKey)
	}

	return cfg, nil
}

func overlayConfigFile(cfg *cliConfig, path string) error {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".truthlinked.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func overlayEnv(cfg *cliConfig) {
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envLicenseKey); v != "" {
		cfg.LicenseKey = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if timeout, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = timeout
		}
	}
}

func overlayFlags(cfg *cliConfig, flags *rootFlags) {
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}
	if flags.licenseKey != "" {
		cfg.LicenseKey = flags.licenseKey
	}
	if flags.timeout > 0 {
		cfg.Timeout = flags.timeout
	}
}
