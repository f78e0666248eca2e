package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_RequiresLicenseKey(t *testing.T) {
	// when
	cfg, err := loadConfig(&rootFlags{})

	// then
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	// given
	t.Setenv(envLicenseKey, "tl_free_secret123456789")

	// when
	cfg, err := loadConfig(&rootFlags{})

	// then
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
}

func TestLoadConfig_ReadsConfigFile(t *testing.T) {
	// given
	path := writeTempFile(t, "config.yaml", `
base_url: https://staging.truthlinked.org
license_key: tl_pro_fromfile123456
timeout: 5s
`)

	// when
	cfg, err := loadConfig(&rootFlags{configFile: path})

	// then
	require.NoError(t, err)
	assert.Equal(t, "https://staging.truthlinked.org", cfg.BaseURL)
	assert.Equal(t, "tl_pro_fromfile123456", cfg.LicenseKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfig_EnvOverridesConfigFile(t *testing.T) {
	// given
	path := writeTempFile(t, "config.yaml", `
base_url: https://staging.truthlinked.org
license_key: tl_pro_fromfile123456
`)
	t.Setenv(envBaseURL, "https://env.truthlinked.org")

	// when
	cfg, err := loadConfig(&rootFlags{configFile: path})

	// then
	require.NoError(t, err)
	assert.Equal(t, "https://env.truthlinked.org", cfg.BaseURL)
	assert.Equal(t, "tl_pro_fromfile123456", cfg.LicenseKey)
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	// given
	t.Setenv(envBaseURL, "https://env.truthlinked.org")
	t.Setenv(envLicenseKey, "tl_free_fromenv1234567")

	// when
	cfg, err := loadConfig(&rootFlags{
		baseURL:    "https://flag.truthlinked.org",
		licenseKey: "tl_ent_fromflag1234567",
		timeout:    time.Second,
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, "https://flag.truthlinked.org", cfg.BaseURL)
	assert.Equal(t, "tl_ent_fromflag1234567", cfg.LicenseKey)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestLoadConfig_LoadsEnvFile(t *testing.T) {
	// given
	path := writeTempFile(t, ".env", envLicenseKey+"=tl_free_fromdotenv1234\n")

	// when
	cfg, err := loadConfig(&rootFlags{envFile: path})

	// then
	require.NoError(t, err)
	assert.Equal(t, "tl_free_fromdotenv1234", cfg.LicenseKey)
}

func TestLoadConfig_MissingExplicitConfigFileFails(t *testing.T) {
	// given
	t.Setenv(envLicenseKey, "tl_free_secret123456789")

	// when
	cfg, err := loadConfig(&rootFlags{configFile: "/nonexistent/config.yaml"})

	// then
	require.Error(t, err)
	assert.Nil(t, cfg)
}
