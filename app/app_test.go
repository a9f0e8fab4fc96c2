package app

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
)

const testConfigPath = "../etc/"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		dumpJSON = false
		devMode = false
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	t.Setenv(config.EnvJWTSecret, "from-env-secret")

	out, err := execute(t, "config", "--config", testConfigPath, "--json")
	require.NoError(t, err)

	var c config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "GoPortfolio-Admin", c.Title)
	assert.NotContains(t, out, "from-env-secret")
}

func TestConfigCommandTOML(t *testing.T) {
	out, err := execute(t, "config", "--config", testConfigPath)
	require.NoError(t, err)
	assert.Contains(t, out, `Title = "GoPortfolio-Admin"`)
}

func TestSeedCommand(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv(config.JSONConfigEnvName, `{"DB":{"GormEngine":"sqlite","Name":"`+filepath.ToSlash(dbFile)+`"}}`)

	out, err := execute(t, "seed", "--config", testConfigPath)
	require.NoError(t, err)
	assert.Contains(t, out, "database seeded, admin user: admin")
	assert.FileExists(t, dbFile)
}

func TestSeedCommandWithoutSecret(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv(config.EnvNodeEnv, "production")
	t.Setenv(config.EnvJWTSecret, "")
	t.Setenv(config.JSONConfigEnvName, `{"DB":{"GormEngine":"sqlite","Name":"`+filepath.ToSlash(dbFile)+`"}}`)

	out, err := execute(t, "seed", "--config", testConfigPath)
	require.NoError(t, err)
	assert.Contains(t, out, "database seeded, admin user: admin")
}

func TestConfigCommandWithoutSecret(t *testing.T) {
	t.Setenv(config.EnvNodeEnv, "production")
	t.Setenv(config.EnvJWTSecret, "")
	t.Setenv(config.JSONConfigEnvName, "")

	out, err := execute(t, "config", "--config", testConfigPath)
	require.NoError(t, err)
	assert.Contains(t, out, `Title = "GoPortfolio-Admin"`)
}
