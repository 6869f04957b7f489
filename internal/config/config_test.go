package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "LOG_LEVEL", "DB_PATH", "ASSUMPTIONS_FILE", "REPORT_LOCALE", "PROVIDER_NAME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en-US", cfg.ReportLocale)
	assert.Equal(t, "Roots", cfg.ProviderName)
	assert.Empty(t, cfg.DBPath)
	assert.True(t, cfg.IsDev())
}

func TestLoadFrom_DotEnvValuesAndComments(t *testing.T) {
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))
	t.Setenv("PROVIDER_NAME", "")
	require.NoError(t, os.Unsetenv("PROVIDER_NAME"))

	path := writeDotEnv(t, `
# comment

PORT=9090
export PROVIDER_NAME="Roots Fulfillment"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "Roots Fulfillment", cfg.ProviderName)
}

func TestLoadFrom_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg, err := LoadFrom(writeDotEnv(t, "PORT=9090\n"))
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
}

func TestLoadFrom_RejectsInvalidLocale(t *testing.T) {
	t.Setenv("REPORT_LOCALE", "not a locale!")

	_, err := LoadFrom("")
	require.Error(t, err)
}

func TestIsDev(t *testing.T) {
	assert.True(t, Config{Env: "dev"}.IsDev())
	assert.False(t, Config{Env: "prod"}.IsDev())
}
