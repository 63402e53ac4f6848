package viper_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/study"
	studyviper "github.com/fwojciec/study/viper"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file use t.Setenv and therefore do not run in parallel.

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := studyviper.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, studyviper.Config{
		APIURL:          "",
		CredentialsFile: filepath.Join(dir, "study", "credentials.json"),
		Width:           0,
		Parser:          studyviper.ParserBuiltin,
		Style:           "dark",
		Timeout:         30 * time.Second,
		Debug:           false,
	}, cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "study"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "study", "study.yaml"), []byte(
		"api_url: https://file.example.com\nparser: goldmark\nwidth: 72\ntimeout: 5s\nclass: c-file\n"), 0o644))
	t.Setenv("STUDY_API_URL", "https://env.example.com")
	t.Setenv("STUDY_CLASS", " c-env ")

	cfg, err := studyviper.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
	assert.Equal(t, "c-env", cfg.Class)
	assert.Equal(t, studyviper.ParserGoldmark, cfg.Parser)
	assert.Equal(t, 72, cfg.Width)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_ExplicitFileAndOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("style = \"light\"\ndebug = true\n"), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	v.Set("style", "dracula")

	cfg, err := studyviper.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Style)
	assert.True(t, cfg.Debug)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("STUDY_PARSER", "pandoc")
	t.Setenv("STUDY_TIMEOUT", "0s")

	_, err := studyviper.Load(viper.New())
	require.ErrorIs(t, err, study.ErrValidation)
	assert.Contains(t, err.Error(), "parser must be builtin or goldmark")
	assert.Contains(t, err.Error(), "timeout must be greater than 0")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parser: [unterminated\n"), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	_, err := studyviper.Load(v)
	assert.Error(t, err)
}

func TestGetConfigOptions(t *testing.T) {
	t.Parallel()

	keys := make(map[string]bool)
	for _, o := range studyviper.GetConfigOptions() {
		assert.NotEmpty(t, o.Comment, o.Key)
		keys[o.Key] = true
	}
	for _, k := range []string{"api_url", "class", "credentials_file", "width", "parser", "style", "timeout", "debug"} {
		assert.True(t, keys[k], k)
	}
}
