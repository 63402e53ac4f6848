// Package viper resolves study configuration from defaults, a config file,
// STUDY_* environment variables and bound command-line flags.
package viper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/study"
	"github.com/spf13/viper"
)

// Parser names accepted by the parser option.
const (
	ParserBuiltin  = "builtin"
	ParserGoldmark = "goldmark"
)

// Config is the resolved configuration.
type Config struct {
	APIURL          string
	Class           string
	CredentialsFile string
	Width           int
	Parser          string
	Style           string
	Timeout         time.Duration
	Debug           bool
}

// ConfigOption is one configuration key with its default and description.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration keys, their defaults and what
// they mean.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "api_url", Default: "", Comment: "Backend base URL; empty picks http://localhost:8000 on a development host"},
		{Key: "class", Default: "", Comment: "Class whose subjects study subjects lists when --class is not given"},
		{Key: "credentials_file", Default: DefaultCredentialsPath(), Comment: "Where login stores the session"},
		{Key: "width", Default: 0, Comment: "Render width in columns; 0 uses the terminal width"},
		{Key: "parser", Default: ParserBuiltin, Comment: "Markdown parser: builtin or goldmark"},
		{Key: "style", Default: "dark", Comment: "Glamour style for --format glamour"},
		{Key: "timeout", Default: "30s", Comment: "Backend request timeout"},
		{Key: "debug", Default: false, Comment: "Log debug output to stderr"},
	}
}

// Load resolves configuration with precedence: defaults < file < env <
// flags bound to v by the caller. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("study")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "study"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "study"))
		}
		v.AddConfigPath(".")
	}

	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("study")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := Config{
		APIURL:          strings.TrimSpace(v.GetString("api_url")),
		Class:           strings.TrimSpace(v.GetString("class")),
		CredentialsFile: expandHome(v.GetString("credentials_file")),
		Width:           v.GetInt("width"),
		Parser:          strings.ToLower(strings.TrimSpace(v.GetString("parser"))),
		Style:           strings.TrimSpace(v.GetString("style")),
		Timeout:         v.GetDuration("timeout"),
		Debug:           v.GetBool("debug"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid option at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Parser {
	case ParserBuiltin, ParserGoldmark:
	default:
		errs = append(errs, fmt.Errorf("parser must be %s or %s, got %q", ParserBuiltin, ParserGoldmark, c.Parser))
	}
	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width must not be negative, got %d", c.Width))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be greater than 0, got %s", c.Timeout))
	}
	if c.CredentialsFile == "" {
		errs = append(errs, errors.New("credentials_file is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", study.ErrValidation, errors.Join(errs...))
	}
	return nil
}

// DefaultCredentialsPath is $XDG_CONFIG_HOME/study/credentials.json, falling
// back to ~/.config/study/credentials.json.
func DefaultCredentialsPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "study", "credentials.json")
}

// expandHome expands a leading ~.
func expandHome(p string) string {
	if rest, ok := strings.CutPrefix(p, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return p
}
