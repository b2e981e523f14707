package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/bankaccount"
	"gopkg.in/yaml.v3"
)

// Output formats of the run command.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Config is the content of the acct configuration file.
type Config struct {
	// Start is the number of the first account opened by a command.
	Start int64 `yaml:"start"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Format is the default output format of the run command.
	Format string `yaml:"format"`
}

// loadConfig reads the configuration file. A missing file is not an error,
// the defaults are used instead.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("config file does not exist, using defaults", "path", path)
	case err != nil:
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot parse config file %q: %w", path, err)
		}
	}

	// defaults for missing values.
	if cfg.Start == 0 {
		cfg.Start = bankaccount.FirstAccountNumber
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}

	if cfg.Start < 0 {
		return cfg, fmt.Errorf("config file %q: start must be positive, got %d", path, cfg.Start)
	}
	switch cfg.Format {
	case FormatText, FormatMarkdown, FormatJSON:
	default:
		return cfg, fmt.Errorf("config file %q: unknown format %q", path, cfg.Format)
	}
	return cfg, nil
}
