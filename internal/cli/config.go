package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	errs "github.com/gobedca/gobedca/pkg/errors"
)

// Config holds user-level defaults, loaded from a TOML file.
// Zero/empty fields fall back to built-in defaults; flags override both.
type Config struct {
	Endpoint       string `toml:"endpoint"`
	Language       string `toml:"language"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

func defaultConfig() Config {
	return Config{Language: "es"}
}

// loadConfig reads the config file at path. A missing file is not an error;
// defaults are returned. A file that exists but cannot be parsed, or that
// carries invalid values, is an error; silently ignoring a typo'd config
// would be worse than failing.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "cannot parse %s", path)
	}

	if cfg.Language != "" {
		if _, err := parseLanguage(cfg.Language); err != nil {
			return cfg, errs.New(errs.ErrCodeInvalidConfig, "invalid language %q in %s", cfg.Language, path)
		}
	}
	if cfg.TimeoutSeconds < 0 {
		return cfg, errs.New(errs.ErrCodeInvalidConfig, "timeout_seconds must not be negative in %s", path)
	}

	return cfg, nil
}
