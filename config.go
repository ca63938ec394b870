package libevents

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the file representation of the emitter options.
//
//	max_listeners: 25
//	log_level: debug
type Config struct {
	// MaxListeners is the leak warning threshold. Zero keeps DefaultMaxListeners,
	// use a negative value to disable the warning.
	MaxListeners int `yaml:"max_listeners"`
	// LogLevel is a zerolog level name. Empty means info.
	LogLevel string `yaml:"log_level"`
}

// LoadConfig decodes a YAML config from r and validates it.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "cannot decode emitter config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log_level %q: %s", c.LogLevel, err)
	}
	return nil
}

// Options turns the config into emitter options. When out is not nil, the emitter logs to
// it through zerolog at the configured level.
func (c Config) Options(out io.Writer) ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []Option

	switch {
	case c.MaxListeners < 0:
		opts = append(opts, WithMaxListeners(0))
	case c.MaxListeners > 0:
		opts = append(opts, WithMaxListeners(c.MaxListeners))
	}

	if out != nil {
		level, _ := c.level()
		zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
		opts = append(opts, WithLogger(NewZerologLogger(zl)))
	}

	return opts, nil
}

func (c Config) level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}
