package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/hut8labs/failmail-client/handler/mailhandler"
	"github.com/hut8labs/failmail-client/logger"
)

// Prefix is prepended to every environment variable name
const Prefix = "FAILMAIL_"

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the relay and envelope settings of the example client. The
// defaults are the values the client uses when nothing is configured.
type Config struct {
	RelayHost     string   `env:"RELAY_HOST" envDefault:"localhost"`
	RelayPort     int      `env:"RELAY_PORT" envDefault:"2525"`
	RelayUser     string   `env:"RELAY_USER"`
	RelayPassword string   `env:"RELAY_PASSWORD"`
	From          string   `env:"FROM" envDefault:"test@example.com"`
	To            []string `env:"TO" envDefault:"errors@example.com" envSeparator:","`
	Subject       string   `env:"SUBJECT" envDefault:"error from the Go logging example"`
	Batch         string   `env:"BATCH"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"DEBUG"`
	MailLevel     string   `env:"MAIL_LEVEL" envDefault:"ERROR"`
	Debug         bool     `env:"DEBUG"`
}

// Load reads the given dotenv files (".env" when none are named) into the
// process environment, skipping files that do not exist, and parses the
// configuration from it. Variables already set take precedence.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return parse(env.Options{Prefix: Prefix})
}

// FromMap parses the configuration from vars instead of the process
// environment. Keys carry the FAILMAIL_ prefix.
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}
	cfg.To = trimAll(cfg.To)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	envError := make([]string, 0)

	if c.RelayPort < 1 || c.RelayPort > 65535 {
		envError = append(envError, Prefix+"RELAY_PORT is out of valid range (1-65535)")
	}
	if len(c.To) == 0 {
		envError = append(envError, Prefix+"TO must name at least one recipient")
	}
	if _, err := logger.ParseLevelStrict(c.LogLevel); err != nil {
		envError = append(envError, Prefix+"LOG_LEVEL: "+err.Error())
	}
	if _, err := logger.ParseLevelStrict(c.MailLevel); err != nil {
		envError = append(envError, Prefix+"MAIL_LEVEL: "+err.Error())
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}

// Mail returns the mail handler configuration
func (c *Config) Mail() mailhandler.Config {
	return mailhandler.Config{
		Host:     c.RelayHost,
		Port:     c.RelayPort,
		Username: c.RelayUser,
		Password: c.RelayPassword,
		From:     c.From,
		To:       c.To,
		Subject:  c.Subject,
		Batch:    c.Batch,
	}
}

// RootLevel returns the level for the root logger. The name was checked
// when the config was parsed.
func (c *Config) RootLevel() logger.Level {
	return logger.ParseLevel(c.LogLevel)
}

// MailHandlerLevel returns the minimum level that is mailed
func (c *Config) MailHandlerLevel() logger.Level {
	return logger.ParseLevel(c.MailLevel)
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
