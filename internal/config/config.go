// Package config loads the server settings. Values are layered, later
// sources winning: built-in defaults, an optional YAML file, .env files and
// the process environment. Command-line flags are applied on top by main.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every value that can be tweaked at startup.
type Config struct {
	Port        int           `yaml:"port"`
	Environment string        `yaml:"environment"`
	ErrorLog    string        `yaml:"error_log"`
	DB          DBConfig      `yaml:"db"`
	Limiter     LimiterConfig `yaml:"limiter"`
}

// DBConfig describes the PostgreSQL connection and pool bounds.
type DBConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	User         string        `yaml:"user"`
	Password     string        `yaml:"password"`
	Name         string        `yaml:"name"`
	SSLMode      string        `yaml:"sslmode"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxIdleTime  time.Duration `yaml:"max_idle_time"`
}

// LimiterConfig configures the per-client token bucket.
type LimiterConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Port:        4000,
		Environment: "development",
		ErrorLog:    "error.log",
		DB: DBConfig{
			Host:         "localhost",
			Port:         5432,
			User:         "library",
			Name:         "library",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 25,
			MaxIdleTime:  15 * time.Minute,
		},
		Limiter: LimiterConfig{
			Enabled: true,
			RPS:     2,
			Burst:   4,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment. envFiles are loaded into the
// environment first without overriding variables that are already set;
// with no envFiles ".env" is tried. Missing env files are not an error.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "load env file %s", f)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Environment, "ENV")
	setString(&c.ErrorLog, "ERROR_LOG")
	setString(&c.DB.Host, "PG_HOST")
	setString(&c.DB.User, "PG_USER")
	setString(&c.DB.Password, "PG_PASS")
	setString(&c.DB.Name, "PG_DB")
	setString(&c.DB.SSLMode, "PG_SSLMODE")

	if err := setInt(&c.Port, "PORT"); err != nil {
		return err
	}
	return setInt(&c.DB.Port, "PG_PORT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "parse %s", key)
	}
	*dst = i
	return nil
}

// DSN returns the libpq key=value connection string.
func (c DBConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	newPart := func(k string, v any) string {
		return fmt.Sprintf("%s=%v", k, v)
	}
	parts := []string{
		newPart("host", c.Host),
		newPart("port", c.Port),
		newPart("user", c.User),
		newPart("dbname", c.Name),
		newPart("sslmode", sslMode),
	}
	if c.Password != "" {
		parts = append(parts, newPart("password", c.Password))
	}
	return strings.Join(parts, " ")
}
