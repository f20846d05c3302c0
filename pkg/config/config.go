// Package config loads bizreg settings from a TOML file and the environment.
//
// Resolution order, later wins:
//
//  1. built-in defaults ([Default])
//  2. the TOML file ($XDG_CONFIG_HOME/bizreg/config.toml unless a path is given)
//  3. environment: STATE, BIZREG_BASE_URL, BIZREG_STORE
//
// A missing file is not an error. The merged result is validated with
// go-playground/validator before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/bizreg/pkg/buildinfo"
	apperrors "github.com/matzehuels/bizreg/pkg/errors"
	"github.com/matzehuels/bizreg/pkg/integrations/nydos"
	"github.com/matzehuels/bizreg/pkg/store"
)

const appName = "bizreg"

// Environment variables that override file settings.
const (
	EnvState   = "STATE"
	EnvBaseURL = "BIZREG_BASE_URL"
	EnvStore   = "BIZREG_STORE"
)

// Config is the full application configuration.
type Config struct {
	State    string   `toml:"state" validate:"required,alpha,len=2"`
	Registry Registry `toml:"registry"`
	Store    Store    `toml:"store"`
	Server   Server   `toml:"server"`
}

// Registry configures the registry client.
type Registry struct {
	BaseURL   string   `toml:"base_url" validate:"required,http_url"`
	Timeout   Duration `toml:"timeout" validate:"gte=0"`
	UserAgent string   `toml:"user_agent"`
}

// Store selects and configures the persistence backend.
type Store struct {
	Driver   string `toml:"driver" validate:"store_driver"`
	Path     string `toml:"path"` // file directory or sqlite database; defaulted under DataDir
	Addr     string `toml:"addr" validate:"required_if=Driver redis"`
	URI      string `toml:"uri" validate:"required_if=Driver mongo"`
	Database string `toml:"database"`
	Prefix   string `toml:"prefix"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr" validate:"required"`
}

// Duration is a time.Duration that reads from TOML strings like "10s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		State: "NY",
		Registry: Registry{
			BaseURL:   nydos.DefaultBaseURL,
			Timeout:   Duration(10 * time.Second),
			UserAgent: buildinfo.UserAgent(),
		},
		Store: Store{
			Driver:   store.DriverNone,
			Database: "bizreg",
			Prefix:   "bizreg:",
		},
		Server: Server{Addr: ":8080"},
	}
}

// Path returns the default config file path using the XDG standard
// (~/.config/bizreg/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// DataDir returns the default directory for file and sqlite stores
// (~/.local/share/bizreg).
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// Load reads the config file at path (or the default path if empty), applies
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "resolve config path")
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		// Only an explicitly named file has to exist.
		if !errors.Is(err, os.ErrNotExist) || explicit {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	if err := cfg.fillPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overrides holds values given on the command line. Empty fields are ignored.
type Overrides struct {
	State       string
	StoreDriver string
	StorePath   string
	ServerAddr  string
}

// Apply merges o into c, fills default store paths, and revalidates.
func (c *Config) Apply(o Overrides) error {
	if o.State != "" {
		c.State = strings.ToUpper(strings.TrimSpace(o.State))
	}
	if o.StoreDriver != "" {
		c.Store.Driver = strings.ToLower(strings.TrimSpace(o.StoreDriver))
	}
	if o.StorePath != "" {
		c.Store.Path = o.StorePath
	}
	if o.ServerAddr != "" {
		c.Server.Addr = o.ServerAddr
	}
	if err := c.fillPaths(); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvState); ok && v != "" {
		c.State = strings.ToUpper(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.Registry.BaseURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvStore); ok && v != "" {
		c.Store.Driver = strings.ToLower(strings.TrimSpace(v))
	}
}

// fillPaths gives file and sqlite stores a default location.
func (c *Config) fillPaths() error {
	if c.Store.Path != "" {
		return nil
	}
	if c.Store.Driver != store.DriverFile && c.Store.Driver != store.DriverSQLite {
		return nil
	}
	dir, err := DataDir()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "resolve data directory")
	}
	if c.Store.Driver == store.DriverSQLite {
		c.Store.Path = filepath.Join(dir, "bizreg.db")
	} else {
		c.Store.Path = filepath.Join(dir, "records")
	}
	return nil
}

// validate is a package-level singleton; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// store_driver accepts exactly the names in store.Drivers.
	if err := v.RegisterValidation("store_driver", func(fl validator.FieldLevel) bool {
		return store.ValidDriver(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks field constraints and returns a coded INVALID_CONFIG error
// naming every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "invalid config")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "invalid config: %s", strings.Join(fields, ", "))
}

// Encode renders c as TOML.
func (c *Config) Encode() ([]byte, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
