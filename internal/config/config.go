// Package config resolves the configuration directory, the optional
// config.toml file and NOTES_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

const (
	// AppName is the application directory name.
	AppName = "notes"

	// FileName is the config file looked up inside Dir.
	FileName = "config.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "NOTES"

	// DefaultPageSize is the list page size when nothing overrides it.
	DefaultPageSize = 20
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreJSONL  = "jsonl"
	StoreSQLite = "sqlite"
)

var storeFiles = map[string]string{
	StoreJSONL:  "tasks.jsonl",
	StoreSQLite: "tasks.db",
}

// Error reports an unusable configuration.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config holds the resolved settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Store is the backend name: memory, jsonl or sqlite.
	Store string

	// File is the store location. Empty means a default file inside Dir.
	File string

	// PageSize is the default page size for list.
	PageSize int

	// NoColor disables styled output.
	NoColor bool
}

// fileConfig mirrors config.toml.
type fileConfig struct {
	Store    string `toml:"store"`
	File     string `toml:"file"`
	PageSize int    `toml:"page_size"`
	NoColor  bool   `toml:"no_color"`
}

// envConfig holds NOTES_* overrides. Nil fields were not set.
type envConfig struct {
	Store    *string
	File     *string
	PageSize *int  `split_words:"true"`
	NoColor  *bool `split_words:"true"`
}

// New creates a Config with defaults only.
// If configDir is empty, uses XDG_CONFIG_HOME/notes or $HOME/.config/notes.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      expandPath(dir),
		Store:    StoreJSONL,
		PageSize: DefaultPageSize,
	}
}

// Load builds a Config from defaults, then the config file in configDir
// if it exists, then the environment.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)
	if err := cfg.loadFile(cfg.FilePath()); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return &Error{Source: path, Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return &Error{Source: path, Err: fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))}
	}

	if md.IsDefined("store") {
		c.Store = fc.Store
	}
	if md.IsDefined("file") {
		c.File = fc.File
	}
	if md.IsDefined("page_size") {
		c.PageSize = fc.PageSize
	}
	if md.IsDefined("no_color") {
		c.NoColor = fc.NoColor
	}
	return nil
}

func (c *Config) loadEnv() error {
	var ec envConfig
	if err := envconfig.Process(EnvPrefix, &ec); err != nil {
		return &Error{Source: "environment", Err: err}
	}
	if ec.Store != nil {
		c.Store = *ec.Store
	}
	if ec.File != nil {
		c.File = *ec.File
	}
	if ec.PageSize != nil {
		c.PageSize = *ec.PageSize
	}
	if ec.NoColor != nil {
		c.NoColor = *ec.NoColor
	}
	return nil
}

// Validate checks the settings after every override has been applied.
func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreMemory, StoreJSONL, StoreSQLite:
	default:
		return &Error{Source: "store", Err: fmt.Errorf("unknown store %q (want memory, jsonl or sqlite)", c.Store)}
	}
	if c.PageSize <= 0 {
		return &Error{Source: "page_size", Err: errors.New("must be positive")}
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.toml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, FileName)
}

// StorePath returns where the selected backend keeps its data. It is
// empty for the memory store.
func (c *Config) StorePath() string {
	if c.File != "" {
		return expandPath(c.File)
	}
	name, ok := storeFiles[c.Store]
	if !ok {
		return ""
	}
	return filepath.Join(c.Dir, name)
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
