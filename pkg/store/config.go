package store

import (
	"errors"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names the storage medium behind KV.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Config describes where and how state is persisted.
type Config interface {
	BasePath() string
	Backend() Backend
	LogLevel() string
	LogFile() string
}

// LoadConfig reads the .habits config file (if any) and HABITS_* environment
// variables. A missing config file is fine; an unreadable one is not.
func LoadConfig() (Config, error) {
	v := viper.GetViper()
	v.SetDefault("path", "~/.habits.db")
	v.SetDefault("backend", string(BackendDiskv))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetConfigName(".habits") // .yaml is implicit
	v.SetEnvPrefix("HABITS")
	v.AutomaticEnv()

	if override := os.Getenv("HABITS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{
		Path:    path,
		Kind:    Backend(strings.ToLower(v.GetString("backend"))),
		Level:   v.GetString("log_level"),
		LogPath: v.GetString("log_file"),
	}, nil
}

// NewConfig builds a Config without consulting viper; used by tests and
// one-off invocations.
func NewConfig(path string, backend Backend) Config {
	return &fileConfig{Path: path, Kind: backend, Level: "info"}
}

type fileConfig struct {
	Path    string  `json:"path"`
	Kind    Backend `json:"backend"`
	Level   string  `json:"log_level"`
	LogPath string  `json:"log_file"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Backend() Backend { return f.Kind }
func (f *fileConfig) LogLevel() string { return f.Level }
func (f *fileConfig) LogFile() string  { return f.LogPath }

// WithLogFile returns cfg with its log file replaced by path.
func WithLogFile(cfg Config, path string) Config {
	return &fileConfig{
		Path:    cfg.BasePath(),
		Kind:    cfg.Backend(),
		Level:   cfg.LogLevel(),
		LogPath: path,
	}
}
