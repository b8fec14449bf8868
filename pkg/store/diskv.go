// Package store persists serialized collections in an opaque key/value
// string store. Every backend makes one synchronous attempt per call and
// never panics; callers log failures and carry on.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"
)

// Keys under which the two collections are stored.
const (
	HabitsKey = "habit_habits"
	TasksKey  = "habit_tasks"
)

// KV is a string key/value store.
type KV interface {
	// Load returns the value for key. Missing keys and read failures both
	// report false.
	Load(key string) (string, bool)
	Save(key, value string) error
	Remove(key string) error
}

// Open returns the KV for cfg's backend. A nil cfg is loaded from viper.
func Open(cfg Config, logger *log.Logger) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = DiscardLogger()
	}

	switch cfg.Backend() {
	case BackendDiskv, "":
		return NewDiskv(cfg.BasePath(), logger)
	case BackendSQLite:
		return OpenSQLite(cfg.BasePath(), logger)
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
}

// NewDiskv stores each key as a file directly under basePath.
func NewDiskv(basePath string, logger *log.Logger) (KV, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvKV{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		log: logger.With("backend", BackendDiskv),
	}, nil
}

type diskvKV struct {
	d   *diskv.Diskv
	log *log.Logger
}

func (p *diskvKV) Load(key string) (string, bool) {
	if !p.d.Has(key) {
		return "", false
	}
	val, err := p.d.Read(key)
	if err != nil {
		p.log.Debug("read failed", "key", key, "err", err)
		return "", false
	}
	return string(val), true
}

func (p *diskvKV) Save(key, value string) error {
	if err := p.d.WriteString(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *diskvKV) Remove(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}
