package store

import (
	"errors"
	"sync"
)

// ErrWriteRefused is returned by a Memory store told to fail writes.
var ErrWriteRefused = errors.New("store: write refused")

// Memory is an in-process KV. It backs tests and --backend memory runs.
type Memory struct {
	mu         sync.Mutex
	data       map[string]string
	failWrites bool
	writes     int
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// FailWrites makes subsequent Save and Remove calls fail, the way a full or
// disabled storage area would.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

// Writes counts successful and failed write attempts.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Load(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.failWrites {
		return ErrWriteRefused
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.failWrites {
		return ErrWriteRefused
	}
	delete(m.data, key)
	return nil
}
