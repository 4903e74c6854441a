package persist

import (
	"context"
	"sync"
)

// Memory keeps the encoded document in process memory.
type Memory struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	saveErr error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// FailSaves makes every following Save return err. A nil err restores normal saves.
func (m *Memory) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Saves reports how many successful saves happened.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Memory) Load(_ context.Context) (Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return Snapshot{}, false, nil
	}
	snap, err := Decode(m.data)
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (m *Memory) Save(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

func (m *Memory) Close() error {
	return nil
}
