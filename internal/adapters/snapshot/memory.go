package snapshot

import (
	"context"
	"sync"
)

// Memory is an in-process snapshot provider used in tests
type Memory struct {
	mu   sync.Mutex
	data []byte
	logo string

	// SaveErr, when set, is returned by Save without storing anything.
	SaveErr error
	// SaveCalls counts successful and failed Save invocations.
	SaveCalls int
}

// NewMemory creates an empty in-memory snapshot provider
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the stored snapshot blob, or (nil, nil) when absent
func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Save overwrites the stored snapshot blob
func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}

// LoadLogo returns the base64 clinic logo, or "" when absent
func (m *Memory) LoadLogo(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logo, nil
}

// SaveLogo overwrites the base64 clinic logo
func (m *Memory) SaveLogo(_ context.Context, logo string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logo = logo
	return nil
}
