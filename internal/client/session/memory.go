package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the session record in process memory.
type MemoryStore struct {
	mu          sync.Mutex
	token       string
	displayName string
	reason      LogoutReason
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) GetToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) GetDisplayName(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.displayName, nil
}

func (m *MemoryStore) SetSession(_ context.Context, token, displayName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.displayName = token, displayName
	return nil
}

func (m *MemoryStore) ClearSession(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.displayName = "", ""
	return nil
}

func (m *MemoryStore) SetLogoutReason(_ context.Context, reason LogoutReason) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reason = reason
	return nil
}

func (m *MemoryStore) TakeLogoutReason(context.Context) (LogoutReason, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.reason
	m.reason = ReasonNone
	return r, nil
}
