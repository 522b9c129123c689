// Package session holds the bearer token issued by the hotel service.
//
// A Session is the single token slot every authenticated call reads before it is sent
// and overwrites whenever a response carries a fresh token.
package session

import "sync"

type Session interface {
	Token() string
	SetToken(token string)
}

type Memory struct {
	mu    sync.RWMutex
	token string
}

func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

func (m *Memory) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token
}

func (m *Memory) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}
