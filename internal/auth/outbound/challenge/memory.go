package challenge

import (
	"context"
	"sync"
	"time"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/clock"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type pendingRecord struct {
	data      entity.PendingRegistration
	expiresAt time.Time
}

// Memory is the in-process Store. All state is lost on restart, which
// is acceptable for codes that live a few minutes.
type Memory struct {
	clock clock.Clocker

	mu       sync.Mutex
	codes    map[string]Entry
	pendings map[string]pendingRecord
}

// NewMemory constructs an empty in-process store.
func NewMemory(clk clock.Clocker) *Memory {
	return &Memory{
		clock:    clk,
		codes:    map[string]Entry{},
		pendings: map[string]pendingRecord{},
	}
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// PutCode stores a code for the email, replacing any previous one.
func (m *Memory) PutCode(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.codes[e.Email] = e
	return nil
}

// GetCode returns the live entry for the email.
func (m *Memory) GetCode(_ context.Context, email string) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.codes[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	if !m.clock.Now().Before(e.ExpiresAt) {
		delete(m.codes, email)
		return nil, goerror.ErrNotFound
	}

	return &e, nil
}

// DeleteCode removes the entry for the email.
func (m *Memory) DeleteCode(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.codes, email)
	return nil
}

// PutPending parks registration credentials until verification.
func (m *Memory) PutPending(_ context.Context, p entity.PendingRegistration, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pendings[p.Email] = pendingRecord{
		data:      p,
		expiresAt: m.clock.Now().Add(ttl),
	}
	return nil
}

// GetPending returns the parked credentials for the email.
func (m *Memory) GetPending(_ context.Context, email string) (*entity.PendingRegistration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.pendings[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	if !m.clock.Now().Before(rec.expiresAt) {
		delete(m.pendings, email)
		return nil, goerror.ErrNotFound
	}

	return &rec.data, nil
}

// DeletePending removes the parked credentials for the email.
func (m *Memory) DeletePending(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.pendings, email)
	return nil
}

// SweepExpired drops dead entries and pendings.
func (m *Memory) SweepExpired(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	removed := 0

	for email, e := range m.codes {
		if !now.Before(e.ExpiresAt) {
			delete(m.codes, email)
			removed++
		}
	}

	for email, rec := range m.pendings {
		if !now.Before(rec.expiresAt) {
			delete(m.pendings, email)
			removed++
		}
	}

	return removed, nil
}
