package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
	"github.com/shandysiswandi/gofolio/internal/pkg/goerror"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestMemoryCodeLifecycle(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemory(clk)

	if _, err := store.GetCode(ctx, "a@b.c"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("GetCode() on empty store error = %v, want %v", err, goerror.ErrNotFound)
	}

	entry := Entry{
		Email:     "a@b.c",
		Code:      "123456",
		Purpose:   entity.ChallengePurposeLogin,
		ExpiresAt: clk.now.Add(10 * time.Minute),
	}
	if err := store.PutCode(ctx, entry); err != nil {
		t.Fatalf("PutCode() error = %v", err)
	}

	got, err := store.GetCode(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("GetCode() error = %v", err)
	}
	if got.Code != "123456" || got.Purpose != entity.ChallengePurposeLogin {
		t.Fatalf("GetCode() = %+v, want code 123456 purpose login", got)
	}

	if err := store.DeleteCode(ctx, "a@b.c"); err != nil {
		t.Fatalf("DeleteCode() error = %v", err)
	}
	if _, err := store.GetCode(ctx, "a@b.c"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("GetCode() after delete error = %v, want %v", err, goerror.ErrNotFound)
	}
}

func TestMemoryCodeExpiry(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemory(clk)

	if err := store.PutCode(ctx, Entry{
		Email:     "a@b.c",
		Code:      "123456",
		Purpose:   entity.ChallengePurposeRegister,
		ExpiresAt: clk.now.Add(10 * time.Minute),
	}); err != nil {
		t.Fatalf("PutCode() error = %v", err)
	}

	clk.now = clk.now.Add(10 * time.Minute)

	if _, err := store.GetCode(ctx, "a@b.c"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("GetCode() at deadline error = %v, want %v", err, goerror.ErrNotFound)
	}
}

func TestMemoryCodeReplace(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemory(clk)

	first := Entry{
		Email:     "a@b.c",
		Code:      "111111",
		Purpose:   entity.ChallengePurposeLogin,
		ExpiresAt: clk.now.Add(10 * time.Minute),
	}
	second := Entry{
		Email:     "a@b.c",
		Code:      "222222",
		Purpose:   entity.ChallengePurposePasswordReset,
		ExpiresAt: clk.now.Add(10 * time.Minute),
	}

	if err := store.PutCode(ctx, first); err != nil {
		t.Fatalf("PutCode() error = %v", err)
	}
	if err := store.PutCode(ctx, second); err != nil {
		t.Fatalf("PutCode() error = %v", err)
	}

	got, err := store.GetCode(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("GetCode() error = %v", err)
	}
	if got.Code != "222222" || got.Purpose != entity.ChallengePurposePasswordReset {
		t.Fatalf("GetCode() = %+v, want the replacing entry", got)
	}
}

func TestMemoryPendingLifecycle(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemory(clk)

	pending := entity.PendingRegistration{
		Username:     "admin",
		Email:        "a@b.c",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    clk.now,
	}
	if err := store.PutPending(ctx, pending, 10*time.Minute); err != nil {
		t.Fatalf("PutPending() error = %v", err)
	}

	got, err := store.GetPending(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("GetPending() error = %v", err)
	}
	if got.Username != "admin" || got.PasswordHash != "$2a$10$hash" {
		t.Fatalf("GetPending() = %+v", got)
	}

	clk.now = clk.now.Add(11 * time.Minute)
	if _, err := store.GetPending(ctx, "a@b.c"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("GetPending() after expiry error = %v, want %v", err, goerror.ErrNotFound)
	}
}

func TestMemorySweepExpired(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemory(clk)

	if err := store.PutCode(ctx, Entry{
		Email:     "old@b.c",
		Code:      "111111",
		Purpose:   entity.ChallengePurposeLogin,
		ExpiresAt: clk.now.Add(5 * time.Minute),
	}); err != nil {
		t.Fatalf("PutCode() error = %v", err)
	}
	if err := store.PutCode(ctx, Entry{
		Email:     "new@b.c",
		Code:      "222222",
		Purpose:   entity.ChallengePurposeLogin,
		ExpiresAt: clk.now.Add(30 * time.Minute),
	}); err != nil {
		t.Fatalf("PutCode() error = %v", err)
	}
	if err := store.PutPending(ctx, entity.PendingRegistration{Email: "old@b.c"}, 5*time.Minute); err != nil {
		t.Fatalf("PutPending() error = %v", err)
	}

	clk.now = clk.now.Add(10 * time.Minute)

	removed, err := store.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired() error = %v", err)
	}
	if removed != 2 {
		t.Fatalf("SweepExpired() removed = %d, want 2", removed)
	}

	if _, err := store.GetCode(ctx, "new@b.c"); err != nil {
		t.Fatalf("GetCode() for live entry error = %v", err)
	}
}
