// Package challenge keeps the short-lived state behind the two-step
// auth flows: one-time codes keyed by email, and submitted registration
// credentials parked until their code is verified.
//
// The default store is in-process memory, which means issued codes do
// not survive a restart. The redis driver exists for deployments that
// run more than one instance.
package challenge

import (
	"context"
	"io"
	"time"

	"github.com/shandysiswandi/gofolio/internal/auth/entity"
)

// Entry is a one-time code bound to an email, a flow and a deadline.
// At most one entry exists per email; issuing a new code replaces the
// previous one regardless of purpose.
type Entry struct {
	Email     string
	Code      string
	Purpose   entity.ChallengePurpose
	ExpiresAt time.Time
}

// Store persists challenge entries and pending registrations.
//
// Lookups treat an expired entry the same as a missing one and return
// goerror.ErrNotFound. SweepExpired is an optimization only; expiry is
// always enforced on read.
type Store interface {
	io.Closer

	// PutCode stores a code for the email, replacing any previous one.
	PutCode(ctx context.Context, e Entry) error
	// GetCode returns the live entry for the email.
	GetCode(ctx context.Context, email string) (*Entry, error)
	// DeleteCode removes the entry for the email.
	DeleteCode(ctx context.Context, email string) error

	// PutPending parks registration credentials until verification.
	PutPending(ctx context.Context, p entity.PendingRegistration, ttl time.Duration) error
	// GetPending returns the parked credentials for the email.
	GetPending(ctx context.Context, email string) (*entity.PendingRegistration, error)
	// DeletePending removes the parked credentials for the email.
	DeletePending(ctx context.Context, email string) error

	// SweepExpired drops entries and pendings that are past their
	// deadline and reports how many were removed.
	SweepExpired(ctx context.Context) (int, error)
}
