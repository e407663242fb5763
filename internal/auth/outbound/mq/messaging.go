package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shandysiswandi/gofolio/internal/auth/usecase"
	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
	"github.com/shandysiswandi/gofolio/internal/pkg/messaging"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const keyOfCorrelationID string = "cID"

const (
	adminRegisteredDestination = "gofolio.auth.admin-registered"
	adminLoggedInDestination   = "gofolio.auth.admin-logged-in"
	passwordResetDestination   = "gofolio.auth.password-reset"
)

type adminRegisteredMessage struct {
	AdminID    int64     `json:"admin_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type adminLoggedInMessage struct {
	AdminID    int64     `json:"admin_id"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}

type passwordResetMessage struct {
	AdminID    int64     `json:"admin_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Messaging publishes auth audit events after a flow commits. Delivery
// is best effort; callers log failures and move on.
type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishAdminRegistered(ctx context.Context, msg usecase.AdminRegisteredEvent) error {
	ctx, span := m.ins.Tracer("auth.outbound.mq").Start(ctx, "PublishAdminRegistered")
	defer span.End()

	body, err := json.Marshal(adminRegisteredMessage{
		AdminID:    msg.AdminID,
		Username:   msg.Username,
		Email:      msg.Email,
		OccurredAt: msg.OccurredAt,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return m.publish(ctx, adminRegisteredDestination, body)
}

func (m *Messaging) PublishAdminLoggedIn(ctx context.Context, msg usecase.AdminLoggedInEvent) error {
	ctx, span := m.ins.Tracer("auth.outbound.mq").Start(ctx, "PublishAdminLoggedIn")
	defer span.End()

	body, err := json.Marshal(adminLoggedInMessage{
		AdminID:    msg.AdminID,
		Username:   msg.Username,
		OccurredAt: msg.OccurredAt,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return m.publish(ctx, adminLoggedInDestination, body)
}

func (m *Messaging) PublishPasswordReset(ctx context.Context, msg usecase.PasswordResetEvent) error {
	ctx, span := m.ins.Tracer("auth.outbound.mq").Start(ctx, "PublishPasswordReset")
	defer span.End()

	body, err := json.Marshal(passwordResetMessage{
		AdminID:    msg.AdminID,
		OccurredAt: msg.OccurredAt,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return m.publish(ctx, passwordResetDestination, body)
}

func (m *Messaging) publish(ctx context.Context, destination string, body []byte) error {
	cID := instrument.GetCorrelationID(ctx)
	_, err := m.client.Publish(ctx, destination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	})
	if err != nil {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
