package mq

import (
	"context"
	"encoding/json"

	"github.com/amin75t/task-manager/internal/identity/usecase"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/messaging"
	"github.com/amin75t/task-manager/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishIdentityRegistered(ctx context.Context, msg usecase.IdentityRegisteredEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishIdentityRegistered")
	defer span.End()

	body, err := json.Marshal(event.IdentityRegisteredMessage{
		IdentityID: msg.IdentityID,
		Phone:      msg.Phone,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.IdentityRegisteredDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
