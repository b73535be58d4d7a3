package mq

import (
	"context"
	"encoding/json"

	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/messaging"
	"github.com/amin75t/task-manager/internal/shared/event"
	"github.com/amin75t/task-manager/internal/task/usecase"
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

func (m *Messaging) PublishTaskCreated(ctx context.Context, msg usecase.TaskCreatedEvent) error {
	ctx, span := m.ins.Tracer("task.outbound.mq").Start(ctx, "PublishTaskCreated")
	defer span.End()

	body, err := json.Marshal(event.TaskCreatedMessage{
		TaskID:     msg.TaskID,
		IdentityID: msg.IdentityID,
		Title:      msg.Title,
		WithAI:     msg.WithAI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.TaskCreatedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
