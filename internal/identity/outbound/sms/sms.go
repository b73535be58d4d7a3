// Package sms adapts the SMS gateway client for sign-in code delivery,
// retrying transient gateway failures before giving up.
package sms

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/amin75t/task-manager/internal/pkg/instrument"
	"github.com/amin75t/task-manager/internal/pkg/sms"
	"go.opentelemetry.io/otel/codes"
)

const maxSendRetries = 2

type CodeSender struct {
	client sms.SMS
	ins    instrument.Instrumentation
}

func NewCodeSender(client sms.SMS, ins instrument.Instrumentation) *CodeSender {
	return &CodeSender{client: client, ins: ins}
}

func (s *CodeSender) Send(ctx context.Context, phone, code string) (err error) {
	ctx, span := s.ins.Tracer("identity.outbound.sms").Start(ctx, "Send")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	b := retry.NewFibonacci(200 * time.Millisecond)
	b = retry.WithCappedDuration(2*time.Second, b)
	b = retry.WithMaxRetries(maxSendRetries, b)

	err = retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.client.Send(ctx, sms.Message{To: phone, Body: code}); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})

	return err
}
