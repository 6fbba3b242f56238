package notification

import (
	"context"
	"testing"

	"bankwise_support_backend/internal/scheduler"
	"bankwise_support_backend/platform/logger"
)

type recordingEmailSender struct {
	sent []string
}

func (s *recordingEmailSender) Send(_ context.Context, toEmail, _, _ string) error {
	s.sent = append(s.sent, toEmail)
	return nil
}

type stubEnqueuer struct {
	err   error
	calls int
}

func (e *stubEnqueuer) EnqueueSMS(context.Context, scheduler.SMSDeliverPayload) error {
	e.calls++
	return e.err
}

func (e *stubEnqueuer) EnqueueEmail(context.Context, scheduler.EmailDeliverPayload) error {
	e.calls++
	return e.err
}

func TestDeliverEmailFallsBackInlineWhenQueueRefuses(t *testing.T) {
	sender := &recordingEmailSender{}
	enqueuer := &stubEnqueuer{err: scheduler.ErrNotConnected}
	subs := New(nil, nil, sender, enqueuer, logger.New("development"))

	subs.deliverEmail(context.Background(), "user@example.com", "Subject", "Body")

	if enqueuer.calls != 1 {
		t.Fatalf("expected one enqueue attempt, got %d", enqueuer.calls)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "user@example.com" {
		t.Fatalf("expected inline delivery to user@example.com, got %v", sender.sent)
	}
}

func TestDeliverEmailSkipsInlineSendWhenQueueAccepts(t *testing.T) {
	sender := &recordingEmailSender{}
	enqueuer := &stubEnqueuer{}
	subs := New(nil, nil, sender, enqueuer, logger.New("development"))

	subs.deliverEmail(context.Background(), "user@example.com", "Subject", "Body")

	if enqueuer.calls != 1 {
		t.Fatalf("expected one enqueue attempt, got %d", enqueuer.calls)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no inline delivery, got %v", sender.sent)
	}
}
