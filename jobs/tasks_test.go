package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"

	_ "github.com/solstice-id/solstice-id/testing"
)

type recordingMailer struct {
	to      string
	subject string
	body    string
	calls   int
	err     error
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.calls++
	m.to = to
	m.subject = subject
	m.body = body
	return m.err
}

func TestActivationEmailJobDeliversToken(t *testing.T) {
	mail := &recordingMailer{}
	job := NewActivationEmailJob(mail, "http://localhost:8080", nil, nil)

	task, err := NewActivationEmailTask(ActivationEmailPayload{
		Email:  "user1@mail.com",
		Token:  "a3f1c9d2e8b7a6f5c4d3e2f1a0b9c8d7",
		Locale: "en",
	})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := job.Handle(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if mail.calls != 1 {
		t.Fatalf("expected one send, got %d", mail.calls)
	}
	if mail.to != "user1@mail.com" {
		t.Fatalf("unexpected recipient %q", mail.to)
	}
	if !strings.Contains(mail.body, "a3f1c9d2e8b7a6f5c4d3e2f1a0b9c8d7") {
		t.Fatalf("token missing from body: %q", mail.body)
	}
	if !strings.Contains(mail.body, "http://localhost:8080") {
		t.Fatalf("base url missing from body: %q", mail.body)
	}
}

func TestActivationEmailJobLocalizedSubject(t *testing.T) {
	mail := &recordingMailer{}
	job := NewActivationEmailJob(mail, "http://localhost:8080", nil, nil)

	task, err := NewActivationEmailTask(ActivationEmailPayload{
		Email:  "user1@mail.com",
		Token:  "deadbeef",
		Locale: "tr",
	})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := job.Handle(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if mail.subject == "Activate your account" {
		t.Fatalf("expected localized subject, got default %q", mail.subject)
	}
}

func TestActivationEmailJobMailerFailurePropagates(t *testing.T) {
	mail := &recordingMailer{err: errors.New("smtp down")}
	job := NewActivationEmailJob(mail, "http://localhost:8080", nil, nil)

	task, err := NewActivationEmailTask(ActivationEmailPayload{Email: "user1@mail.com", Token: "x", Locale: "en"})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if err := job.Handle(context.Background(), task); err == nil {
		t.Fatal("expected delivery error to propagate for retry")
	}
}

func TestActivationEmailJobCorruptPayloadSkipsRetry(t *testing.T) {
	mail := &recordingMailer{}
	job := NewActivationEmailJob(mail, "http://localhost:8080", nil, nil)

	task := asynq.NewTask(TaskTypeActivationEmail, []byte("{not json"))
	err := job.Handle(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
	if mail.calls != 0 {
		t.Fatal("mailer must not be called for corrupt payloads")
	}
}

func TestEnqueueNotifierQueuesTask(t *testing.T) {
	mr := miniredis.RunT(t)
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: mr.Addr()})
	defer client.Close()

	notifier := NewEnqueueNotifier(client)
	if err := notifier.SendActivation(context.Background(), "user1@mail.com", "tok123", "en"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if len(mr.Keys()) == 0 {
		t.Fatal("expected queued task keys in redis")
	}
}
