package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

const activationEmailMaxRetry = 5

// EnqueueNotifier queues activation emails for the worker to deliver. It
// satisfies the signup module's Notifier interface: enqueue failures are
// returned to the caller, delivery failures are retried by the worker.
type EnqueueNotifier struct {
	client *asynq.Client
}

// NewEnqueueNotifier wraps an asynq client.
func NewEnqueueNotifier(client *asynq.Client) *EnqueueNotifier {
	return &EnqueueNotifier{client: client}
}

// SendActivation enqueues one activation email task.
func (n *EnqueueNotifier) SendActivation(ctx context.Context, email, token, locale string) error {
	task, err := NewActivationEmailTask(ActivationEmailPayload{
		Email:  email,
		Token:  token,
		Locale: locale,
	})
	if err != nil {
		return fmt.Errorf("jobs: build activation task: %w", err)
	}
	_, err = n.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(activationEmailMaxRetry))
	if err != nil {
		return fmt.Errorf("jobs: enqueue activation email: %w", err)
	}
	return nil
}

// Close releases client resources.
func (n *EnqueueNotifier) Close() error {
	return n.client.Close()
}
