// Package jobs contains the asynq task definitions and the worker that
// delivers queued activation emails.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/solstice-id/solstice-id/internal/i18n"
	jobmetrics "github.com/solstice-id/solstice-id/internal/jobs"
	"github.com/solstice-id/solstice-id/internal/mailer"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeActivationEmail is the task type for activation email delivery.
	TaskTypeActivationEmail = "signup:activation_email"
)

// ActivationEmailPayload describes one queued activation message. The token
// travels with the payload so the rendered body carries it verbatim.
type ActivationEmailPayload struct {
	Email  string `json:"email"`
	Token  string `json:"token"`
	Locale string `json:"locale"`
}

// NewActivationEmailTask constructs an Asynq task.
func NewActivationEmailTask(payload ActivationEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeActivationEmail, data), nil
}

// ActivationEmailJob renders and sends queued activation emails.
type ActivationEmailJob struct {
	mailer  mailer.Mailer
	baseURL string
	logger  *slog.Logger
	metrics *jobmetrics.Metrics
}

// NewActivationEmailJob constructs the job handler. Metrics may be nil.
func NewActivationEmailJob(m mailer.Mailer, baseURL string, logger *slog.Logger, metrics *jobmetrics.Metrics) *ActivationEmailJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivationEmailJob{mailer: m, baseURL: baseURL, logger: logger, metrics: metrics}
}

// Handle processes TaskTypeActivationEmail tasks. Delivery errors propagate
// so asynq retries them; a corrupt payload is dropped instead of retried.
func (j *ActivationEmailJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.metrics.Track("activation_email")

	var payload ActivationEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		j.logger.Error("activation email payload", slog.Any("error", err))
		return tracker.End(asynq.SkipRetry)
	}

	subject := i18n.Message(payload.Locale, i18n.MsgActivationSubject)
	body := fmt.Sprintf(i18n.Message(payload.Locale, i18n.MsgActivationBody), j.baseURL, payload.Token)

	if err := j.mailer.Send(ctx, payload.Email, subject, body); err != nil {
		j.logger.Warn("send activation email",
			slog.String("email", payload.Email),
			slog.Any("error", err))
		return tracker.End(err)
	}
	j.logger.Info("activation email sent", slog.String("email", payload.Email))
	return tracker.End(nil)
}
