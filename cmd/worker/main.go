package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/solstice-id/solstice-id/internal/app"
	jobmetrics "github.com/solstice-id/solstice-id/internal/jobs"
	"github.com/solstice-id/solstice-id/internal/mailer"
	"github.com/solstice-id/solstice-id/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var mail mailer.Mailer
	switch cfg.MailerDriver {
	case "smtp":
		mail = mailer.SMTPMailer{Host: cfg.SMTPHost, Port: cfg.SMTPPort, From: cfg.SMTPFrom}
	case "ses":
		sesMailer, err := mailer.NewSESMailer(ctx, cfg.SESRegion, cfg.SESAccessKey, cfg.SESSecretKey, cfg.SESFrom)
		if err != nil {
			logger.Error("init ses mailer", slog.Any("error", err))
			os.Exit(1)
		}
		mail = sesMailer
	default:
		mail = mailer.LogMailer{Logger: logger}
	}

	activationJob := jobs.NewActivationEmailJob(mail, cfg.AppBaseURL, logger, jobmetrics.NewMetrics(nil))

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypeActivationEmail, Handler: activationJob.Handle},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker started", slog.String("mailer", cfg.MailerDriver))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
