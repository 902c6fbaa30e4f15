package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solstice-id/solstice-id/internal/i18n"
)

// Service orchestrates safe user creation: validation, uniqueness, hashing,
// token generation, persistence and activation dispatch.
type Service struct {
	logger    *slog.Logger
	repo      Repository
	hasher    PasswordHasher
	notifier  Notifier
	validator *Validator
}

// NewService constructs a Service.
func NewService(logger *slog.Logger, repo Repository, hasher PasswordHasher, notifier Notifier) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:    logger,
		repo:      repo,
		hasher:    hasher,
		notifier:  notifier,
		validator: NewValidator(),
	}
}

// Register runs the full signup workflow. A *ValidationError carries the
// ordered field errors; any other error is an infrastructure failure. No
// row is persisted and nothing is dispatched on the validation path.
func (s *Service) Register(ctx context.Context, req SignupRequest, locale string) (*User, error) {
	fieldErrs, err := s.checkFields(ctx, req, locale)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Errors: orderFieldErrors(fieldErrs)}
	}

	hash, err := s.hasher.Hash(*req.Password)
	if err != nil {
		return nil, err
	}
	token, err := NewActivationToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := User{
		ID:              uuid.New(),
		Username:        *req.Username,
		Email:           *req.Email,
		PasswordHash:    hash,
		ActivationToken: token,
		// Always inactive at creation, whatever the raw input claimed.
		Inactive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// Lost the race after the pre-check. Same shape as a pre-check
			// failure so callers cannot tell the two apart.
			return nil, &ValidationError{Errors: FieldErrors{
				{Field: "email", Message: i18n.Message(locale, i18n.MsgEmailInUse)},
			}}
		}
		return nil, err
	}

	if err := s.notifier.SendActivation(ctx, user.Email, user.ActivationToken, locale); err != nil {
		// The row stays; dispatch is queued with retries once accepted, so a
		// failure here means the queue itself is down. Surfaced, not masked.
		s.logger.Error("dispatch activation", slog.String("email", user.Email), slog.Any("error", err))
		return nil, fmt.Errorf("signup: dispatch activation: %w", err)
	}

	s.logger.Info("user registered", slog.String("user_id", user.ID.String()))
	return &user, nil
}

// checkFields runs the three independent field rules, then the uniqueness
// rule on the email slot when the email format rules passed. Uniqueness is
// logically a fourth email rule, so a request with a null username and a
// taken email reports both errors in one response.
func (s *Service) checkFields(ctx context.Context, req SignupRequest, locale string) (map[string]string, error) {
	fieldErrs := s.validator.Check(req, locale)
	if _, taken := fieldErrs["email"]; !taken && req.Email != nil {
		_, err := s.repo.FindByEmail(ctx, *req.Email)
		switch {
		case err == nil:
			fieldErrs["email"] = i18n.Message(locale, i18n.MsgEmailInUse)
		case errors.Is(err, ErrNotFound):
			// Email is free.
		default:
			return nil, err
		}
	}
	return fieldErrs, nil
}
