package signup_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/solstice-id/solstice-id/internal/signup"
	_ "github.com/solstice-id/solstice-id/testing"
)

type fakeRepo struct {
	users     map[string]signup.User
	created   []signup.User
	findErr   error
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]signup.User)}
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*signup.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if u, ok := f.users[email]; ok {
		return &u, nil
	}
	return nil, signup.ErrNotFound
}

func (f *fakeRepo) Create(_ context.Context, user signup.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

type sentActivation struct {
	email  string
	token  string
	locale string
}

type fakeNotifier struct {
	sent []sentActivation
	err  error
}

func (f *fakeNotifier) SendActivation(_ context.Context, email, token, locale string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentActivation{email: email, token: token, locale: locale})
	return nil
}

func newService(repo signup.Repository, notifier signup.Notifier) *signup.Service {
	return signup.NewService(nil, repo, signup.BcryptHasher{Cost: bcrypt.MinCost}, notifier)
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newService(repo, notifier)

	user, err := svc.Register(context.Background(), validRequest(), "en")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted user, got %d", len(repo.created))
	}
	stored := repo.created[0]
	if !stored.Inactive {
		t.Fatal("user must be created inactive")
	}
	if stored.ActivationToken == "" {
		t.Fatal("activation token must be set")
	}
	if _, err := hex.DecodeString(stored.ActivationToken); err != nil || len(stored.ActivationToken) != 32 {
		t.Fatalf("expected 32 hex chars, got %q", stored.ActivationToken)
	}
	if stored.PasswordHash == "P4assword" {
		t.Fatal("plaintext password must never be persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("P4assword")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	msg := notifier.sent[0]
	if msg.email != "user1@mail.com" {
		t.Fatalf("unexpected recipient %q", msg.email)
	}
	if msg.token != stored.ActivationToken {
		t.Fatalf("notification token %q differs from stored %q", msg.token, stored.ActivationToken)
	}
	if user.ID != stored.ID {
		t.Fatal("returned user differs from persisted user")
	}
}

func TestRegisterInactiveInputIgnored(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeNotifier{})

	req := validRequest()
	active := false
	req.Inactive = &active

	if _, err := svc.Register(context.Background(), req, "en"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !repo.created[0].Inactive {
		t.Fatal("caller-supplied inactive value must be overridden")
	}
}

func TestRegisterValidationFailureHasNoSideEffects(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newService(repo, notifier)

	req := validRequest()
	req.Username = nil

	_, err := svc.Register(context.Background(), req, "en")
	var verr *signup.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "username" {
		t.Fatalf("expected single username error, got %+v", verr.Errors)
	}
	if len(repo.created) != 0 || len(notifier.sent) != 0 {
		t.Fatal("failed validation must not persist or notify")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newService(repo, notifier)

	if _, err := svc.Register(context.Background(), validRequest(), "en"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	repo.created = nil
	notifier.sent = nil

	req := validRequest()
	req.Username = strPtr("someone-else")

	_, err := svc.Register(context.Background(), req, "en")
	var verr *signup.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %+v", verr.Errors)
	}
	if msg, ok := verr.Errors.Get("email"); !ok || msg != "Email already in use" {
		t.Fatalf("expected email in-use error, got %+v", verr.Errors)
	}
	if len(repo.created) != 0 || len(notifier.sent) != 0 {
		t.Fatal("duplicate email must not persist or notify")
	}
}

func TestRegisterNullUsernameAndTakenEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeNotifier{})

	if _, err := svc.Register(context.Background(), validRequest(), "en"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	req := validRequest()
	req.Username = nil

	_, err := svc.Register(context.Background(), req, "en")
	var verr *signup.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Errors) != 2 {
		t.Fatalf("expected two field errors, got %+v", verr.Errors)
	}
	if verr.Errors[0].Field != "username" || verr.Errors[1].Field != "email" {
		t.Fatalf("expected username then email, got %+v", verr.Errors)
	}
	if verr.Errors[1].Message != "Email already in use" {
		t.Fatalf("unexpected email message %q", verr.Errors[1].Message)
	}
}

func TestRegisterInsertRaceMapsToFieldError(t *testing.T) {
	// Both requests passed the pre-check; the second insert hits the unique
	// index. The conflict must look exactly like a pre-check failure.
	repo := newFakeRepo()
	repo.createErr = signup.ErrEmailTaken
	svc := newService(repo, &fakeNotifier{})

	_, err := svc.Register(context.Background(), validRequest(), "en")
	var verr *signup.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if msg, ok := verr.Errors.Get("email"); !ok || msg != "Email already in use" {
		t.Fatalf("expected email in-use error, got %+v", verr.Errors)
	}
}

func TestRegisterLookupFailureIsFatal(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("connection refused")
	svc := newService(repo, &fakeNotifier{})

	_, err := svc.Register(context.Background(), validRequest(), "en")
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *signup.ValidationError
	if errors.As(err, &verr) {
		t.Fatal("infrastructure failure must not be reported as a field error")
	}
}

func TestRegisterNotifierFailurePropagates(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{err: errors.New("queue unavailable")}
	svc := newService(repo, notifier)

	_, err := svc.Register(context.Background(), validRequest(), "en")
	if err == nil {
		t.Fatal("notification failure must not be swallowed")
	}
	var verr *signup.ValidationError
	if errors.As(err, &verr) {
		t.Fatal("notification failure is not a validation error")
	}
	// The persisted row stays behind; that trade-off is deliberate.
	if len(repo.created) != 1 {
		t.Fatalf("expected persisted user to remain, got %d", len(repo.created))
	}
}

func TestRegisterLocalizedValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeNotifier{})

	req := validRequest()
	req.Password = strPtr("aaaaaaaa")

	_, errEN := svc.Register(context.Background(), req, "en")
	_, errTR := svc.Register(context.Background(), req, "tr")

	var venEN, venTR *signup.ValidationError
	if !errors.As(errEN, &venEN) || !errors.As(errTR, &venTR) {
		t.Fatalf("expected validation errors, got %v / %v", errEN, errTR)
	}
	msgEN, _ := venEN.Errors.Get("password")
	msgTR, _ := venTR.Errors.Get("password")
	if msgEN == msgTR {
		t.Fatalf("expected locale-specific messages, both were %q", msgEN)
	}
}
