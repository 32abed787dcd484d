package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nevilinq/nevilinq-api/internal/notification"
	"github.com/nevilinq/nevilinq-api/internal/password"
)

// SignupInput carries a validated signup request. Identifier normalization
// happens inside Signup, so callers may pass them as received.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	WhatsApp string
	Telegram string
}

// Service manages account registration.
type Service struct {
	repo     Repository
	notifier notification.Notifier
}

// NewService creates the account service. The notifier may be nil.
func NewService(repo Repository, notifier notification.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Signup registers a new user: normalizes the identifiers, pre-checks
// uniqueness (email first, so an email conflict wins when both identifiers
// are taken), hashes the password and persists the record. The pre-check is
// advisory; the repository's uniqueness enforcement is authoritative under
// concurrent signups.
func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	email := NormalizeEmail(in.Email)
	phone := NormalizePhone(in.WhatsApp)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("check email: %w", err)
	}

	if _, err := s.repo.FindByWhatsApp(ctx, phone); err == nil {
		return User{}, ErrWhatsAppTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("check whatsapp: %w", err)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		WhatsApp:     phone,
	}
	// Blank telegram is stored as absent, not as an empty string.
	if tg := strings.TrimSpace(in.Telegram); tg != "" {
		user.Telegram = &tg
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return User{}, err
	}

	if s.notifier != nil {
		// Best effort; a failed welcome message never fails the signup.
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindSignupWelcome,
			Destination: created.WhatsApp,
			Body:        fmt.Sprintf("Welcome, %s!", created.Name),
		})
	}

	return created, nil
}
