package account

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken indicates another user already registered the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrWhatsAppTaken indicates another user already registered the number.
	ErrWhatsAppTaken = errors.New("whatsapp number already registered")
)

// Repository persists users. Lookup keys are expected in normalized form;
// Create must reject duplicate emails and whatsapp numbers even when the
// caller's pre-checks raced with a concurrent signup.
type Repository interface {
	Create(ctx context.Context, user User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByWhatsApp(ctx context.Context, whatsapp string) (User, error)
}
