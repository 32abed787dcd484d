package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/nevilinq/nevilinq-api/internal/account"
	"github.com/nevilinq/nevilinq-api/internal/password"
)

var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password. Keeping a single error prevents user enumeration through
	// login responses.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyIdentifier indicates a blank login identifier.
	ErrEmptyIdentifier = errors.New("identifier is required")
)

// Credentials is a login request: an email or whatsapp number plus password.
type Credentials struct {
	Identifier string
	Password   string
}

// Session is the outcome of a successful login.
type Session struct {
	AccessToken string
	TokenType   string
	User        account.User
}

// Service authenticates credentials and issues access tokens.
type Service struct {
	accounts account.Repository
	issuer   *TokenIssuer
}

// NewService creates the authentication service.
func NewService(accounts account.Repository, issuer *TokenIssuer) *Service {
	return &Service{accounts: accounts, issuer: issuer}
}

// Login resolves the identifier to a user, verifies the password and issues
// a bearer token. Identifiers containing "@" are treated as emails, anything
// else as a whatsapp number; both are normalized before lookup.
func (s *Service) Login(ctx context.Context, creds Credentials) (Session, error) {
	ident := strings.TrimSpace(creds.Identifier)
	if ident == "" {
		return Session{}, ErrEmptyIdentifier
	}

	var (
		user account.User
		err  error
	)
	if strings.Contains(ident, "@") {
		user, err = s.accounts.FindByEmail(ctx, account.NormalizeEmail(ident))
	} else {
		user, err = s.accounts.FindByWhatsApp(ctx, account.NormalizePhone(ident))
	}
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if !password.Verify(creds.Password, user.PasswordHash) {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return Session{}, err
	}

	return Session{AccessToken: token, TokenType: "bearer", User: user}, nil
}
