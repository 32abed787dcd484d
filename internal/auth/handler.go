package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nevilinq/nevilinq-api/internal/account"
)

// Handler exposes the signup and login endpoints.
type Handler struct {
	accounts *account.Service
	svc      *Service
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(accounts *account.Service, svc *Service) *Handler {
	return &Handler{accounts: accounts, svc: svc}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	WhatsApp string `json:"whatsapp"`
	Telegram string `json:"telegram"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        account.PublicView `json:"user"`
}

// Signup registers a new user and returns its public view.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validateSignup(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.Signup(c.UserContext(), account.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		WhatsApp: req.WhatsApp,
		Telegram: req.Telegram,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrEmailTaken):
			return fiber.NewError(http.StatusConflict, "Email already registered")
		case errors.Is(err, account.ErrWhatsAppTaken):
			return fiber.NewError(http.StatusConflict, "WhatsApp number already registered")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(user.Public())
}

// Login exchanges an identifier and password for a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	session, err := h.svc.Login(c.UserContext(), Credentials{Identifier: req.Identifier, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyIdentifier):
			return fiber.NewError(http.StatusBadRequest, ErrEmptyIdentifier.Error())
		case errors.Is(err, ErrInvalidCredentials):
			return fiber.NewError(http.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(loginResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		User:        session.User.Public(),
	})
}

func validateSignup(req signupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	// Reject display-name forms like "Bob <bob@x.com>": the parsed address
	// must round-trip to the bare input.
	email := strings.TrimSpace(req.Email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("invalid email address")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	if !account.ValidPhone(account.NormalizePhone(req.WhatsApp)) {
		return errors.New("invalid whatsapp number")
	}
	return nil
}
