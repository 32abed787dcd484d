package account

import "time"

// User is a registered account holder. The password hash is opaque to every
// caller except the credential verifier and never leaves the service.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	WhatsApp     string
	Telegram     *string
	CreatedAt    time.Time
}

// PublicView is the API-facing projection of a user. It carries no
// credential material.
type PublicView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	WhatsApp string  `json:"whatsapp"`
	Telegram *string `json:"telegram"`
}

// Public returns the user's public view.
func (u User) Public() PublicView {
	return PublicView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		WhatsApp: u.WhatsApp,
		Telegram: u.Telegram,
	}
}
