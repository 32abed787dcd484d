package account

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]User
	byPhone map[string]User
}

// NewMemoryRepository builds an in-memory user store for development and
// testing. It enforces the same uniqueness rules as the Postgres schema.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		nextID:  1,
		byEmail: make(map[string]User),
		byPhone: make(map[string]User),
	}
}

func (r *memoryRepository) Create(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return User{}, ErrEmailTaken
	}
	if _, exists := r.byPhone[user.WhatsApp]; exists {
		return User{}, ErrWhatsAppTaken
	}

	user.ID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	r.byEmail[user.Email] = user
	r.byPhone[user.WhatsApp] = user
	return user, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) FindByWhatsApp(_ context.Context, whatsapp string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byPhone[whatsapp]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}
