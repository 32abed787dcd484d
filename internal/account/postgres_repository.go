package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user and returns it with the datastore-assigned id and
// creation time. Unique-index rejections map to the matching conflict error,
// so a signup that races past the service-level pre-check still fails with a
// conflict rather than a bare database error.
func (r *PostgresRepository) Create(ctx context.Context, user User) (User, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO users (name, email, password_hash, whatsapp, telegram)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`,
		user.Name, user.Email, user.PasswordHash, user.WhatsApp, user.Telegram)

	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "uq_users_email":
				return User{}, ErrEmailTaken
			case "uq_users_whatsapp":
				return User{}, ErrWhatsAppTaken
			}
		}
		return User{}, err
	}

	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}

// FindByEmail fetches a user by normalized email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password_hash, whatsapp, telegram, created_at
        FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// FindByWhatsApp fetches a user by normalized whatsapp number.
func (r *PostgresRepository) FindByWhatsApp(ctx context.Context, whatsapp string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password_hash, whatsapp, telegram, created_at
        FROM users WHERE whatsapp = $1`, whatsapp)
	return scanUser(row)
}

func scanUser(row pgx.Row) (User, error) {
	var user User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.WhatsApp, &user.Telegram, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}
