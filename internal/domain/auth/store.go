package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthUser struct {
	ID           string
	TenantID     string
	Email        string
	Role         string
	PasswordHash string
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) FindActiveUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var user AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT id, tenant_id, email, role, password_hash
    FROM users
    WHERE email = $1 AND status = 'active'
  `, email).Scan(&user.ID, &user.TenantID, &user.Email, &user.Role, &user.PasswordHash)
	return user, err
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login_at = now() WHERE id = $1", userID)
	return err
}
