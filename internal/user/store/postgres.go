package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"rolodex/internal/user/models"
	"rolodex/pkg/platform/sentinel"
)

// Postgres persists users in PostgreSQL. The username is the primary key; the
// unique constraint on it is the single source of truth for duplicates.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const pqUniqueViolation = "23505"

func (s *Postgres) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, name, password, token)
		VALUES ($1, $2, $3, NULLIF($4, ''))
	`
	_, err := s.db.ExecContext(ctx, query, user.Username, user.Name, user.Password, user.Token)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Postgres) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT username, name, password, COALESCE(token, '')
		FROM users
		WHERE username = $1
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

func (s *Postgres) FindByToken(ctx context.Context, token string) (*models.User, error) {
	query := `
		SELECT username, name, password, COALESCE(token, '')
		FROM users
		WHERE token = $1
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, token))
}

func (s *Postgres) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $2, password = $3, token = NULLIF($4, '')
		WHERE username = $1
	`
	res, err := s.db.ExecContext(ctx, query, user.Username, user.Name, user.Password, user.Token)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.Username, &user.Name, &user.Password, &user.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
