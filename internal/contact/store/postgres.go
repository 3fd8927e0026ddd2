package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"rolodex/internal/contact/models"
	"rolodex/pkg/platform/sentinel"
)

// Postgres persists contacts in PostgreSQL. Every query is keyed on the
// composite (id, username) pair so ownership is enforced in the statement
// itself, never as a separate application-level check.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const contactColumns = `id, username, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, '')`

func (s *Postgres) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		contact.Username,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
	).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, username string, id int64) (*models.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE id = $1 AND username = $2`, contactColumns)
	return scanContact(s.db.QueryRowContext(ctx, query, id, username))
}

func (s *Postgres) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts
		SET first_name = $3, last_name = NULLIF($4, ''), email = NULLIF($5, ''), phone = NULLIF($6, '')
		WHERE id = $1 AND username = $2
	`
	res, err := s.db.ExecContext(ctx, query,
		contact.ID,
		contact.Username,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return requireAffected(res, "update contact")
}

func (s *Postgres) Delete(ctx context.Context, username string, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1 AND username = $2`, id, username)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return requireAffected(res, "delete contact")
}

func (s *Postgres) Search(ctx context.Context, username string, filter models.SearchFilter, limit, offset int) ([]*models.Contact, error) {
	where, args := searchWhere(username, filter)
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE %s ORDER BY id LIMIT $%d OFFSET $%d`,
		contactColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.Contact, 0)
	for rows.Next() {
		var contact models.Contact
		err := rows.Scan(&contact.ID, &contact.Username, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, &contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	return contacts, nil
}

func (s *Postgres) Count(ctx context.Context, username string, filter models.SearchFilter) (int, error) {
	where, args := searchWhere(username, filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM contacts WHERE %s`, where)

	var total int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return total, nil
}

// searchWhere builds the conjunctive filter: the owner clause always applies,
// each present filter field adds one clause, and the name clause ORs across
// first and last name.
func searchWhere(username string, filter models.SearchFilter) (string, []any) {
	clauses := []string{"username = $1"}
	args := []any{username}

	if filter.Name != "" {
		args = append(args, contains(filter.Name))
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", n, n))
	}
	if filter.Email != "" {
		args = append(args, contains(filter.Email))
		clauses = append(clauses, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if filter.Phone != "" {
		args = append(args, contains(filter.Phone))
		clauses = append(clauses, fmt.Sprintf("phone LIKE $%d", len(args)))
	}
	return strings.Join(clauses, " AND "), args
}

func contains(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	return "%" + escaped + "%"
}

func scanContact(row *sql.Row) (*models.Contact, error) {
	var contact models.Contact
	err := row.Scan(&contact.ID, &contact.Username, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	return &contact, nil
}

func requireAffected(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
