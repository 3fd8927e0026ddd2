package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rolodex/internal/address/models"
	"rolodex/pkg/platform/sentinel"
)

// Postgres persists addresses in PostgreSQL. Single-record queries are keyed
// on the composite (id, contact_id) pair so relational containment is
// enforced in the statement itself.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const addressColumns = `id, contact_id, COALESCE(street, ''), COALESCE(city, ''), COALESCE(province, ''), postal_code, country`

func (s *Postgres) Create(ctx context.Context, address *models.Address) error {
	query := `
		INSERT INTO addresses (contact_id, street, city, province, postal_code, country)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		address.ContactID,
		address.Street,
		address.City,
		address.Province,
		address.PostalCode,
		address.Country,
	).Scan(&address.ID)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, contactID, addressID int64) (*models.Address, error) {
	query := fmt.Sprintf(`SELECT %s FROM addresses WHERE id = $1 AND contact_id = $2`, addressColumns)
	row := s.db.QueryRowContext(ctx, query, addressID, contactID)

	var address models.Address
	err := row.Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.PostalCode, &address.Country)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan address: %w", err)
	}
	return &address, nil
}

func (s *Postgres) Update(ctx context.Context, address *models.Address) error {
	query := `
		UPDATE addresses
		SET street = NULLIF($3, ''), city = NULLIF($4, ''), province = NULLIF($5, ''), postal_code = $6, country = $7
		WHERE id = $1 AND contact_id = $2
	`
	res, err := s.db.ExecContext(ctx, query,
		address.ID,
		address.ContactID,
		address.Street,
		address.City,
		address.Province,
		address.PostalCode,
		address.Country,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return requireAffected(res, "update address")
}

func (s *Postgres) Delete(ctx context.Context, contactID, addressID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1 AND contact_id = $2`, addressID, contactID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return requireAffected(res, "delete address")
}

func (s *Postgres) ListByContact(ctx context.Context, contactID int64, limit, offset int) ([]*models.Address, error) {
	query := fmt.Sprintf(`SELECT %s FROM addresses WHERE contact_id = $1 ORDER BY id LIMIT $2 OFFSET $3`, addressColumns)
	rows, err := s.db.QueryContext(ctx, query, contactID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]*models.Address, 0)
	for rows.Next() {
		var address models.Address
		err := rows.Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.PostalCode, &address.Country)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, &address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

func (s *Postgres) CountByContact(ctx context.Context, contactID int64) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM addresses WHERE contact_id = $1`, contactID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count addresses: %w", err)
	}
	return total, nil
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
