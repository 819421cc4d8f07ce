package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/client"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// scanClient reads a client row including the invoice aggregates.
// Expected column order: id, username, email, phone, company_name, city, address,
// status, total_owed, total_paid, created_at, updated_at, deleted_at
func scanClient(s scanner) (*client.Client, error) {
	var c client.Client

	var email sql.NullString

	var statusStr string

	if err := s.Scan(
		&c.ID, &c.Username, &email, &c.Phone, &c.CompanyName, &c.City, &c.Address,
		&statusStr, &c.TotalOwed, &c.TotalPaid,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.Email = email.String
	c.Status = client.Status(statusStr)
	c.Outstanding = c.TotalOwed - c.TotalPaid

	return &c, nil
}

// Financial fields are aggregated from live invoices on every read so they can
// never drift from the invoices themselves.
const selectClientColumns = `
	c.id, c.username, c.email, c.phone, c.company_name, c.city, c.address, c.status,
	COALESCE(f.total_owed, 0) AS total_owed,
	COALESCE(f.total_paid, 0) AS total_paid,
	c.created_at, c.updated_at, c.deleted_at
`

const joinClientFinancials = `
	LEFT JOIN (
		SELECT client_id, SUM(total_price) AS total_owed, SUM(total_paid) AS total_paid
		FROM invoices
		WHERE deleted_at IS NULL
		GROUP BY client_id
	) f ON f.client_id = c.id
`

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (username, email, phone, company_name, city, address, status, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Username,
		c.Email,
		c.Phone,
		c.CompanyName,
		c.City,
		c.Address,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients c` + joinClientFinancials + `
		WHERE c.id = $1 AND c.deleted_at IS NULL`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context, filter client.ListFilter) ([]*client.Client, error) {
	query := `SELECT ` + selectClientColumns + `
		FROM clients c` + joinClientFinancials + `
		WHERE c.deleted_at IS NULL`

	var args []any

	if filter.Status != nil {
		query += " AND c.status = $1"

		args = append(args, *filter.Status)
	}

	query += " ORDER BY c.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET username = $1, email = NULLIF($2, ''), phone = $3, company_name = $4,
			city = $5, address = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query,
		c.Username,
		c.Email,
		c.Phone,
		c.CompanyName,
		c.City,
		c.Address,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return client.ErrNotFound
	}

	return nil
}

func (s *Store) SetStatus(ctx context.Context, id uuid.UUID, status client.Status) error {
	query := `
		UPDATE clients
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("setting client status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking status result: %w", err)
	}

	if affected == 0 {
		return client.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE clients
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	return nil
}
