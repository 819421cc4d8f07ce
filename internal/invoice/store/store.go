package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads an invoice row without its goods lines.
// Expected column order: id, client_id, total_price, total_paid, status, created_at, updated_at, deleted_at
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var statusStr string

	if err := s.Scan(
		&inv.ID, &inv.ClientID, &inv.TotalPrice, &inv.TotalPaid, &statusStr,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.DeletedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)

	return &inv, nil
}

const selectInvoiceColumns = `
	id, client_id, total_price, total_paid, status, created_at, updated_at, deleted_at
`

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO invoices (client_id, total_price, total_paid, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		inv.ClientID,
		inv.TotalPrice,
		inv.TotalPaid,
		inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	if err := insertGoods(ctx, dbTx, inv.ID, inv.Goods); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing invoice: %w", err)
	}

	return nil
}

func insertGoods(ctx context.Context, dbTx *sql.Tx, invoiceID uuid.UUID, goods []invoice.Goods) error {
	query := `
		INSERT INTO invoice_goods (invoice_id, position, name, price, quantity, product_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i, g := range goods {
		if _, err := dbTx.ExecContext(ctx, query, invoiceID, i, g.Name, g.Price, g.Quantity, g.ProductID); err != nil {
			return fmt.Errorf("inserting goods line %d: %w", i, err)
		}
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE id = $1 AND deleted_at IS NULL`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	goods, err := s.loadGoods(ctx, []string{id.String()})
	if err != nil {
		return nil, err
	}

	inv.Goods = goods[id]

	return inv, nil
}

// loadGoods fetches the goods lines for a set of invoices in one query,
// keyed by invoice id and ordered by line position.
func (s *Store) loadGoods(ctx context.Context, ids []string) (map[uuid.UUID][]invoice.Goods, error) {
	query := `
		SELECT invoice_id, name, price, quantity, product_id
		FROM invoice_goods
		WHERE invoice_id = ANY($1::uuid[])
		ORDER BY invoice_id, position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("loading goods: %w", err)
	}
	defer rows.Close()

	byInvoice := make(map[uuid.UUID][]invoice.Goods, len(ids))

	for rows.Next() {
		var invoiceID uuid.UUID

		var g invoice.Goods

		if err := rows.Scan(&invoiceID, &g.Name, &g.Price, &g.Quantity, &g.ProductID); err != nil {
			return nil, fmt.Errorf("scanning goods line: %w", err)
		}

		byInvoice[invoiceID] = append(byInvoice[invoiceID], g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goods rows: %w", err)
	}

	return byInvoice, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	var ids []string

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
		ids = append(ids, inv.ID.String())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	if len(ids) == 0 {
		return invs, nil
	}

	goods, err := s.loadGoods(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, inv := range invs {
		inv.Goods = goods[inv.ID]
	}

	return invs, nil
}

// UpdateInvoice rewrites the invoice row and replaces its goods lines.
// The goods collection is owned by the invoice, so replace-all keeps line
// positions consistent with the submitted order.
func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE invoices
		SET total_price = $1, total_paid = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`

	res, err := dbTx.ExecContext(ctx, query, inv.TotalPrice, inv.TotalPaid, inv.Status, inv.ID)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return invoice.ErrNotFound
	}

	if _, err := dbTx.ExecContext(ctx, "DELETE FROM invoice_goods WHERE invoice_id = $1", inv.ID); err != nil {
		return fmt.Errorf("clearing goods lines: %w", err)
	}

	if err := insertGoods(ctx, dbTx, inv.ID, inv.Goods); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing invoice update: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE invoices
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}
