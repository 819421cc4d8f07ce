package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tajerhq/tajer/internal/product"
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

// scanProduct reads a product row.
// Expected column order: id, name, description, price, stock, created_at, updated_at, deleted_at
func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product

	var description sql.NullString

	if err := s.Scan(
		&p.ID, &p.Name, &description, &p.Price, &p.Stock,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	p.Description = description.String

	return &p, nil
}

const selectProductColumns = `
	id, name, description, price, stock, created_at, updated_at, deleted_at
`

const insertProductQuery = `
	INSERT INTO products (name, description, price, stock, created_at)
	VALUES ($1, NULLIF($2, ''), $3, $4, NOW())
	RETURNING id, created_at
`

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	err := s.db.QueryRowContext(ctx, insertProductQuery,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products WHERE deleted_at IS NULL").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}

	return count, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = NULLIF($2, ''), price = $3, stock = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, p.Name, p.Description, p.Price, p.Stock, p.ID)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}

// importLockKey derives a stable advisory lock key from the imported name set,
// so concurrent imports of overlapping sheets serialize on the same lock.
func importLockKey(names []string) int64 {
	sorted := make([]string, len(names))
	for i, n := range names {
		sorted[i] = strings.ToLower(n)
	}

	sort.Strings(sorted)

	h := fnv.New64a()

	for _, n := range sorted {
		h.Write([]byte(n))
		h.Write([]byte{0})
	}

	return int64(h.Sum64())
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context, names []string) (product.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	lockKey := importLockKey(names)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindExisting(ctx context.Context, names []string) ([]*product.Product, error) {
	if len(names) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE deleted_at IS NULL AND LOWER(name) = ANY($1)
		ORDER BY created_at ASC`

	rows, err := itx.tx.QueryContext(ctx, query, lowered)
	if err != nil {
		return nil, fmt.Errorf("finding existing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (itx *importTx) CreateProducts(ctx context.Context, products []*product.Product) error {
	for _, p := range products {
		err := itx.tx.QueryRowContext(ctx, insertProductQuery,
			p.Name,
			p.Description,
			p.Price,
			p.Stock,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating product %q: %w", p.Name, err)
		}
	}

	return nil
}
