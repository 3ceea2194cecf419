package registry

import (
	"context"
	"errors"
	"time"

	"medverify/internal/domain/medicine"
	"medverify/internal/infra"
	"medverify/internal/pkg/errs"
	"medverify/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type medicineRow struct {
	ProductID       string
	Name            string
	Manufacturer    string
	BatchNumber     string
	ManufactureDate time.Time
	ExpiryDate      time.Time
	LedgerRef       *string
	RegisteredAt    time.Time
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) usecase.RegistryStore {
	return &Store{pool: pool}
}

func (s *Store) FindByProductID(ctx context.Context, productID string) (*medicine.Medicine, error) {
	const q = `
		SELECT product_id, name, manufacturer, batch_number,
		       manufacture_date, expiry_date, ledger_ref, registered_at
		FROM medicines
		WHERE product_id = $1`

	var row medicineRow
	err := s.pool.QueryRow(ctx, q, productID).Scan(
		&row.ProductID, &row.Name, &row.Manufacturer, &row.BatchNumber,
		&row.ManufactureDate, &row.ExpiryDate, &row.LedgerRef, &row.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr("medicine not found", err, infra.KindNotFound), usecase.ErrRegistryNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find medicine by product id", err)
	}

	return row.toDomain(), nil
}

func (s *Store) Create(ctx context.Context, m *medicine.Medicine) error {
	const q = `
		INSERT INTO medicines (product_id, name, manufacturer, batch_number,
		                       manufacture_date, expiry_date, ledger_ref, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.pool.Exec(ctx, q,
		m.ProductID(), m.Name(), m.Manufacturer(), m.BatchNumber(),
		m.ManufactureDate(), m.ExpiryDate(), m.LedgerRef(), m.RegisteredAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.Mark(infra.WrapRepoErr("duplicate product id", err, infra.KindDuplicateKey), usecase.ErrDuplicateProduct)
		}
		return infra.WrapRepoErr("failed to create medicine", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, manufacturer string) ([]*medicine.Medicine, error) {
	const base = `
		SELECT product_id, name, manufacturer, batch_number,
		       manufacture_date, expiry_date, ledger_ref, registered_at
		FROM medicines`

	var (
		rows pgx.Rows
		err  error
	)
	if manufacturer != "" {
		rows, err = s.pool.Query(ctx, base+` WHERE manufacturer = $1 ORDER BY registered_at DESC`, manufacturer)
	} else {
		rows, err = s.pool.Query(ctx, base+` ORDER BY registered_at DESC`)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list medicines", err)
	}
	defer rows.Close()

	var result []*medicine.Medicine
	for rows.Next() {
		var row medicineRow
		if err := rows.Scan(
			&row.ProductID, &row.Name, &row.Manufacturer, &row.BatchNumber,
			&row.ManufactureDate, &row.ExpiryDate, &row.LedgerRef, &row.RegisteredAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan medicine row", err)
		}
		result = append(result, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate medicine rows", err)
	}

	return result, nil
}

func (r medicineRow) toDomain() *medicine.Medicine {
	return medicine.Reconstruct(
		r.ProductID, r.Name, r.Manufacturer, r.BatchNumber,
		r.ManufactureDate, r.ExpiryDate, r.LedgerRef, r.RegisteredAt,
	)
}
