package tokens

import (
	"context"
	"errors"
	"time"

	"medverify/internal/domain/qrtoken"
	"medverify/internal/infra"
	"medverify/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) usecase.TokenStore {
	return &Store{pool: pool}
}

func (s *Store) Insert(ctx context.Context, t *qrtoken.Token) error {
	const q = `
		INSERT INTO qr_tokens (token_hash, product_id, issued_at, expires_at, used)
		VALUES ($1, $2, $3, $4, FALSE)`

	_, err := s.pool.Exec(ctx, q, t.Hash, t.ProductID, t.IssuedAt, t.ExpiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert qr token", err)
	}
	return nil
}

// Consume flips used=false → used=true as a single conditional UPDATE, so of
// two concurrent calls for the same hash exactly one sees Consumed. A token
// is still consumable at its expiry instant; it expires strictly after.
func (s *Store) Consume(ctx context.Context, tokenHash, productID string, now time.Time) (usecase.ConsumeOutcome, error) {
	const upd = `
		UPDATE qr_tokens
		SET used = TRUE, used_at = $3
		WHERE token_hash = $1 AND product_id = $2 AND used = FALSE AND expires_at >= $3`

	tag, err := s.pool.Exec(ctx, upd, tokenHash, productID, now)
	if err != nil {
		return "", infra.WrapRepoErr("failed to consume qr token", err)
	}
	if tag.RowsAffected() == 1 {
		return usecase.ConsumeConsumed, nil
	}

	// The conditional update matched nothing; a follow-up read classifies why.
	const sel = `SELECT product_id, used, expires_at FROM qr_tokens WHERE token_hash = $1`

	var (
		boundProductID string
		used           bool
		expiresAt      time.Time
	)
	err = s.pool.QueryRow(ctx, sel, tokenHash).Scan(&boundProductID, &used, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ConsumeNotFound, nil
		}
		return "", infra.WrapRepoErr("failed to classify qr token", err)
	}

	switch {
	case boundProductID != productID:
		// A hash bound to a different product is indistinguishable from a forgery.
		return usecase.ConsumeNotFound, nil
	case now.After(expiresAt):
		return usecase.ConsumeExpired, nil
	case used:
		return usecase.ConsumeAlreadyUsed, nil
	default:
		// Lost the race against a concurrent consumer that won between our
		// UPDATE and SELECT.
		return usecase.ConsumeAlreadyUsed, nil
	}
}

func (s *Store) FindByHash(ctx context.Context, tokenHash string) (*qrtoken.Token, error) {
	const q = `
		SELECT token_hash, product_id, issued_at, expires_at, used, used_at
		FROM qr_tokens
		WHERE token_hash = $1`

	var t qrtoken.Token
	err := s.pool.QueryRow(ctx, q, tokenHash).Scan(
		&t.Hash, &t.ProductID, &t.IssuedAt, &t.ExpiresAt, &t.Used, &t.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("qr token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find qr token", err)
	}

	return &t, nil
}
