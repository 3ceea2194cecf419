package audit

import (
	"context"
	"encoding/json"

	"medverify/internal/infra"
	"medverify/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store appends verification attempts to the write-only audit trail.
// Rows are never updated or deleted.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) usecase.AuditStore {
	return &Store{pool: pool}
}

func (s *Store) Append(ctx context.Context, a *usecase.Attempt) error {
	const q = `
		INSERT INTO verification_logs (id, product_id, status, method, requester_addr, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var detail []byte
	if a.Detail != nil {
		var err error
		detail, err = json.Marshal(a.Detail)
		if err != nil {
			return infra.WrapRepoErr("failed to encode attempt detail", err)
		}
	}

	_, err := s.pool.Exec(ctx, q,
		uuid.New(), a.ProductID, string(a.Status), a.Method, a.RequesterAddr, detail, a.Timestamp,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append verification attempt", err)
	}
	return nil
}
