package ledger

import (
	"context"
	"time"

	"medverify/internal/domain/medicine"
	"medverify/internal/usecase"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedGateway caches successful attestation reads in a per-instance LRU
// with TTL, sparing the slow remote on repeat lookups of the same product.
// Ledger reads are idempotent, so a cached hit is returned as-is. Negative
// and unavailable outcomes are never cached.
type CachedGateway struct {
	inner usecase.LedgerGateway
	cache *expirable.LRU[string, *usecase.LedgerAttestation]
}

func NewCachedGateway(inner usecase.LedgerGateway, size int, ttl time.Duration) usecase.LedgerGateway {
	return &CachedGateway{
		inner: inner,
		cache: expirable.NewLRU[string, *usecase.LedgerAttestation](size, nil, ttl),
	}
}

func (g *CachedGateway) Query(ctx context.Context, productID string) (*usecase.LedgerAttestation, error) {
	if att, ok := g.cache.Get(productID); ok {
		return att, nil
	}

	att, err := g.inner.Query(ctx, productID)
	if err != nil {
		return nil, err
	}

	g.cache.Add(productID, att)
	return att, nil
}

func (g *CachedGateway) Attest(ctx context.Context, m *medicine.Medicine) (string, error) {
	return g.inner.Attest(ctx, m)
}

func (g *CachedGateway) AttestToken(ctx context.Context, tokenHash, productID string) (string, error) {
	return g.inner.AttestToken(ctx, tokenHash, productID)
}

func (g *CachedGateway) VerifyToken(ctx context.Context, tokenHash string) (bool, error) {
	return g.inner.VerifyToken(ctx, tokenHash)
}
