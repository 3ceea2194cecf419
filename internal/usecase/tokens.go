package usecase

import (
	"context"
	"log/slog"
	"time"

	"medverify/internal/domain/qrtoken"
	"medverify/internal/pkg/clock"
	"medverify/internal/pkg/errs"
)

var ErrInvalidTokenHash = errs.New("invalid token hash")

// TokenService owns the QR token lifecycle: issuance and single-use
// consumption. The engine requests both but never mutates a token directly.
type TokenService interface {
	Issue(ctx context.Context, productID string) (*qrtoken.Token, qrtoken.Payload, error)
	ValidateAndConsume(ctx context.Context, tokenHash, productID string) (ConsumeOutcome, error)
}

type tokenServiceImpl struct {
	store         TokenStore
	ledger        LedgerGateway
	clock         clock.Clock
	ttl           time.Duration
	attestTimeout time.Duration
}

func NewTokenService(store TokenStore, ledger LedgerGateway, clk clock.Clock, ttl, attestTimeout time.Duration) TokenService {
	return &tokenServiceImpl{
		store:         store,
		ledger:        ledger,
		clock:         clk,
		ttl:           ttl,
		attestTimeout: attestTimeout,
	}
}

func (s *tokenServiceImpl) Issue(ctx context.Context, productID string) (*qrtoken.Token, qrtoken.Payload, error) {
	tok, err := qrtoken.New(productID, s.ttl, s.clock.Now())
	if err != nil {
		return nil, qrtoken.Payload{}, err
	}

	if err := s.store.Insert(ctx, tok); err != nil {
		return nil, qrtoken.Payload{}, err
	}

	// Ledger attestation of the hash is best-effort and must not block or
	// fail issuance; verification later treats a missing attestation as a
	// signal, not a hard error.
	go s.attestAsync(tok.Hash, productID)

	return tok, tok.RenderPayload(), nil
}

func (s *tokenServiceImpl) attestAsync(tokenHash, productID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.attestTimeout)
	defer cancel()

	if _, err := s.ledger.AttestToken(ctx, tokenHash, productID); err != nil {
		slog.Warn("qr token ledger attestation failed",
			"token_hash", tokenHash, "product_id", productID, "error", err.Error())
	}
}

func (s *tokenServiceImpl) ValidateAndConsume(ctx context.Context, tokenHash, productID string) (ConsumeOutcome, error) {
	// Reject garbage before touching the store.
	if !qrtoken.IsValidHash(tokenHash) {
		return "", ErrInvalidTokenHash
	}

	return s.store.Consume(ctx, tokenHash, productID, s.clock.Now())
}
